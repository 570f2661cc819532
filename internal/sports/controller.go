package sports

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"playbox/internal/shared/utils/response"
)

type Controller interface {
	// Admin CRUD operations
	CreateSport(c *gin.Context)
	GetSport(c *gin.Context)
	GetSportBySlug(c *gin.Context)
	UpdateSport(c *gin.Context)
	DeleteSport(c *gin.Context)
	GetAllSports(c *gin.Context)
	GetActiveSports(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateSport(c *gin.Context) {
	var req CreateSportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Admin not authenticated", nil, nil)
		return
	}

	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid admin ID format", nil, nil)
		return
	}

	sport, err := ctrl.service.CreateSport(adminUUID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "a sport with similar name already exists" {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Sport created successfully", sport, nil)
}

func (ctrl *controller) GetSport(c *gin.Context) {
	sportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid sport ID", nil, err.Error())
		return
	}

	sport, err := ctrl.service.GetSportByID(sportID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "sport not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport retrieved successfully", sport, nil)
}

func (ctrl *controller) GetSportBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Sport slug is required", nil, nil)
		return
	}

	sport, err := ctrl.service.GetSportBySlug(c.Request.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "sport not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport retrieved successfully", sport, nil)
}

func (ctrl *controller) UpdateSport(c *gin.Context) {
	sportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid sport ID", nil, err.Error())
		return
	}

	var req UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Admin not authenticated", nil, nil)
		return
	}

	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid admin ID format", nil, nil)
		return
	}

	sport, err := ctrl.service.UpdateSport(sportID, adminUUID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "sport not found" {
			statusCode = http.StatusNotFound
		} else if err.Error() == "a sport with similar name already exists" {
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport updated successfully", sport, nil)
}

func (ctrl *controller) DeleteSport(c *gin.Context) {
	sportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid sport ID", nil, err.Error())
		return
	}

	adminID, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Admin not authenticated", nil, nil)
		return
	}

	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid admin ID format", nil, nil)
		return
	}

	err = ctrl.service.DeleteSport(sportID, adminUUID)
	if err != nil {
		statusCode := http.StatusBadRequest
		if err.Error() == "sport not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sport deleted successfully", nil, nil)
}

func (ctrl *controller) GetAllSports(c *gin.Context) {
	var query SportListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	list, err := ctrl.service.GetAllSports(query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sports retrieved successfully", list, nil)
}

func (ctrl *controller) GetActiveSports(c *gin.Context) {
	list, err := ctrl.service.GetActiveSports(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Active sports retrieved successfully", list, nil)
}
