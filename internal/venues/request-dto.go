package venues

type CreateVenueRequest struct {
	Name        string             `json:"name" binding:"required,min=2,max=150"`
	Description string             `json:"description" binding:"max=1000"`
	Address     string             `json:"address" binding:"required,max=300"`
	City        string             `json:"city" binding:"required,max=100"`
	Timezone    string             `json:"timezone" binding:"omitempty,max=50"`
	OpenHour    *int               `json:"open_hour" binding:"omitempty,min=0,max=23"`
	CloseHour   *int               `json:"close_hour" binding:"omitempty,min=1,max=23"`
	Images      []string           `json:"images" binding:"omitempty,max=10"`
	SportPrices []SportPriceInput  `json:"sport_prices" binding:"omitempty,dive"`
}

type SportPriceInput struct {
	Sport        string  `json:"sport" binding:"required,max=100"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=150"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Address     *string  `json:"address" binding:"omitempty,max=300"`
	City        *string  `json:"city" binding:"omitempty,max=100"`
	Timezone    *string  `json:"timezone" binding:"omitempty,max=50"`
	OpenHour    *int     `json:"open_hour" binding:"omitempty,min=0,max=23"`
	CloseHour   *int     `json:"close_hour" binding:"omitempty,min=1,max=23"`
	Images      []string `json:"images" binding:"omitempty,max=10"`
	IsActive    *bool    `json:"is_active"`
}

type CreateCourtRequest struct {
	Sport string `json:"sport" binding:"required,max=100"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateCourtRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

type VenueListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	City   string `form:"city"`
	Sport  string `form:"sport"`
	Search string `form:"search"`
}
