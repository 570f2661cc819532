package sports

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"playbox/internal/shared/constants"
	"playbox/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	// Admin CRUD operations
	CreateSport(adminID uuid.UUID, req CreateSportRequest) (*SportResponse, error)
	GetSportByID(id uuid.UUID) (*SportResponse, error)
	GetSportBySlug(ctx context.Context, slug string) (*SportResponse, error)
	UpdateSport(id uuid.UUID, adminID uuid.UUID, req UpdateSportRequest) (*SportResponse, error)
	DeleteSport(id uuid.UUID, adminID uuid.UUID) error
	GetAllSports(query SportListQuery) (*PaginatedSports, error)
	GetActiveSports(ctx context.Context) ([]SportResponse, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

// Helper function to generate slug from name
func generateSlug(name string) string {
	slug := strings.ToLower(name)

	reg := regexp.MustCompile(`[^\w\s-]`)
	slug = reg.ReplaceAllString(slug, "")

	reg = regexp.MustCompile(`[\s-]+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")

	return slug
}

func (s *service) CreateSport(adminID uuid.UUID, req CreateSportRequest) (*SportResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("sport name cannot be empty")
	}

	slug := generateSlug(name)
	if slug == "" {
		return nil, errors.New("sport name must contain at least one alphanumeric character")
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing sport: %w", err)
	}
	if existing != nil {
		return nil, errors.New("a sport with similar name already exists")
	}

	sport := &Sport{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		IsActive:    true,
		CreatedBy:   adminID,
	}

	if err := s.repo.Create(sport); err != nil {
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}

	s.invalidateCache()

	response := sport.ToResponse()
	return &response, nil
}

func (s *service) GetSportByID(id uuid.UUID) (*SportResponse, error) {
	sport, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("sport not found")
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}

	response := sport.ToResponse()
	return &response, nil
}

func (s *service) GetSportBySlug(ctx context.Context, slug string) (*SportResponse, error) {
	var cached SportResponse
	cacheKey := constants.BuildSportBySlugKey(slug)
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	sport, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("sport not found")
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}

	response := sport.ToResponse()
	_ = s.cache.Set(ctx, cacheKey, response, constants.TTL_SPORT_DETAIL)
	return &response, nil
}

func (s *service) UpdateSport(id uuid.UUID, adminID uuid.UUID, req UpdateSportRequest) (*SportResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("sport not found")
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("sport name cannot be empty")
		}

		slug := generateSlug(name)
		if slug == "" {
			return nil, errors.New("sport name must contain at least one alphanumeric character")
		}

		if slug != current.Slug {
			existing, err := s.repo.GetBySlug(slug)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing sport: %w", err)
			}
			if existing != nil && existing.ID != current.ID {
				return nil, errors.New("a sport with similar name already exists")
			}
		}

		updates["name"] = name
		updates["slug"] = slug
	}

	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	if req.Icon != nil {
		updates["icon"] = strings.TrimSpace(*req.Icon)
	}

	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	updates["updated_at"] = time.Now()
	updates["updated_by"] = adminID

	updated, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update sport: %w", err)
	}

	s.invalidateCache()

	response := updated.ToResponse()
	return &response, nil
}

func (s *service) DeleteSport(id uuid.UUID, adminID uuid.UUID) error {
	sport, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("sport not found")
		}
		return fmt.Errorf("failed to get sport: %w", err)
	}

	venueCount, err := s.repo.CountVenuesOffering(sport.Slug)
	if err != nil {
		return fmt.Errorf("failed to check sport usage: %w", err)
	}

	if venueCount > 0 {
		return fmt.Errorf("cannot delete sport as it is offered by %d venue(s). Consider deactivating it instead", venueCount)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sport: %w", err)
	}

	s.invalidateCache()
	return nil
}

func (s *service) GetAllSports(query SportListQuery) (*PaginatedSports, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	list, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get sports: %w", err)
	}

	responses := make([]SportResponse, len(list))
	for i, sport := range list {
		responses[i] = sport.ToResponse()
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &PaginatedSports{
		Sports:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetActiveSports(ctx context.Context) ([]SportResponse, error) {
	var cached []SportResponse
	if err := s.cache.Get(ctx, constants.CACHE_KEY_SPORTS_ACTIVE, &cached); err == nil {
		return cached, nil
	}

	list, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active sports: %w", err)
	}

	responses := make([]SportResponse, len(list))
	for i, sport := range list {
		responses[i] = sport.ToResponse()
	}

	_ = s.cache.Set(ctx, constants.CACHE_KEY_SPORTS_ACTIVE, responses, constants.TTL_SPORTS_ACTIVE)
	return responses, nil
}

func (s *service) invalidateCache() {
	go func() {
		_ = s.cache.DeletePattern(context.Background(), constants.PATTERN_INVALIDATE_SPORTS_ALL)
	}()
}
