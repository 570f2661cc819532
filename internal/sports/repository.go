package sports

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(sport *Sport) error
	GetByID(id uuid.UUID) (*Sport, error)
	GetBySlug(slug string) (*Sport, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Sport, error)
	Delete(id uuid.UUID) error
	GetAll(query SportListQuery) ([]Sport, int64, error)
	GetActive() ([]Sport, error)
	CountVenuesOffering(sportSlug string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(sport *Sport) error {
	return r.db.Create(sport).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Sport, error) {
	var sport Sport
	err := r.db.Where("id = ?", id).First(&sport).Error
	if err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *repository) GetBySlug(slug string) (*Sport, error) {
	var sport Sport
	err := r.db.Where("slug = ?", slug).First(&sport).Error
	if err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Sport, error) {
	var sport Sport

	if err := r.db.Where("id = ?", id).First(&sport).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&sport).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", id).First(&sport).Error; err != nil {
		return nil, err
	}

	return &sport, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&Sport{}).Error
}

func (r *repository) GetAll(query SportListQuery) ([]Sport, int64, error) {
	var list []Sport
	var totalCount int64

	db := r.db.Model(&Sport{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "desc"

	if query.SortBy != "" {
		sortBy = query.SortBy
	}
	if query.SortOrder != "" {
		sortOrder = query.SortOrder
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	offset := (query.Page - 1) * query.Limit

	err := db.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
		Offset(offset).
		Limit(query.Limit).
		Find(&list).Error

	return list, totalCount, err
}

func (r *repository) GetActive() ([]Sport, error) {
	var list []Sport
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&list).Error
	return list, err
}

// CountVenuesOffering reports how many venues price this sport, used to
// block deletion of a sport that venues still offer.
func (r *repository) CountVenuesOffering(sportSlug string) (int64, error) {
	var count int64
	err := r.db.Table("sport_prices").
		Where("sport = ?", sportSlug).
		Count(&count).Error
	return count, err
}
