package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository exposes the global expense-category taxonomy.
type CategoryRepository interface {
	List() ([]models.Category, error)
	GetByKey(key string) (*models.Category, error)
	Upsert(category *models.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("key ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByKey(key string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("key = ?", key).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) Upsert(category *models.Category) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "icon", "color"}),
	}).Create(category).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category: %w", err)
	}
	return nil
}
