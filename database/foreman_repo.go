package database

import (
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type ForemanRepo struct {
	db *gorm.DB
}

func NewForemanRepo(db *gorm.DB) *ForemanRepo {
	return &ForemanRepo{db}
}

// FindAll returns all foremen from the database
func (r *ForemanRepo) FindAll() ([]models.Foreman, error) {
	var foremen []models.Foreman
	err := r.db.Find(&foremen).Error
	return foremen, err
}

// Add inserts a new foreman into the database
func (r *ForemanRepo) Add(foreman *models.Foreman) error {
	return r.db.Create(foreman).Error
}
