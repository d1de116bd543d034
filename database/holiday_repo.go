package database

import (
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type HolidayRepo struct {
	db *gorm.DB
}

func NewHolidayRepo(db *gorm.DB) *HolidayRepo {
	return &HolidayRepo{db}
}

// FindAll returns all holidays from the database
func (r *HolidayRepo) FindAll() ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Find(&holidays).Error
	return holidays, err
}

// Add inserts a new holiday into the database
func (r *HolidayRepo) Add(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}
