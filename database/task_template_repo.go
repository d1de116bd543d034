package database

import (
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type TaskTemplateRepo struct {
	db *gorm.DB
}

func NewTaskTemplateRepo(db *gorm.DB) *TaskTemplateRepo {
	return &TaskTemplateRepo{db}
}

// FindAll returns the whole template catalog, ordered for stable
// picker rendering.
func (r *TaskTemplateRepo) FindAll() ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	err := r.db.Order("type, task").Find(&templates).Error
	return templates, err
}

// Count returns the number of catalog rows. The seeder uses it to
// apply the seed file only on an empty catalog.
func (r *TaskTemplateRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TaskTemplate{}).Count(&count).Error
	return count, err
}

// Add inserts a new task template into the database
func (r *TaskTemplateRepo) Add(template *models.TaskTemplate) error {
	return r.db.Create(template).Error
}
