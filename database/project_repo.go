package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindNonComplete returns every project whose stored status is not
// "complete". These are the timeline groups.
func (r *ProjectRepo) FindNonComplete() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("status <> ?", models.ProjectStatusComplete).
		Find(&projects).Error
	return projects, err
}

// FindByStatus returns projects with the exact stored status value.
func (r *ProjectRepo) FindByStatus(status string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("status = ?", status).Find(&projects).Error
	return projects, err
}

// onHoldProjectIDs is the subquery selecting ids of projects that own
// at least one task carrying the on-hold marker.
func (r *ProjectRepo) onHoldProjectIDs() *gorm.DB {
	return r.db.Model(&models.Task{}).
		Distinct("project_id").
		Where("color = ?", models.ColorOnHold)
}

// FindActive computes the derived active set: not complete, and not in
// the on-hold subquery. A project with no tasks is active by default.
func (r *ProjectRepo) FindActive() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("status <> ?", models.ProjectStatusComplete).
		Where("id NOT IN (?)", r.onHoldProjectIDs()).
		Find(&projects).Error
	return projects, err
}

// FindOnHold computes the derived on-hold set: every project owning at
// least one on-hold-marked task, regardless of its own stored status.
func (r *ProjectRepo) FindOnHold() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Where("id IN (?)", r.onHoldProjectIDs()).
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
