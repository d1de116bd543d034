package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db}
}

// FindAll returns every task. The timeline item set is deliberately
// unfiltered by parent project status so tasks of completed projects
// stay addressable.
func (r *TaskRepo) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Find(&tasks).Error
	return tasks, err
}

// FindByID returns a task by its ID
func (r *TaskRepo) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByProjectID returns the tasks owned by a project.
func (r *TaskRepo) FindByProjectID(projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error
	return tasks, err
}

// Add inserts a new task into the database
func (r *TaskRepo) Add(task *models.Task) error {
	return r.db.Create(task).Error
}

// Update updates an existing task in the database
func (r *TaskRepo) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task from the database by id
func (r *TaskRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// DeleteByProjectID removes every task owned by a project. Used by the
// project-delete cascade.
func (r *TaskRepo) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "project_id = ?", projectID).Error
}
