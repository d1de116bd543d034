package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/models"
)

type TaskForemanRepo struct {
	db *gorm.DB
}

func NewTaskForemanRepo(db *gorm.DB) *TaskForemanRepo {
	return &TaskForemanRepo{db}
}

// FindAll returns all task-foreman links from the database
func (r *TaskForemanRepo) FindAll() ([]models.TaskForeman, error) {
	var links []models.TaskForeman
	err := r.db.Find(&links).Error
	return links, err
}

// FindByTaskID returns the single link row for a task.
func (r *TaskForemanRepo) FindByTaskID(taskID uuid.UUID) (*models.TaskForeman, error) {
	var link models.TaskForeman
	err := r.db.First(&link, "task_id = ?", taskID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Add inserts a new task-foreman link into the database
func (r *TaskForemanRepo) Add(link *models.TaskForeman) error {
	return r.db.Create(link).Error
}

// RenameByTaskID updates the foreman label carried on one task's link.
func (r *TaskForemanRepo) RenameByTaskID(taskID uuid.UUID, name string) error {
	return r.db.Model(&models.TaskForeman{}).
		Where("task_id = ?", taskID).
		Update("name", name).Error
}

// RenameByProjectID relabels the link row of every task owned by the
// project in one statement, keeping sibling labels from drifting when
// a foreman change applies project-wide.
func (r *TaskForemanRepo) RenameByProjectID(projectID uuid.UUID, name string) error {
	sub := r.db.Model(&models.Task{}).
		Select("id").
		Where("project_id = ?", projectID)
	return r.db.Model(&models.TaskForeman{}).
		Where("task_id IN (?)", sub).
		Update("name", name).Error
}

// DeleteByTaskID removes the link row for a task. Part of the
// task-delete cascade.
func (r *TaskForemanRepo) DeleteByTaskID(taskID uuid.UUID) error {
	return r.db.Delete(&models.TaskForeman{}, "task_id = ?", taskID).Error
}

// DeleteByProjectID removes the link rows of every task owned by the
// project. Part of the project-delete cascade.
func (r *TaskForemanRepo) DeleteByProjectID(projectID uuid.UUID) error {
	sub := r.db.Model(&models.Task{}).
		Select("id").
		Where("project_id = ?", projectID)
	return r.db.Delete(&models.TaskForeman{}, "task_id IN (?)", sub).Error
}
