package database

import (
	"gorm.io/gorm"
)

type Database struct {
	db               *gorm.DB
	projectRepo      *ProjectRepo
	taskRepo         *TaskRepo
	holidayRepo      *HolidayRepo
	foremanRepo      *ForemanRepo
	taskForemanRepo  *TaskForemanRepo
	taskTemplateRepo *TaskTemplateRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		projectRepo:      NewProjectRepo(db),
		taskRepo:         NewTaskRepo(db),
		holidayRepo:      NewHolidayRepo(db),
		foremanRepo:      NewForemanRepo(db),
		taskForemanRepo:  NewTaskForemanRepo(db),
		taskTemplateRepo: NewTaskTemplateRepo(db),
	}
}

// Transaction runs fn with the whole repository set rebound to one
// transaction connection. Multi-row writes (create-project-with-tasks,
// cascading deletes, foreman relabeling) go through here so a failure
// mid-sequence rolls every row back together. There is no shared
// session: each request opens, commits and releases its own scope.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TaskRepo() *TaskRepo {
	return d.taskRepo
}

func (d Database) HolidayRepo() *HolidayRepo {
	return d.holidayRepo
}

func (d Database) ForemanRepo() *ForemanRepo {
	return d.foremanRepo
}

func (d Database) TaskForemanRepo() *TaskForemanRepo {
	return d.taskForemanRepo
}

func (d Database) TaskTemplateRepo() *TaskTemplateRepo {
	return d.taskTemplateRepo
}
