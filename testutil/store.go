// Package testutil provides shared fixtures for service and handler
// tests: an in-memory SQLite store with the full schema migrated.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/models"
)

// NewTestDB creates an in-memory SQLite database with the schema
// migrated. The connection is closed when the test completes.
func NewTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Project{},
		&models.Task{},
		&models.Holiday{},
		&models.Foreman{},
		&models.TaskForeman{},
		&models.TaskTemplate{},
	); err != nil {
		t.Fatalf("migrating test schema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return database.New(db)
}

// SeedProject inserts a project with the given stored status.
func SeedProject(t *testing.T, db database.Database, name, company, status string) models.Project {
	t.Helper()

	project := models.Project{
		ID:          uuid.New(),
		Name:        name,
		CompanyName: company,
		Status:      status,
		Start:       MustDate(t, "2024-01-01"),
		End:         MustDate(t, "2024-06-01"),
	}
	if err := db.ProjectRepo().Add(&project); err != nil {
		t.Fatalf("seeding project %s: %v", name, err)
	}
	return project
}

// SeedTask inserts a task and its foreman link, preserving the
// one-link-per-task invariant the way production writes do.
func SeedTask(t *testing.T, db database.Database, project models.Project, name string, color *string) models.Task {
	t.Helper()

	task := models.Task{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Name:      name,
		Color:     color,
		Start:     MustDate(t, "2024-01-05"),
		End:       MustDate(t, "2024-01-10"),
	}
	if err := db.TaskRepo().Add(&task); err != nil {
		t.Fatalf("seeding task %s: %v", name, err)
	}
	link := models.TaskForeman{
		ID:     uuid.New(),
		Name:   project.CompanyName,
		TaskID: task.ID,
	}
	if err := db.TaskForemanRepo().Add(&link); err != nil {
		t.Fatalf("seeding link for task %s: %v", name, err)
	}
	return task
}

// MustDate parses a calendar date literal, failing the test on error.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()

	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

// StrPtr returns a pointer to s, for nullable columns in test fixtures.
func StrPtr(s string) *string {
	return &s
}
