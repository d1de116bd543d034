package database_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/testutil"
)

func TestTransactionRollsBackEveryRow(t *testing.T) {
	db := testutil.NewTestDB(t)

	boom := errors.New("boom")
	err := db.Transaction(func(tx database.Database) error {
		project := models.Project{
			ID:          uuid.New(),
			Name:        "P1",
			CompanyName: "Acme",
			Status:      models.ProjectStatusActive,
			Start:       testutil.MustDate(t, "2024-01-01"),
			End:         testutil.MustDate(t, "2024-06-01"),
		}
		if err := tx.ProjectRepo().Add(&project); err != nil {
			return err
		}
		task := models.Task{
			ID:        uuid.New(),
			ProjectID: project.ID,
			Name:      "Grading",
			Start:     testutil.MustDate(t, "2024-01-05"),
			End:       testutil.MustDate(t, "2024-01-10"),
		}
		if err := tx.TaskRepo().Add(&task); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction error = %v, want the inner failure", err)
	}

	projects, err := db.ProjectRepo().FindByStatus(models.ProjectStatusActive)
	if err != nil {
		t.Fatalf("FindByStatus: %v", err)
	}
	tasks, err := db.TaskRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(projects) != 0 || len(tasks) != 0 {
		t.Errorf("rows survived rollback: %d projects, %d tasks", len(projects), len(tasks))
	}
}

func TestTaskForemanUniquePerTask(t *testing.T) {
	db := testutil.NewTestDB(t)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	// SeedTask already created the one allowed link; a second insert
	// must hit the unique index.
	dup := models.TaskForeman{ID: uuid.New(), Name: "Other", TaskID: task.ID}
	if err := db.TaskForemanRepo().Add(&dup); err == nil {
		t.Fatal("second link row for one task accepted")
	}
}

func TestRenameByProjectIDOnlyTouchesOwnedTasks(t *testing.T) {
	db := testutil.NewTestDB(t)

	p1 := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	owned := testutil.SeedTask(t, db, p1, "Grading", nil)
	p2 := testutil.SeedProject(t, db, "P2", "Zenith", models.ProjectStatusActive)
	foreign := testutil.SeedTask(t, db, p2, "Paving", nil)

	if err := db.TaskForemanRepo().RenameByProjectID(p1.ID, "Bob's Crew"); err != nil {
		t.Fatalf("RenameByProjectID: %v", err)
	}

	link, err := db.TaskForemanRepo().FindByTaskID(owned.ID)
	if err != nil {
		t.Fatalf("FindByTaskID: %v", err)
	}
	if link.Name != "Bob's Crew" {
		t.Errorf("owned link = %q, want renamed", link.Name)
	}

	link, err = db.TaskForemanRepo().FindByTaskID(foreign.ID)
	if err != nil {
		t.Fatalf("FindByTaskID: %v", err)
	}
	if link.Name != "Zenith" {
		t.Errorf("foreign link = %q, must be untouched", link.Name)
	}
}
