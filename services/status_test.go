package services_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/services"
	"github.com/crewtrack/timeline-backend/testutil"
)

func containsProject(projects []models.Project, id uuid.UUID) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestActiveProjectDerivation(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	// Stored status says "active" for all three; only task markers and
	// the complete flag decide the derived sets.
	clean := testutil.SeedProject(t, db, "Clean", "Acme", models.ProjectStatusActive)
	testutil.SeedTask(t, db, clean, "Grading", nil)

	held := testutil.SeedProject(t, db, "Held", "Acme", models.ProjectStatusActive)
	testutil.SeedTask(t, db, held, "Footings", testutil.StrPtr(models.ColorOnHold))
	testutil.SeedTask(t, db, held, "Framing", nil)

	empty := testutil.SeedProject(t, db, "Empty", "Acme", models.ProjectStatusActive)

	done := testutil.SeedProject(t, db, "Done", "Acme", models.ProjectStatusComplete)

	active, err := status.ActiveProjects()
	if err != nil {
		t.Fatalf("ActiveProjects: %v", err)
	}
	if !containsProject(active, clean.ID) {
		t.Error("project with only normal tasks missing from active set")
	}
	if !containsProject(active, empty.ID) {
		t.Error("zero-task project must be active by default")
	}
	if containsProject(active, held.ID) {
		t.Error("project with an on-hold task leaked into active set despite stored status \"active\"")
	}
	if containsProject(active, done.ID) {
		t.Error("complete project leaked into active set")
	}

	onHold, err := status.OnHoldProjects()
	if err != nil {
		t.Fatalf("OnHoldProjects: %v", err)
	}
	if len(onHold) != 1 || onHold[0].ID != held.ID {
		t.Errorf("OnHoldProjects = %v, want exactly the project owning the marked task", onHold)
	}

	completed, err := status.CompletedProjects()
	if err != nil {
		t.Fatalf("CompletedProjects: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != done.ID {
		t.Errorf("CompletedProjects = %v, want exactly the stored-complete project", completed)
	}
}

func TestMarkTaskOnHoldShowsParentOnHold(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	if _, err := status.MarkTaskOnHold(task.ID); err != nil {
		t.Fatalf("MarkTaskOnHold: %v", err)
	}

	onHold, err := status.OnHoldProjects()
	if err != nil {
		t.Fatalf("OnHoldProjects: %v", err)
	}
	if !containsProject(onHold, project.ID) {
		t.Error("parent project missing from on-hold set after MarkTaskOnHold")
	}

	active, err := status.ActiveProjects()
	if err != nil {
		t.Fatalf("ActiveProjects: %v", err)
	}
	if containsProject(active, project.ID) {
		t.Error("parent project still active after MarkTaskOnHold")
	}
}

func TestMarkTaskActiveClearsMarkerAndAnnotation(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	if _, err := status.MarkTaskActionNeeded(task.ID, "CALL INSPECTOR "); err != nil {
		t.Fatalf("MarkTaskActionNeeded: %v", err)
	}

	got, err := status.MarkTaskActive(task.ID)
	if err != nil {
		t.Fatalf("MarkTaskActive: %v", err)
	}
	if got.Color != nil {
		t.Errorf("color = %q, want nil", *got.Color)
	}
	if got.ActionText != nil {
		t.Errorf("actionText = %q, want nil", *got.ActionText)
	}
	if got.Name != "Grading" {
		t.Errorf("name = %q, want base name %q", got.Name, "Grading")
	}
	if got.DisplayName() != "Grading" {
		t.Errorf("display name %q still carries annotation", got.DisplayName())
	}
}

func TestMarkTaskActionNeededIsIdempotentOnName(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	// Converting twice without reverting used to compound the prefix;
	// the stored base name plus computed title closes that gap.
	for i := 0; i < 2; i++ {
		if _, err := status.MarkTaskActionNeeded(task.ID, "X"); err != nil {
			t.Fatalf("MarkTaskActionNeeded call %d: %v", i+1, err)
		}
	}

	got, err := db.TaskRepo().FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "Grading" {
		t.Errorf("stored name = %q, annotation leaked into it", got.Name)
	}
	if got.DisplayName() != "XGrading" {
		t.Errorf("display name = %q, want %q", got.DisplayName(), "XGrading")
	}
	if got.Status() != models.TaskStatusActionNeeded {
		t.Errorf("status = %v, want action-needed", got.Status())
	}
}

func TestMarkTaskActionNeededRequiresText(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	_, err := status.MarkTaskActionNeeded(task.ID, "")
	if err == nil {
		t.Fatal("MarkTaskActionNeeded with empty text succeeded")
	}
}

func TestMarkProjectComplete(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", testutil.StrPtr(models.ColorOnHold))

	if _, err := status.MarkProjectComplete(project.ID); err != nil {
		t.Fatalf("MarkProjectComplete: %v", err)
	}

	active, err := status.ActiveProjects()
	if err != nil {
		t.Fatalf("ActiveProjects: %v", err)
	}
	if containsProject(active, project.ID) {
		t.Error("complete project still in active set")
	}

	completed, err := status.CompletedProjects()
	if err != nil {
		t.Fatalf("CompletedProjects: %v", err)
	}
	if !containsProject(completed, project.ID) {
		t.Error("project missing from completed set")
	}

	// Completion is a project-level flag; task markers are untouched.
	got, err := db.TaskRepo().FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status() != models.TaskStatusOnHold {
		t.Errorf("task marker changed by project completion: %v", got.Status())
	}
}

func TestStatusTransitionsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	status := services.NewStatusService(db)

	if _, err := status.MarkTaskActive(uuid.New()); !errs.IsNotFound(err) {
		t.Errorf("MarkTaskActive on missing task: %v, want not-found", err)
	}
	if _, err := status.MarkTaskOnHold(uuid.New()); !errs.IsNotFound(err) {
		t.Errorf("MarkTaskOnHold on missing task: %v, want not-found", err)
	}
	if _, err := status.MarkTaskActionNeeded(uuid.New(), "X"); !errs.IsNotFound(err) {
		t.Errorf("MarkTaskActionNeeded on missing task: %v, want not-found", err)
	}
	if _, err := status.MarkProjectComplete(uuid.New()); !errs.IsNotFound(err) {
		t.Errorf("MarkProjectComplete on missing project: %v, want not-found", err)
	}
}
