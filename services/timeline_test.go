package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/services"
	"github.com/crewtrack/timeline-backend/testutil"
)

func TestTimelineGroupsAndItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	timeline := services.NewTimelineService(db)

	open := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, open, "Grading", nil)

	done := testutil.SeedProject(t, db, "Old", "Acme", models.ProjectStatusComplete)
	historic := testutil.SeedTask(t, db, done, "Cleanup", nil)

	view, err := timeline.Timeline(context.Background())
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}

	// Groups exclude completed projects.
	if len(view.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(view.Groups))
	}
	group := view.Groups[0]
	if group.ID != open.ID.String() || group.Title != "P1" || group.CompanyName != "Acme" {
		t.Errorf("group = %+v, want the open project", group)
	}

	// Items include every task, even those of completed projects.
	if len(view.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(view.Items))
	}
	byID := map[string]services.TimelineItem{}
	for _, item := range view.Items {
		byID[item.ID] = item
	}
	got, ok := byID[task.ID.String()]
	if !ok {
		t.Fatal("open project's task missing from items")
	}
	if got.GroupID != open.ID.String() {
		t.Errorf("item group_id = %s, want parent project id", got.GroupID)
	}
	if _, ok := byID[historic.ID.String()]; !ok {
		t.Error("completed project's task missing from items; history must stay addressable")
	}
}

func TestTimelineItemTitleCarriesAnnotation(t *testing.T) {
	db := testutil.NewTestDB(t)
	timeline := services.NewTimelineService(db)
	status := services.NewStatusService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	task := testutil.SeedTask(t, db, project, "Grading", nil)

	if _, err := status.MarkTaskActionNeeded(task.ID, "CALL "); err != nil {
		t.Fatalf("MarkTaskActionNeeded: %v", err)
	}

	view, err := timeline.Timeline(context.Background())
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(view.Items))
	}
	item := view.Items[0]
	if item.Title != "CALL Grading" {
		t.Errorf("item title = %q, want annotated title", item.Title)
	}
	if item.Color == nil || *item.Color != models.ColorActionNeeded {
		t.Errorf("item color = %v, want action marker", item.Color)
	}
}

func TestTimelineEmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	timeline := services.NewTimelineService(db)

	view, err := timeline.Timeline(context.Background())
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	// Empty slices, not nulls: the frontend iterates both collections.
	if view.Groups == nil || view.Items == nil {
		t.Error("empty timeline must serialize as empty arrays")
	}
}

func TestForemanMap(t *testing.T) {
	db := testutil.NewTestDB(t)
	timeline := services.NewTimelineService(db)

	project := testutil.SeedProject(t, db, "P1", "Acme", models.ProjectStatusActive)
	a := testutil.SeedTask(t, db, project, "Grading", nil)
	b := testutil.SeedTask(t, db, project, "Footings", nil)

	m, err := timeline.ForemanMap()
	if err != nil {
		t.Fatalf("ForemanMap: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("map size = %d, want one entry per link", len(m))
	}
	if m[a.ID.String()] != "Acme" || m[b.ID.String()] != "Acme" {
		t.Errorf("map = %v, want both tasks labeled Acme", m)
	}
}

func TestTaskTemplates(t *testing.T) {
	db := testutil.NewTestDB(t)
	timeline := services.NewTimelineService(db)

	for _, tmpl := range []models.TaskTemplate{
		{ID: uuid.New(), Type: "Sitework", Task: "Grading"},
		{ID: uuid.New(), Type: "Concrete", Task: "Footings"},
	} {
		tmpl := tmpl
		if err := db.TaskTemplateRepo().Add(&tmpl); err != nil {
			t.Fatalf("seeding template: %v", err)
		}
	}

	templates, err := timeline.TaskTemplates()
	if err != nil {
		t.Fatalf("TaskTemplates: %v", err)
	}
	if len(templates) != 2 {
		t.Errorf("templates = %d, want 2", len(templates))
	}
}
