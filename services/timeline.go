package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
)

// TimelineGroup is a project shaped for the Gantt frontend.
type TimelineGroup struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	CompanyName string      `json:"companyName"`
	Status      string      `json:"status"`
	Start       models.Date `json:"start"`
	End         models.Date `json:"end"`
}

// TimelineItem is a task shaped for the Gantt frontend. Title is the
// displayed name: the action annotation prefixed onto the base name.
type TimelineItem struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Color      *string     `json:"color"`
	ActionText *string     `json:"actionText"`
	GroupID    string      `json:"group_id"`
	Start      models.Date `json:"start"`
	End        models.Date `json:"end"`
}

// TimelineView is the combined groups+items payload.
type TimelineView struct {
	Groups []TimelineGroup `json:"groups"`
	Items  []TimelineItem  `json:"items"`
}

// TimelineService assembles the read-side views: the combined timeline,
// the holiday list, the task→foreman label map and the template
// catalog.
type TimelineService struct {
	logger zerolog.Logger
	db     database.Database
}

func NewTimelineService(db database.Database) TimelineService {
	logger := log.With().Str("serviceName", "timelineService").Logger()
	return TimelineService{logger: logger, db: db}
}

// Timeline returns non-complete projects as groups and every task as
// an item. Items are not filtered by parent status: tasks of completed
// projects stay addressable for history. The two queries are
// independent and run concurrently.
func (s TimelineService) Timeline(ctx context.Context) (*TimelineView, error) {
	var (
		projects []models.Project
		tasks    []models.Task
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.db.ProjectRepo().FindNonComplete()
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.db.TaskRepo().FindAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errs.NewDatabaseError("assemble", "timeline", err)
	}

	view := TimelineView{
		Groups: make([]TimelineGroup, 0, len(projects)),
		Items:  make([]TimelineItem, 0, len(tasks)),
	}
	for _, p := range projects {
		view.Groups = append(view.Groups, TimelineGroup{
			ID:          p.ID.String(),
			Title:       p.Name,
			CompanyName: p.CompanyName,
			Status:      p.Status,
			Start:       p.Start,
			End:         p.End,
		})
	}
	for _, t := range tasks {
		view.Items = append(view.Items, TimelineItem{
			ID:         t.ID.String(),
			Title:      t.DisplayName(),
			Color:      t.Color,
			ActionText: t.ActionText,
			GroupID:    t.ProjectID.String(),
			Start:      t.Start,
			End:        t.End,
		})
	}
	return &view, nil
}

// Holidays returns all holiday records verbatim.
func (s TimelineService) Holidays() ([]models.Holiday, error) {
	holidays, err := s.db.HolidayRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("list", "holidays", err)
	}
	return holidays, nil
}

// ForemanMap returns taskId → foreman label, one entry per link row.
func (s TimelineService) ForemanMap() (map[string]string, error) {
	links, err := s.db.TaskForemanRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("list", "task foreman links", err)
	}
	m := make(map[string]string, len(links))
	for _, link := range links {
		m[link.TaskID.String()] = link.Name
	}
	return m, nil
}

// TaskTemplates returns the picker catalog.
func (s TimelineService) TaskTemplates() ([]models.TaskTemplate, error) {
	templates, err := s.db.TaskTemplateRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("list", "task templates", err)
	}
	return templates, nil
}
