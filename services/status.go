package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
)

// StatusService derives project status from task color markers and
// applies status transitions. A project is on hold when any of its
// tasks carries the hold marker, active when it is not complete and no
// task does, complete only when its own stored status says so.
type StatusService struct {
	logger zerolog.Logger
	db     database.Database
}

func NewStatusService(db database.Database) StatusService {
	logger := log.With().Str("serviceName", "statusService").Logger()
	return StatusService{logger: logger, db: db}
}

// ActiveProjects returns the set difference: non-complete projects
// minus projects owning at least one on-hold-marked task. A project
// with zero tasks is active.
func (s StatusService) ActiveProjects() ([]models.Project, error) {
	projects, err := s.db.ProjectRepo().FindActive()
	if err != nil {
		return nil, errs.NewDatabaseError("list active", "projects", err)
	}
	return projects, nil
}

// OnHoldProjects returns projects owning at least one on-hold-marked
// task, regardless of their own stored status field.
func (s StatusService) OnHoldProjects() ([]models.Project, error) {
	projects, err := s.db.ProjectRepo().FindOnHold()
	if err != nil {
		return nil, errs.NewDatabaseError("list on-hold", "projects", err)
	}
	return projects, nil
}

// CompletedProjects returns projects whose stored status is exactly
// "complete".
func (s StatusService) CompletedProjects() ([]models.Project, error) {
	projects, err := s.db.ProjectRepo().FindByStatus(models.ProjectStatusComplete)
	if err != nil {
		return nil, errs.NewDatabaseError("list completed", "projects", err)
	}
	return projects, nil
}

// MarkTaskActive clears the task's color marker and action annotation.
// The stored name is the base name and is left untouched; clearing the
// annotation is what removes the prefix from the displayed title.
func (s StatusService) MarkTaskActive(taskID uuid.UUID) (*models.Task, error) {
	return s.transition(taskID, models.TaskStatusNormal, nil)
}

// MarkTaskOnHold sets the hold marker on the task and clears any action
// annotation. The parent project shows up in the on-hold listing from
// the next derivation on.
func (s StatusService) MarkTaskOnHold(taskID uuid.UUID) (*models.Task, error) {
	return s.transition(taskID, models.TaskStatusOnHold, nil)
}

// MarkTaskActionNeeded sets the action marker and annotation. The
// annotation is stored separately and prefixed onto the title at
// projection time, so repeating the call replaces the annotation
// instead of compounding a prefix into the name.
func (s StatusService) MarkTaskActionNeeded(taskID uuid.UUID, text string) (*models.Task, error) {
	if text == "" {
		return nil, errs.NewMissingRequiredFieldError("text")
	}
	return s.transition(taskID, models.TaskStatusActionNeeded, &text)
}

func (s StatusService) transition(taskID uuid.UUID, status models.TaskStatus, actionText *string) (*models.Task, error) {
	task, err := s.db.TaskRepo().FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("task")
		}
		return nil, errs.NewDatabaseError("find", "task", err)
	}

	task.Color = status.ColorMarker()
	task.ActionText = actionText

	if err := s.db.TaskRepo().Update(task); err != nil {
		return nil, errs.NewDatabaseError("update", "task", err)
	}

	s.logger.Info().
		Str("taskId", taskID.String()).
		Str("status", status.String()).
		Msg("task status changed")
	return task, nil
}

// MarkProjectComplete sets the project's stored status to "complete"
// unconditionally. Task markers are not touched: completion is a
// terminal flag on the project itself, not a derived condition.
func (s StatusService) MarkProjectComplete(projectID uuid.UUID) (*models.Project, error) {
	project, err := s.db.ProjectRepo().FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}

	project.Status = models.ProjectStatusComplete
	if err := s.db.ProjectRepo().Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	s.logger.Info().
		Str("projectId", projectID.String()).
		Msg("project marked complete")
	return project, nil
}
