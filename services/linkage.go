package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
)

// TaskInput is one task row inside a project-creation request.
type TaskInput struct {
	Name  string
	Start models.Date
	End   models.Date
}

// CreateProjectInput carries everything needed to create a project and
// its initial task set in one commit.
type CreateProjectInput struct {
	Name        string
	CompanyName string
	Status      string
	Start       models.Date
	End         models.Date
	Tasks       []TaskInput
}

// LinkageService owns task lifecycle writes and keeps the
// one-link-per-task invariant: every task insert carries a TaskForeman
// insert in the same transaction, and every delete cascades to its
// dependents.
type LinkageService struct {
	logger zerolog.Logger
	db     database.Database
}

func NewLinkageService(db database.Database) LinkageService {
	logger := log.With().Str("serviceName", "linkageService").Logger()
	return LinkageService{logger: logger, db: db}
}

// CreateProject inserts the project, then each task and its link row,
// all within one transaction. The link label starts as the project's
// company name. A failure on any row leaves nothing committed.
func (s LinkageService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if input.Status == "" {
		input.Status = models.ProjectStatusActive
	}

	project := models.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		CompanyName: input.CompanyName,
		Status:      input.Status,
		Start:       input.Start,
		End:         input.End,
	}

	err := s.db.Transaction(func(tx database.Database) error {
		if err := tx.ProjectRepo().Add(&project); err != nil {
			return errs.NewDatabaseError("create", "project", err)
		}
		for _, in := range input.Tasks {
			if in.Name == "" {
				return errs.NewMissingRequiredFieldError("task")
			}
			task := models.Task{
				ID:        uuid.New(),
				ProjectID: project.ID,
				Name:      in.Name,
				Start:     in.Start,
				End:       in.End,
			}
			if err := tx.TaskRepo().Add(&task); err != nil {
				return errs.NewDatabaseError("create", "task", err)
			}
			link := models.TaskForeman{
				ID:     uuid.New(),
				Name:   project.CompanyName,
				TaskID: task.ID,
			}
			if err := tx.TaskForemanRepo().Add(&link); err != nil {
				return errs.NewDatabaseError("create", "task foreman link", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("projectId", project.ID.String()).
		Int("tasks", len(input.Tasks)).
		Msg("project created")
	return &project, nil
}

// CreateTask adds a task to an existing project together with its link
// row, labeled with the project's current company name.
func (s LinkageService) CreateTask(projectID uuid.UUID, name string, start, end models.Date) (*models.Task, error) {
	project, err := s.db.ProjectRepo().FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}

	task := models.Task{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Name:      name,
		Start:     start,
		End:       end,
	}

	err = s.db.Transaction(func(tx database.Database) error {
		if err := tx.TaskRepo().Add(&task); err != nil {
			return errs.NewDatabaseError("create", "task", err)
		}
		link := models.TaskForeman{
			ID:     uuid.New(),
			Name:   project.CompanyName,
			TaskID: task.ID,
		}
		if err := tx.TaskForemanRepo().Add(&link); err != nil {
			return errs.NewDatabaseError("create", "task foreman link", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("taskId", task.ID.String()).
		Str("projectId", project.ID.String()).
		Msg("task created")
	return &task, nil
}

// EditTask updates the task's dates and applies the foreman label
// project-wide: the link row of every sibling task and the project's
// company name field all take the new label in one transaction.
func (s LinkageService) EditTask(taskID uuid.UUID, start, end models.Date, foreman string) (*models.Task, error) {
	task, err := s.db.TaskRepo().FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("task")
		}
		return nil, errs.NewDatabaseError("find", "task", err)
	}
	if _, err := s.db.TaskForemanRepo().FindByTaskID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("task foreman link")
		}
		return nil, errs.NewDatabaseError("find", "task foreman link", err)
	}

	task.Start = start
	task.End = end

	err = s.db.Transaction(func(tx database.Database) error {
		if err := tx.TaskRepo().Update(task); err != nil {
			return errs.NewDatabaseError("update", "task", err)
		}
		if err := tx.TaskForemanRepo().RenameByProjectID(task.ProjectID, foreman); err != nil {
			return errs.NewDatabaseError("rename", "task foreman links", err)
		}
		project, err := tx.ProjectRepo().FindByID(task.ProjectID)
		if err != nil {
			return errs.NewDatabaseError("find", "project", err)
		}
		project.CompanyName = foreman
		if err := tx.ProjectRepo().Update(project); err != nil {
			return errs.NewDatabaseError("update", "project", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("taskId", taskID.String()).
		Str("foreman", foreman).
		Msg("task edited")
	return task, nil
}

// UpdateTask replaces every mutable task field. The title arrives as
// displayed, so a leading action-text prefix is stripped before the
// base name is stored; otherwise clients echoing the timeline title
// would bake the annotation into the name.
func (s LinkageService) UpdateTask(taskID uuid.UUID, title string, actionText, color *string, start, end models.Date) (*models.Task, error) {
	task, err := s.db.TaskRepo().FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("task")
		}
		return nil, errs.NewDatabaseError("find", "task", err)
	}

	name := title
	if actionText != nil && *actionText != "" {
		name = strings.TrimPrefix(name, *actionText)
	}

	task.Name = name
	task.ActionText = actionText
	task.Color = color
	task.Start = start
	task.End = end

	if err := s.db.TaskRepo().Update(task); err != nil {
		return nil, errs.NewDatabaseError("update", "task", err)
	}

	s.logger.Info().Str("taskId", taskID.String()).Msg("task updated")
	return task, nil
}

// DeleteTask removes the task and its link row in one transaction.
func (s LinkageService) DeleteTask(taskID uuid.UUID) error {
	if _, err := s.db.TaskRepo().FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("task")
		}
		return errs.NewDatabaseError("find", "task", err)
	}

	err := s.db.Transaction(func(tx database.Database) error {
		if err := tx.TaskForemanRepo().DeleteByTaskID(taskID); err != nil {
			return errs.NewDatabaseError("delete", "task foreman link", err)
		}
		if err := tx.TaskRepo().Delete(taskID); err != nil {
			return errs.NewDatabaseError("delete", "task", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("taskId", taskID.String()).Msg("task deleted")
	return nil
}

// DeleteProject removes the project, its tasks and their link rows in
// one transaction. Dependents go first so a failure part-way leaves
// the original rows intact.
func (s LinkageService) DeleteProject(projectID uuid.UUID) error {
	if _, err := s.db.ProjectRepo().FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("project")
		}
		return errs.NewDatabaseError("find", "project", err)
	}

	err := s.db.Transaction(func(tx database.Database) error {
		if err := tx.TaskForemanRepo().DeleteByProjectID(projectID); err != nil {
			return errs.NewDatabaseError("delete", "task foreman links", err)
		}
		if err := tx.TaskRepo().DeleteByProjectID(projectID); err != nil {
			return errs.NewDatabaseError("delete", "tasks", err)
		}
		if err := tx.ProjectRepo().Delete(projectID); err != nil {
			return errs.NewDatabaseError("delete", "project", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("projectId", projectID.String()).Msg("project deleted")
	return nil
}
