// Package seed loads the static task-template catalog from a YAML file
// at startup. The catalog only populates the task-creation picker, so
// seeding is skipped entirely once any rows exist.
package seed

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/models"
)

type templateGroup struct {
	Type  string   `yaml:"type"`
	Tasks []string `yaml:"tasks"`
}

// LoadTemplates parses a catalog file of the form:
//
//	- type: Sitework
//	  tasks: [Grading, Excavation]
func LoadTemplates(path string) ([]models.TaskTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template catalog: %w", err)
	}

	var groups []templateGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing template catalog: %w", err)
	}

	var templates []models.TaskTemplate
	for _, g := range groups {
		if g.Type == "" {
			return nil, fmt.Errorf("template group with empty type")
		}
		for _, name := range g.Tasks {
			if name == "" {
				continue
			}
			templates = append(templates, models.TaskTemplate{
				ID:   uuid.New(),
				Type: g.Type,
				Task: name,
			})
		}
	}
	return templates, nil
}

// ApplyTemplates seeds the catalog from path when the table is empty.
func ApplyTemplates(db database.Database, path string, logger zerolog.Logger) error {
	count, err := db.TaskTemplateRepo().Count()
	if err != nil {
		return fmt.Errorf("counting task templates: %w", err)
	}
	if count > 0 {
		logger.Debug().Int64("existing", count).Msg("template catalog already seeded")
		return nil
	}

	templates, err := LoadTemplates(path)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx database.Database) error {
		for i := range templates {
			if err := tx.TaskTemplateRepo().Add(&templates[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seeding task templates: %w", err)
	}

	logger.Info().Int("templates", len(templates)).Str("file", path).Msg("template catalog seeded")
	return nil
}
