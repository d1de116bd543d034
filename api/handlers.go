package api

import (
	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/services"
)

type routeHandlers struct {
	projectHandler  projectHandler
	taskHandler     taskHandler
	holidayHandler  holidayHandler
	foremanHandler  foremanHandler
	timelineHandler timelineHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database) *routeHandlers {
	status := services.NewStatusService(db)
	linkage := services.NewLinkageService(db)
	timeline := services.NewTimelineService(db)

	return &routeHandlers{
		projectHandler:  newProjectHandler(status, linkage),
		taskHandler:     newTaskHandler(status, linkage, timeline),
		holidayHandler:  newHolidayHandler(db.HolidayRepo()),
		foremanHandler:  newForemanHandler(db.ForemanRepo()),
		timelineHandler: newTimelineHandler(timeline),
	}
}
