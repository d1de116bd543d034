package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Task removal answers to both PUT
// and DELETE because existing callers use either verb.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project endpoints
		r.Get("/projects/active", handlers.projectHandler.listActive())
		r.Get("/projects/onhold", handlers.projectHandler.listOnHold())
		r.Get("/projects/completed", handlers.projectHandler.listCompleted())
		r.Post("/projects", handlers.projectHandler.create())
		r.Delete("/projects/{projectID}", handlers.projectHandler.remove())
		r.Put("/projects/{projectID}/status", handlers.projectHandler.convertStatus())

		// Task endpoints
		r.Post("/tasks", handlers.taskHandler.create())
		r.Put("/tasks/{taskID}", handlers.taskHandler.edit())
		r.Post("/tasks/{taskID}/update", handlers.taskHandler.fullUpdate())
		r.Put("/tasks/{taskID}/remove", handlers.taskHandler.remove())
		r.Delete("/tasks/{taskID}/remove", handlers.taskHandler.remove())
		r.Put("/tasks/{taskID}/status", handlers.taskHandler.convertStatus())
		r.Get("/tasks/foremen-map", handlers.taskHandler.foremanMap())

		// Timeline and catalog endpoints
		r.Get("/timeline", handlers.timelineHandler.combined())
		r.Get("/task-templates", handlers.timelineHandler.taskTemplates())
		r.Get("/holidays", handlers.holidayHandler.list())
		r.Post("/holidays", handlers.holidayHandler.create())
		r.Get("/foremen", handlers.foremanHandler.list())
		r.Post("/foremen", handlers.foremanHandler.create())
	})
}
