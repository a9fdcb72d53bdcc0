package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/workouts/", handler.CreateWorkout)
	app.Get("/workouts/", handler.ListWorkouts)
	app.Delete("/workouts/:id", handler.DeleteWorkout)

	app.Get("/analytics/", handler.GetAnalytics)
}
