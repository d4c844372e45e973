// handlers/goal_routes.go
package handlers

import (
	"inspireup-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGoalRoutes(app *fiber.App, goalService *services.GoalService) {
	app.Get("/goals", goalService.GetAllGoals)
	app.Post("/goals", goalService.CreateGoal)
	app.Patch("/goals/:id/steps/:stepId", goalService.ToggleStep)
}
