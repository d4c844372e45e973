// handlers/ai_routes.go
package handlers

import (
	"strings"

	"inspireup-backend/services"

	"github.com/gofiber/fiber/v2"
)

// AI endpoints are collaborator passthroughs: a failing or garbled model is
// recovered locally, never surfaced as a user-facing error.
func SetupAIRoutes(app *fiber.App, coach *services.AICoachService) {
	app.Post("/ai/learning-path", func(c *fiber.Ctx) error {
		type Req struct {
			GoalTitle string `json:"goalTitle"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if strings.TrimSpace(req.GoalTitle) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation failed",
				"details": map[string]string{"goalTitle": "goalTitle is required"},
			})
		}
		return c.JSON(coach.GenerateLearningPath(c.UserContext(), req.GoalTitle))
	})

	app.Post("/ai/feedback", func(c *fiber.Ctx) error {
		type Req struct {
			Goals []services.GoalSummary `json:"goals"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"feedback": coach.GetFeedback(c.UserContext(), req.Goals),
		})
	})

	app.Post("/ai/chat", func(c *fiber.Ctx) error {
		type Req struct {
			GoalTitle    string              `json:"goalTitle"`
			CurrentSteps []services.ChatStep `json:"currentSteps"`
			Message      string              `json:"message"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if strings.TrimSpace(req.Message) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation failed",
				"details": map[string]string{"message": "message is required"},
			})
		}
		return c.JSON(fiber.Map{
			"response": coach.Chat(c.UserContext(), req.GoalTitle, req.CurrentSteps, req.Message),
		})
	})
}
