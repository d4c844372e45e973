// handlers/stats_routes.go
package handlers

import (
	"inspireup-backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, statsService *services.StatsService) {
	// Lazily creates the singleton stats row on first read.
	app.Get("/stats", func(c *fiber.Ctx) error {
		stats, err := statsService.EnsureStatsRecord()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch stats",
				"cause": err.Error(),
			})
		}
		return c.JSON(stats)
	})

	app.Patch("/stats", func(c *fiber.Ctx) error {
		type Req struct {
			XP     *int `json:"xp"`
			Level  *int `json:"level"`
			Streak *int `json:"streak"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		details := map[string]string{}
		if req.XP != nil && *req.XP < 0 {
			details["xp"] = "xp must be non-negative"
		}
		if req.Level != nil && *req.Level < 1 {
			details["level"] = "level must be a positive integer"
		}
		if req.Streak != nil && *req.Streak < 0 {
			details["streak"] = "streak must be non-negative"
		}
		if len(details) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "validation failed",
				"details": details,
			})
		}

		stats, err := statsService.ApplyStatsPatch(services.StatsPatch{
			XP:     req.XP,
			Level:  req.Level,
			Streak: req.Streak,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update stats",
				"cause": err.Error(),
			})
		}
		return c.JSON(stats)
	})
}
