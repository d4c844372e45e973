package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"inspireup-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalService struct {
	DB    *gorm.DB
	Stats *StatsService
}

func NewGoalService(db *gorm.DB, stats *StatsService) *GoalService {
	return &GoalService{DB: db, Stats: stats}
}

// GetAllGoals lists every goal with its steps, newest first.
func (s *GoalService) GetAllGoals(c *fiber.Ctx) error {
	var goals []models.Goal
	if err := s.DB.
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch goals",
			"cause": err.Error(),
		})
	}
	return c.JSON(goals)
}

type createGoalStep struct {
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	IsCompleted bool   `json:"isCompleted"`
}

type createGoalRequest struct {
	Title    string           `json:"title"`
	Category string           `json:"category"`
	XPValue  int              `json:"xpValue"`
	Deadline string           `json:"deadline"`
	Steps    []createGoalStep `json:"steps"`
}

// CreateGoal adopts a new goal with its checklist and pays the adoption bonus.
func (s *GoalService) CreateGoal(c *fiber.Ctx) error {
	var req createGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}

	details := map[string]string{}
	if len(strings.TrimSpace(req.Title)) < 3 {
		details["title"] = "title must be at least 3 characters"
	}
	if !models.ValidCategory(req.Category) {
		details["category"] = "category must be one of " + strings.Join(models.Categories, ", ")
	}
	if req.XPValue <= 0 {
		details["xpValue"] = "xpValue must be a positive integer"
	}
	if req.Deadline == "" {
		// Default deadline: 30 days out
		req.Deadline = time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.Deadline); err != nil {
		details["deadline"] = "deadline must be formatted YYYY-MM-DD"
	}
	for i, st := range req.Steps {
		if strings.TrimSpace(st.Description) == "" {
			details[fmt.Sprintf("steps[%d].description", i)] = "description is required"
		}
		if !models.ValidDifficulty(st.Difficulty) {
			details[fmt.Sprintf("steps[%d].difficulty", i)] = "difficulty must be one of " + strings.Join(models.Difficulties, ", ")
		}
	}
	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"details": details,
		})
	}

	goal := &models.Goal{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		Category: req.Category,
		XPValue:  req.XPValue,
		Deadline: req.Deadline,
		// Policy: new goals always start at 0%, even when steps arrive
		// pre-marked complete. The flags themselves are stored as-is and the
		// next recompute derives the real percentage.
		Progress: 0,
	}
	for i, st := range req.Steps {
		goal.Steps = append(goal.Steps, models.GoalStep{
			ID:          uuid.NewString(),
			GoalID:      goal.ID,
			Description: strings.TrimSpace(st.Description),
			Difficulty:  st.Difficulty,
			IsCompleted: st.IsCompleted,
			Position:    i,
		})
	}

	if err := s.DB.Create(goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create goal",
			"cause": err.Error(),
		})
	}

	// Adoption bonus goes through the ledger; a ledger hiccup must not undo
	// the already-persisted goal.
	if _, err := s.Stats.GrantXP(GoalAdoptedXP, "goal_adopted"); err != nil {
		log.Printf("⚠️  failed to grant adoption XP: %v", err)
	}

	return c.JSON(goal)
}

type toggleStepRequest struct {
	IsCompleted *bool `json:"isCompleted"`
}

// ToggleStep sets a step's completion flag and recomputes the parent goal's
// progress from the full step list. Completing a step pays a fixed bonus;
// unchecking claws nothing back.
func (s *GoalService) ToggleStep(c *fiber.Ctx) error {
	goalID := c.Params("id")
	stepID := c.Params("stepId")

	var req toggleStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON",
			"cause": err.Error(),
		})
	}
	if req.IsCompleted == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"details": map[string]string{"isCompleted": "isCompleted is required and must be a boolean"},
		})
	}

	var goal models.Goal
	completedNow := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
			First(&goal, "id = ?", goalID).Error; err != nil {
			return err
		}

		var step *models.GoalStep
		for i := range goal.Steps {
			if goal.Steps[i].ID == stepID {
				step = &goal.Steps[i]
				break
			}
		}
		if step == nil {
			return gorm.ErrRecordNotFound
		}

		completedNow = !step.IsCompleted && *req.IsCompleted
		step.IsCompleted = *req.IsCompleted
		if err := tx.Model(&models.GoalStep{}).
			Where("id = ?", step.ID).
			Update("is_completed", step.IsCompleted).Error; err != nil {
			return err
		}

		goal.RecomputeProgress()
		return tx.Model(&models.Goal{}).
			Where("id = ?", goal.ID).
			Update("progress", goal.Progress).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "goal or step not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update step",
			"cause": err.Error(),
		})
	}

	if completedNow {
		if _, err := s.Stats.GrantXP(StepCompletedXP, "step_completed"); err != nil {
			log.Printf("⚠️  failed to grant step XP: %v", err)
		}
	}

	return c.JSON(goal)
}
