// models/goal.go
package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	CategoryHealth    = "Health"
	CategoryCareer    = "Career"
	CategoryFinance   = "Finance"
	CategoryEducation = "Education"
	CategorySocial    = "Social"
)

// Step difficulties keep the pt-BR wire values the web client sends.
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Médio"
	DifficultyHard   = "Difícil"
)

var Categories = []string{
	CategoryHealth,
	CategoryCareer,
	CategoryFinance,
	CategoryEducation,
	CategorySocial,
}

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidDifficulty(difficulty string) bool {
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}

type Goal struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"not null"`
	Category string `json:"category" gorm:"not null"`

	// Progress is derived from the step list, never written directly.
	Progress int `json:"progress" gorm:"default:0"`

	Steps []GoalStep `json:"steps" gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`

	Deadline string `json:"deadline"` // YYYY-MM-DD
	XPValue  int    `json:"xpValue" gorm:"not null"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

type GoalStep struct {
	ID          string `json:"id" gorm:"primaryKey"`
	GoalID      string `json:"goalId" gorm:"index;not null"`
	Description string `json:"description" gorm:"not null"`
	Difficulty  string `json:"difficulty"`
	IsCompleted bool   `json:"isCompleted" gorm:"default:false"`
	Position    int    `json:"-"`
}

// RecomputeProgress derives the completion percentage purely from the step
// list (round half up). A goal with no steps sits at 0%.
func (g *Goal) RecomputeProgress() {
	if len(g.Steps) == 0 {
		g.Progress = 0
		return
	}
	completed := 0
	for _, s := range g.Steps {
		if s.IsCompleted {
			completed++
		}
	}
	g.Progress = int(math.Round(float64(completed) / float64(len(g.Steps)) * 100))
}
