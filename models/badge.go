package models

import (
	"time"

	"github.com/gosimple/slug"
)

// Badge: an unlocked achievement, owned by the stats row.
type Badge struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserStatsID string     `json:"-" gorm:"index;not null"`
	Code        string     `json:"code" gorm:"index;not null"` // e.g., "veteran"
	Name        string     `json:"name" gorm:"not null"`
	Icon        string     `json:"icon"` // icon name rendered by the client, e.g., "Award"
	Description string     `json:"description"`
	UnlockedAt  *time.Time `json:"unlockedAt"`
}

// BadgeRule is a static unlock trigger evaluated after every stats update.
type BadgeRule struct {
	Name        string
	Icon        string
	Description string
	MinLevel    int
}

// Code is the stable identifier used for the at-most-once unlock check.
func (r BadgeRule) Code() string {
	return slug.Make(r.Name)
}

// Predefined badge rules (extensible)
var BadgeRules = []BadgeRule{
	{
		Name:        "Veteran",
		Icon:        "Award",
		Description: "Reached level 5!",
		MinLevel:    5,
	},
}
