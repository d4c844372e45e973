package models

import (
	"time"

	"gorm.io/gorm"
)

// XPToNextLevel is the XP threshold for every level (flat curve for now).
const XPToNextLevel = 1000

// UserStats is the progression ledger — a single row for the implicit user,
// created lazily on first read.
type UserStats struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Level         int    `json:"level" gorm:"default:1"`
	XP            int    `json:"xp" gorm:"default:0"`
	XPToNextLevel int    `json:"xpToNextLevel" gorm:"default:1000"`
	Streak        int    `json:"streak" gorm:"default:0"`
	Rank          int    `json:"rank" gorm:"default:100"`

	Badges []Badge `json:"badges" gorm:"foreignKey:UserStatsID;constraint:OnDelete:CASCADE"`

	// Milestones
	LastLevelUpAt *time.Time `json:"lastLevelUpAt,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}
