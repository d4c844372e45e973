package services

import (
	"log"
	"time"

	"inspireup-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// EvaluateBadges checks every badge rule against the stats row after an
// update. Each badge unlocks at most once; re-evaluating with no qualifying
// change awards nothing.
func (s *BadgeService) EvaluateBadges(statsID string) error {
	var stats models.UserStats
	if err := s.DB.First(&stats, "id = ?", statsID).Error; err != nil {
		return err
	}

	for _, rule := range models.BadgeRules {
		if stats.Level < rule.MinLevel {
			continue
		}

		// Check if already unlocked
		var count int64
		if err := s.DB.Model(&models.Badge{}).
			Where("user_stats_id = ? AND code = ?", statsID, rule.Code()).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		now := time.Now()
		badge := models.Badge{
			ID:          uuid.NewString(),
			UserStatsID: statsID,
			Code:        rule.Code(),
			Name:        rule.Name,
			Icon:        rule.Icon,
			Description: rule.Description,
			UnlockedAt:  &now,
		}
		if err := s.DB.Create(&badge).Error; err != nil {
			return err
		}
		log.Printf("🎖️ Badge unlocked: %s", rule.Name)
	}
	return nil
}
