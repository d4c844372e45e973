package services

import (
	"fmt"
	"log"
	"time"

	"inspireup-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixed XP bonuses (tunable via config/env later)
const (
	GoalAdoptedXP   = 100 // adopting any new goal
	StepCompletedXP = 50  // completing a checklist step
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// StatsPatch is a partial update; nil fields are left untouched.
type StatsPatch struct {
	XP     *int
	Level  *int
	Streak *int
}

// EnsureStatsRecord returns the singleton stats row, creating it with
// defaults on first read (idempotent).
func (s *StatsService) EnsureStatsRecord() (*models.UserStats, error) {
	return s.ensureStatsRecord(s.DB)
}

func (s *StatsService) ensureStatsRecord(tx *gorm.DB) (*models.UserStats, error) {
	var stats models.UserStats
	err := tx.Preload("Badges").First(&stats).Error
	if err == gorm.ErrRecordNotFound {
		stats = models.UserStats{
			ID:            uuid.NewString(),
			Level:         1,
			XP:            0,
			XPToNextLevel: models.XPToNextLevel,
			Streak:        0,
			Rank:          100,
		}
		if err := tx.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GrantXP adds XP and rolls excess over into level-ups — returns updated stats.
func (s *StatsService) GrantXP(amount int, reason string) (*models.UserStats, error) {
	if amount < 0 {
		return nil, fmt.Errorf("xp amount must be non-negative, got %d", amount)
	}

	var statsID string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		stats, err := s.ensureStatsRecord(tx)
		if err != nil {
			return err
		}

		stats.XP += amount
		rollOverLevels(stats)

		if err := tx.Save(stats).Error; err != nil {
			return err
		}
		statsID = stats.ID

		log.Printf("🎮 XP granted: +%d → XP=%d, Lvl=%d (reason: %s)", amount, stats.XP, stats.Level, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishStatsUpdate(statsID)
}

// ApplyStatsPatch writes the provided fields, then re-normalizes XP so the
// ledger invariant holds even for raw writes.
func (s *StatsService) ApplyStatsPatch(patch StatsPatch) (*models.UserStats, error) {
	var statsID string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		stats, err := s.ensureStatsRecord(tx)
		if err != nil {
			return err
		}

		if patch.XP != nil {
			stats.XP = *patch.XP
		}
		if patch.Level != nil {
			stats.Level = *patch.Level
		}
		if patch.Streak != nil {
			stats.Streak = *patch.Streak
		}
		rollOverLevels(stats)

		if err := tx.Save(stats).Error; err != nil {
			return err
		}
		statsID = stats.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishStatsUpdate(statsID)
}

// finishStatsUpdate runs badge rules after a committed stats change and
// returns the fresh row with badges loaded.
func (s *StatsService) finishStatsUpdate(statsID string) (*models.UserStats, error) {
	badgeSvc := NewBadgeService(s.DB)
	if err := badgeSvc.EvaluateBadges(statsID); err != nil {
		log.Printf("⚠️  badge evaluation failed: %v", err)
	}

	var stats models.UserStats
	if err := s.DB.Preload("Badges").First(&stats, "id = ?", statsID).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// rollOverLevels converts excess XP into level increments. A single large
// grant may cross several levels, so this loops instead of checking the
// threshold once.
func rollOverLevels(stats *models.UserStats) {
	if stats.XPToNextLevel <= 0 {
		stats.XPToNextLevel = models.XPToNextLevel
	}
	for stats.XP >= stats.XPToNextLevel {
		stats.XP -= stats.XPToNextLevel
		stats.Level++
		now := time.Now()
		stats.LastLevelUpAt = &now
	}
}
