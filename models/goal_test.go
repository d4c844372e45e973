package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stepsWithCompleted(total, completed int) []GoalStep {
	steps := make([]GoalStep, total)
	for i := range steps {
		steps[i].IsCompleted = i < completed
	}
	return steps
}

func TestRecomputeProgress(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		want      int
	}{
		{"no steps", 0, 0, 0},
		{"none done", 4, 0, 0},
		{"one of three", 3, 1, 33},
		{"two of three", 3, 2, 67},
		{"half up rounding", 8, 1, 13}, // 12.5 rounds up
		{"all done", 3, 3, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{Steps: stepsWithCompleted(tc.total, tc.completed)}
			g.RecomputeProgress()
			assert.Equal(t, tc.want, g.Progress)
		})
	}
}

func TestRecomputeProgressIgnoresPreviousValue(t *testing.T) {
	g := Goal{Progress: 99, Steps: stepsWithCompleted(2, 0)}
	g.RecomputeProgress()
	assert.Equal(t, 0, g.Progress)
}

func TestValidCategoryAndDifficulty(t *testing.T) {
	assert.True(t, ValidCategory(CategoryHealth))
	assert.False(t, ValidCategory("Cooking"))
	assert.True(t, ValidDifficulty(DifficultyHard))
	assert.False(t, ValidDifficulty("Impossible"))
}
