package services

import (
	"context"
	"testing"

	"inspireup-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachServesFallbacksWithoutClient(t *testing.T) {
	coach := NewAICoachService(context.Background(), "")

	steps := coach.GenerateLearningPath(context.Background(), "Aprender Go")
	require.Len(t, steps, 2)
	assert.Equal(t, "Pesquisar sobre o tema", steps[0].Description)
	assert.Equal(t, models.DifficultyEasy, steps[0].Difficulty)
	assert.Equal(t, models.DifficultyMedium, steps[1].Difficulty)

	feedback := coach.GetFeedback(context.Background(), []GoalSummary{{Title: "Correr 5km", Progress: 40}})
	assert.NotEmpty(t, feedback)

	reply := coach.Chat(context.Background(), "Correr 5km", nil, "como melhorar?")
	assert.NotEmpty(t, reply)
}

func TestParseLearningPath(t *testing.T) {
	raw := `[
		{"description": "Pesquisar rotas de corrida", "difficulty": "Fácil"},
		{"description": "Correr 1km sem parar", "difficulty": "Médio"},
		{"description": "Correr 3km", "difficulty": "Médio"},
		{"description": "Treinar intervalados", "difficulty": "Difícil"},
		{"description": "Completar os 5km", "difficulty": "Difícil"}
	]`
	steps, err := ParseLearningPath(raw)
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, "Pesquisar rotas de corrida", steps[0].Description)
	assert.Equal(t, models.DifficultyHard, steps[4].Difficulty)
}

func TestParseLearningPathCoercesUnknownDifficulty(t *testing.T) {
	steps, err := ParseLearningPath(`[{"description": "Algo", "difficulty": "Extreme"}]`)
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyMedium, steps[0].Difficulty)
}

func TestParseLearningPathRejectsGarbage(t *testing.T) {
	_, err := ParseLearningPath(`not json at all`)
	assert.Error(t, err)

	_, err = ParseLearningPath(`[]`)
	assert.Error(t, err)

	_, err = ParseLearningPath(`[{"description": "  ", "difficulty": "Fácil"}]`)
	assert.Error(t, err)
}
