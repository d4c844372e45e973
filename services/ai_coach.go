package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"inspireup-backend/models"
	"inspireup-backend/utils"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// Fallback content served when the model is unavailable or answers garbage.
// Suggestion and feedback endpoints must never fail because of the model.
const (
	fallbackFeedback  = "Você está indo muito bem! Mantenha a consistência para alcançar o próximo nível."
	fallbackChatReply = "Continue focado em seus objetivos. Você está no caminho certo!"
)

// StepSuggestion is one AI-proposed checklist item.
type StepSuggestion struct {
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}

// GoalSummary is the slim goal view the feedback prompt consumes.
type GoalSummary struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

// ChatStep mirrors the client's step payload for coaching context.
type ChatStep struct {
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

type AICoachService struct {
	client *genai.Client
}

// NewAICoachService builds the Gemini-backed coach. Without an API key the
// service still works — every call answers with its local fallback.
func NewAICoachService(ctx context.Context, apiKey string) *AICoachService {
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set — AI coach will serve fallback content only")
		return &AICoachService{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: utils.HTTPClient,
	})
	if err != nil {
		log.Printf("⚠️  failed to initialize Gemini client, serving fallback content: %v", err)
		return &AICoachService{}
	}
	return &AICoachService{client: client}
}

// FallbackLearningPath is the fixed two-step plan used when the model fails.
func FallbackLearningPath() []StepSuggestion {
	return []StepSuggestion{
		{Description: "Pesquisar sobre o tema", Difficulty: models.DifficultyEasy},
		{Description: "Definir marcos iniciais", Difficulty: models.DifficultyMedium},
	}
}

// GenerateLearningPath asks the model for a 5-step action plan. Single
// attempt; any failure falls back locally.
func (s *AICoachService) GenerateLearningPath(ctx context.Context, goalTitle string) []StepSuggestion {
	if s.client == nil {
		return FallbackLearningPath()
	}

	prompt := fmt.Sprintf(`Crie um plano de ação detalhado com 5 passos para o objetivo: %q.
Retorne um JSON contendo uma lista de objetos com 'description' (em português) e 'difficulty' (Fácil, Médio ou Difícil).`, goalTitle)

	resp, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {Type: genai.TypeString},
					"difficulty":  {Type: genai.TypeString, Enum: models.Difficulties},
				},
				Required: []string{"description", "difficulty"},
			},
		},
	})
	if err != nil {
		log.Printf("⚠️  Gemini learning-path call failed: %v", err)
		return FallbackLearningPath()
	}

	steps, err := ParseLearningPath(resp.Text())
	if err != nil {
		log.Printf("⚠️  Gemini returned an unusable learning path: %v", err)
		return FallbackLearningPath()
	}
	return steps
}

// ParseLearningPath validates the model's JSON into step suggestions.
func ParseLearningPath(raw string) ([]StepSuggestion, error) {
	var steps []StepSuggestion
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty suggestion list")
	}
	for i := range steps {
		if strings.TrimSpace(steps[i].Description) == "" {
			return nil, fmt.Errorf("step %d has no description", i)
		}
		if !models.ValidDifficulty(steps[i].Difficulty) {
			steps[i].Difficulty = models.DifficultyMedium
		}
	}
	return steps, nil
}

// GetFeedback produces a short motivational read of the user's goals.
func (s *AICoachService) GetFeedback(ctx context.Context, goals []GoalSummary) string {
	if s.client == nil {
		return fallbackFeedback
	}

	parts := make([]string, 0, len(goals))
	for _, g := range goals {
		parts = append(parts, fmt.Sprintf("%s: %d%% concluído", g.Title, g.Progress))
	}
	prompt := fmt.Sprintf(`Como um coach de alto desempenho, analise o progresso atual do usuário: %s.
Forneça um feedback motivador, curto e acionável em português do Brasil. Max 100 palavras.`, strings.Join(parts, ", "))

	resp, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(
			"Você é o InspireUp AI Coach, focado em psicologia positiva e produtividade.",
			genai.RoleUser,
		),
	})
	if err != nil {
		log.Printf("⚠️  Gemini feedback call failed: %v", err)
		return fallbackFeedback
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fallbackFeedback
	}
	return text
}

// Chat answers a free-form coaching message grounded in the goal's checklist.
func (s *AICoachService) Chat(ctx context.Context, goalTitle string, steps []ChatStep, message string) string {
	if s.client == nil {
		return fallbackChatReply
	}

	var sb strings.Builder
	for _, st := range steps {
		status := "Pendente"
		if st.IsCompleted {
			status = "Concluído"
		}
		fmt.Fprintf(&sb, "- %s (%s)\n", st.Description, status)
	}
	prompt := fmt.Sprintf(`Você é o InspireUp AI Coach. O usuário está trabalhando na meta: %q.
Progresso atual:
%s
Mensagem do usuário: %q
Responda de forma motivadora e técnica, dando dicas específicas para os passos pendentes. Responda em português do Brasil.`,
		goalTitle, sb.String(), message)

	resp, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("⚠️  Gemini chat call failed: %v", err)
		return fallbackChatReply
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fallbackChatReply
	}
	return text
}
