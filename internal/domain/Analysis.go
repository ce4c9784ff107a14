package domain

import "time"

// AnalysisSections é o contrato de resposta esperado do modelo
type AnalysisSections struct {
	Insight        string   `json:"insight"`
	Action         string   `json:"action"`
	Recommendation string   `json:"recommendation"`
	NextSteps      []string `json:"next_steps"`
}

// AnalysisEntry é o registro de uma análise concluída
type AnalysisEntry struct {
	ID             int64             `json:"id"`
	ConversationID string            `json:"conversation_id"`
	Question       string            `json:"question"`
	Intent         Intent            `json:"intent"`
	Model          string            `json:"model"`
	Sections       *AnalysisSections `json:"sections"`
	CreatedAt      time.Time         `json:"created_at"`
}

// AskResponse é a resposta do endpoint de perguntas
type AskResponse struct {
	ConversationID string            `json:"conversation_id"`
	Intent         Intent            `json:"intent"`
	Chart          *ChartSpec        `json:"chart"`
	Sections       *AnalysisSections `json:"sections"`
	Reply          string            `json:"reply"`
}
