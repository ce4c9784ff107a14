package advising

import (
	"context"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DatasetProvider fornece o dataset atual (implementado por simulating.DatasetCache)
type DatasetProvider interface {
	Get() *domain.Dataset
}

// Advisor responde perguntas sobre o dataset mantendo o histórico da conversa
type Advisor interface {
	// Ask classifica a pergunta, monta o gráfico e consulta o modelo
	Ask(ctx context.Context, conversationID string, question string) (*domain.AskResponse, error)

	CreateConversation(ctx context.Context) (*domain.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error)

	// ResetConversation descarta a conversa e todo o seu histórico
	ResetConversation(ctx context.Context, conversationID string) error

	// ListAnalyses retorna as análises mais recentes, da mais nova para a mais antiga
	ListAnalyses(ctx context.Context, limit int) ([]*domain.AnalysisEntry, error)
}
