package advising

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm"
	"github.com/vfg2006/marketing-insights-api/infrastructure/repository"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-insights-api/pkg/log"
	"github.com/vfg2006/marketing-insights-api/pkg/metrics"
)

const defaultMaxTurns = 6

type Service struct {
	completer     llm.Completer
	datasets      DatasetProvider
	conversations repository.ConversationRepository
	analyses      repository.AnalysisRepository
	glossary      domain.Glossary
	maxTurns      int
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	completer llm.Completer,
	datasets DatasetProvider,
	conversations repository.ConversationRepository,
	analyses repository.AnalysisRepository,
) Advisor {
	maxTurns := cfg.Conversation.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	return &Service{
		completer:     completer,
		datasets:      datasets,
		conversations: conversations,
		analyses:      analyses,
		glossary:      domain.DefaultGlossary(),
		maxTurns:      maxTurns,
		now:           time.Now,
	}
}

func (s *Service) Ask(ctx context.Context, conversationID string, question string) (*domain.AskResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, NewAdvisorError(ErrEmptyQuestion, apiErrors.ErrMissingRequiredData, "informe a pergunta")
	}

	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		return nil, conversationError(err, conversationID)
	}

	intent := charting.Classify(question)
	dataset := s.datasets.Get()

	chart, err := charting.Build(intent, dataset)
	if err != nil {
		return nil, NewAdvisorError(err, apiErrors.ErrInternalServer, string(intent))
	}
	metrics.ChartsBuilt.WithLabelValues(string(intent), "spec").Inc()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"conversation_id": conversationID,
		"intent":          intent,
	})

	messages := buildMessages(s.glossary, dataset, chart, conversation.History(s.maxTurns), question)

	completion, err := s.completer.Complete(ctx, messages, true)
	if err != nil {
		logger.WithError(err).Warn("Falha ao consultar o modelo")
		return nil, completionError(err)
	}

	sections, err := Parse(completion.Content)
	if err != nil {
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeMalformed).Inc()
		logger.WithError(err).Warn("Resposta do modelo fora do contrato")
		return nil, NewAdvisorError(err, apiErrors.ErrMalformedResponse, "")
	}
	metrics.LLMRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()

	createdAt := s.now().UTC()
	turn := &domain.Turn{
		Question:  question,
		Intent:    intent,
		Reply:     completion.Content,
		Sections:  sections,
		Chart:     chart,
		CreatedAt: createdAt,
	}
	if _, err := s.conversations.AppendTurn(conversationID, turn); err != nil {
		return nil, conversationError(err, conversationID)
	}

	entry := &domain.AnalysisEntry{
		ConversationID: conversationID,
		Question:       question,
		Intent:         intent,
		Model:          completion.Model,
		Sections:       sections,
		CreatedAt:      createdAt,
	}
	if _, err := s.analyses.Save(ctx, entry); err != nil {
		// o registro de análises é auxiliar; a resposta já foi obtida
		logger.WithError(err).Error("Erro ao registrar análise")
	}

	logger.WithFields(log.Fields{
		"llm_model":             completion.Model,
		"llm_prompt_tokens":     completion.PromptTokens,
		"llm_completion_tokens": completion.CompletionTokens,
	}).Info("Pergunta respondida")

	return &domain.AskResponse{
		ConversationID: conversationID,
		Intent:         intent,
		Chart:          chart,
		Sections:       sections,
		Reply:          completion.Content,
	}, nil
}

func (s *Service) CreateConversation(_ context.Context) (*domain.Conversation, error) {
	conversation, err := s.conversations.Create()
	if err != nil {
		return nil, NewAdvisorError(err, apiErrors.ErrInternalServer, "erro ao criar conversa")
	}
	return conversation, nil
}

func (s *Service) GetConversation(_ context.Context, conversationID string) (*domain.Conversation, error) {
	conversation, err := s.conversations.Get(conversationID)
	if err != nil {
		return nil, conversationError(err, conversationID)
	}
	return conversation, nil
}

func (s *Service) ResetConversation(_ context.Context, conversationID string) error {
	if err := s.conversations.Delete(conversationID); err != nil {
		return conversationError(err, conversationID)
	}
	return nil
}

func (s *Service) ListAnalyses(ctx context.Context, limit int) ([]*domain.AnalysisEntry, error) {
	entries, err := s.analyses.ListRecent(ctx, limit)
	if err != nil {
		return nil, NewAdvisorError(err, apiErrors.ErrDatabaseOperation, "erro ao listar análises")
	}
	return entries, nil
}

func conversationError(err error, conversationID string) error {
	if errors.Is(err, repository.ErrConversationNotFound) {
		return NewAdvisorError(ErrConversationNotFound, apiErrors.ErrConversationNotFound, conversationID)
	}
	return NewAdvisorError(err, apiErrors.ErrInternalServer, conversationID)
}

// completionError converte as falhas do modelo nos códigos de API e registra a métrica
func completionError(err error) error {
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeMissingAPIKey).Inc()
		return NewAdvisorError(err, apiErrors.ErrMissingAPIKey, "defina GROQ_API_KEY ou OPENAI_API_KEY")
	case errors.Is(err, llm.ErrRateLimited):
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		return NewAdvisorError(err, apiErrors.ErrRateLimited, "tente novamente em alguns instantes")
	default:
		metrics.LLMRequests.WithLabelValues(metrics.OutcomeFailed).Inc()
		return NewAdvisorError(err, apiErrors.ErrCompletionFailed, "")
	}
}
