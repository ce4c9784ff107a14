package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	llmdomain "github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var (
	ErrMissingAPIKey    = errors.New("nenhuma chave de API configurada (GROQ_API_KEY ou OPENAI_API_KEY)")
	ErrRateLimited      = errors.New("limite de requisições do provedor atingido")
	ErrCompletionFailed = errors.New("falha na chamada de chat completion")
)

// Completion é a resposta do modelo já normalizada
type Completion struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Duration         time.Duration
}

// Completer é o contrato usado pelos casos de uso
type Completer interface {
	Complete(ctx context.Context, messages []domain.ChatMessage, jsonMode bool) (*Completion, error)
	Model() string
}

type LLMIntegrator struct {
	cfg    *config.Config
	Client llmclient.Client
}

func New(cfg *config.Config, client llmclient.Client) *LLMIntegrator {
	return &LLMIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *LLMIntegrator) Model() string {
	return s.cfg.LLM.Model
}

// Complete envia as mensagens ao modelo e classifica as falhas em
// ErrMissingAPIKey, ErrRateLimited ou ErrCompletionFailed
func (s *LLMIntegrator) Complete(ctx context.Context, messages []domain.ChatMessage, jsonMode bool) (*Completion, error) {
	if !s.Client.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}

	request := &llmdomain.ChatCompletionRequest{
		Model:       s.cfg.LLM.Model,
		Messages:    make([]llmdomain.Message, 0, len(messages)),
		Temperature: s.cfg.LLM.Temperature,
	}
	for _, message := range messages {
		request.Messages = append(request.Messages, llmdomain.Message{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}
	if jsonMode {
		request.ResponseFormat = &llmdomain.ResponseFormat{Type: "json_object"}
	}

	startTime := time.Now()
	response, err := s.Client.CreateChatCompletion(ctx, request)
	if err != nil {
		classified := classifyError(err)

		logrus.WithFields(logrus.Fields{
			"provider": s.cfg.LLM.Provider,
			"model":    s.cfg.LLM.Model,
			"error":    err.Error(),
		}).Error("llm: chat completion falhou")

		return nil, classified
	}

	completion := &Completion{
		Content:          strings.TrimSpace(response.Choices[0].Message.Content),
		Model:            response.Model,
		PromptTokens:     response.Usage.PromptTokens,
		CompletionTokens: response.Usage.CompletionTokens,
		Duration:         time.Since(startTime),
	}
	if completion.Model == "" {
		completion.Model = s.cfg.LLM.Model
	}

	logrus.WithFields(logrus.Fields{
		"provider":          s.cfg.LLM.Provider,
		"model":             completion.Model,
		"prompt_tokens":     completion.PromptTokens,
		"completion_tokens": completion.CompletionTokens,
		"duration_ms":       completion.Duration.Milliseconds(),
	}).Debug("llm: chat completion concluído")

	return completion, nil
}

func classifyError(err error) error {
	var apiErr *llmdomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsRateLimit() {
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		if apiErr.IsAuthentication() {
			return fmt.Errorf("%w: chave de API recusada: %w", ErrCompletionFailed, err)
		}
	}

	// alguns SDKs/proxies só informam o limite no texto do erro
	if strings.Contains(strings.ToLower(err.Error()), "rate limit") {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	return fmt.Errorf("%w: %w", ErrCompletionFailed, err)
}
