package llmclient

import (
	"context"
	"net/http"

	llmdomain "github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/marketing-insights-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	CreateChatCompletion(ctx context.Context, request *llmdomain.ChatCompletionRequest) (*llmdomain.ChatCompletionResponse, error)
	HasAPIKey() bool
}

type LLMClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &LLMClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
	}
}

// HasAPIKey indica se alguma chave (Groq ou OpenAI) foi configurada
func (c *LLMClient) HasAPIKey() bool {
	return c.Cfg.LLM.APIKey != ""
}
