package llm_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm"
	llmdomain "github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

func newTestConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Provider:    "groq",
			APIKey:      "test-key",
			BaseURL:     "https://example.test/v1",
			Model:       "llama-3.3-70b-versatile",
			Temperature: 0.2,
		},
	}
}

func TestLLMIntegrator_Complete(t *testing.T) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "persona"},
		{Role: domain.RoleUser, Content: "Qual canal satura primeiro?"},
	}

	tests := []struct {
		name     string
		jsonMode bool
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, completion *llm.Completion, err error)
	}{
		{
			name: "Sem chave de API - não chama o provedor",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(false)
			},
			validate: func(t *testing.T, completion *llm.Completion, err error) {
				assert.Nil(t, completion)
				assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
			},
		},
		{
			name:     "Modo JSON - envia response_format e normaliza a resposta",
			jsonMode: true,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *llmdomain.ChatCompletionRequest) (*llmdomain.ChatCompletionResponse, error) {
						require.NotNil(t, request.ResponseFormat)
						assert.Equal(t, "json_object", request.ResponseFormat.Type)
						assert.Len(t, request.Messages, 2)
						assert.Equal(t, "system", request.Messages[0].Role)
						assert.Equal(t, "llama-3.3-70b-versatile", request.Model)

						return &llmdomain.ChatCompletionResponse{
							Choices: []llmdomain.Choice{{Message: llmdomain.Message{Role: "assistant", Content: "  {\"insight\":\"ok\"}\n"}}},
							Usage:   llmdomain.Usage{PromptTokens: 120, CompletionTokens: 40},
						}, nil
					})
			},
			validate: func(t *testing.T, completion *llm.Completion, err error) {
				require.NoError(t, err)
				assert.Equal(t, `{"insight":"ok"}`, completion.Content)
				assert.Equal(t, "llama-3.3-70b-versatile", completion.Model)
				assert.Equal(t, 120, completion.PromptTokens)
				assert.Equal(t, 40, completion.CompletionTokens)
			},
		},
		{
			name: "Modo texto - não envia response_format",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *llmdomain.ChatCompletionRequest) (*llmdomain.ChatCompletionResponse, error) {
						assert.Nil(t, request.ResponseFormat)
						return &llmdomain.ChatCompletionResponse{
							Model:   "gpt-4o-mini",
							Choices: []llmdomain.Choice{{Message: llmdomain.Message{Content: "texto"}}},
						}, nil
					})
			},
			validate: func(t *testing.T, completion *llm.Completion, err error) {
				require.NoError(t, err)
				assert.Equal(t, "gpt-4o-mini", completion.Model)
			},
		},
		{
			name: "Status 429 - classificado como limite de requisições",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, &llmdomain.APIError{StatusCode: http.StatusTooManyRequests})
			},
			validate: func(t *testing.T, completion *llm.Completion, err error) {
				assert.Nil(t, completion)
				assert.ErrorIs(t, err, llm.ErrRateLimited)

				var apiErr *llmdomain.APIError
				assert.True(t, errors.As(err, &apiErr))
			},
		},
		{
			name: "Código rate_limit_exceeded no corpo - classificado como limite",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, &llmdomain.APIError{
						StatusCode: http.StatusBadRequest,
						Detail:     llmdomain.ErrorDetail{Code: "rate_limit_exceeded"},
					})
			},
			validate: func(t *testing.T, _ *llm.Completion, err error) {
				assert.ErrorIs(t, err, llm.ErrRateLimited)
			},
		},
		{
			name: "Mensagem de rate limit em erro genérico",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("proxy: Rate limit reached"))
			},
			validate: func(t *testing.T, _ *llm.Completion, err error) {
				assert.ErrorIs(t, err, llm.ErrRateLimited)
			},
		},
		{
			name: "Chave recusada - falha de completion",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, &llmdomain.APIError{StatusCode: http.StatusUnauthorized})
			},
			validate: func(t *testing.T, _ *llm.Completion, err error) {
				assert.ErrorIs(t, err, llm.ErrCompletionFailed)
				assert.NotErrorIs(t, err, llm.ErrRateLimited)
			},
		},
		{
			name: "Erro de rede - falha de completion",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().HasAPIKey().Return(true)
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(nil, context.DeadlineExceeded)
			},
			validate: func(t *testing.T, _ *llm.Completion, err error) {
				assert.ErrorIs(t, err, llm.ErrCompletionFailed)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			integrator := llm.New(newTestConfig(), client)
			completion, err := integrator.Complete(context.Background(), messages, tt.jsonMode)
			tt.validate(t, completion, err)
		})
	}
}

func TestLLMIntegrator_Model(t *testing.T) {
	integrator := llm.New(newTestConfig(), nil)
	assert.Equal(t, "llama-3.3-70b-versatile", integrator.Model())
}
