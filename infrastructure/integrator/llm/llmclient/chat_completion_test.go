package llmclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmdomain "github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/marketing-insights-api/internal/config"
)

func newTestClient(baseURL, apiKey string) Client {
	return NewClient(&config.Config{
		LLM: config.LLM{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   "test-model",
			Timeout: 5 * time.Second,
		},
	})
}

func TestLLMClient_CreateChatCompletion(t *testing.T) {
	t.Run("Envia a requisição ao endpoint compatível com OpenAI", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

			body, _ := io.ReadAll(r.Body)
			var request llmdomain.ChatCompletionRequest
			require.NoError(t, json.Unmarshal(body, &request))
			assert.Equal(t, "test-model", request.Model)
			assert.Len(t, request.Messages, 1)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cmpl-1","model":"test-model","choices":[{"index":0,"message":{"role":"assistant","content":"olá"}}],"usage":{"prompt_tokens":3,"completion_tokens":1}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL+"/v1", "secret")
		response, err := client.CreateChatCompletion(context.Background(), &llmdomain.ChatCompletionRequest{
			Model:    "test-model",
			Messages: []llmdomain.Message{{Role: "user", Content: "oi"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "cmpl-1", response.ID)
		assert.Equal(t, "olá", response.Choices[0].Message.Content)
		assert.Equal(t, 3, response.Usage.PromptTokens)
	})

	t.Run("Status de erro vira APIError com detalhe do provedor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached for model","type":"tokens","code":"rate_limit_exceeded"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "secret")
		_, err := client.CreateChatCompletion(context.Background(), &llmdomain.ChatCompletionRequest{Model: "test-model"})

		var apiErr *llmdomain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
		assert.Equal(t, "rate_limit_exceeded", apiErr.Detail.Code)
		assert.True(t, apiErr.IsRateLimit())
	})

	t.Run("Resposta sem escolhas", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"cmpl-2","choices":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "secret")
		_, err := client.CreateChatCompletion(context.Background(), &llmdomain.ChatCompletionRequest{Model: "test-model"})
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`não é json`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, "secret")
		_, err := client.CreateChatCompletion(context.Background(), &llmdomain.ChatCompletionRequest{Model: "test-model"})
		assert.Error(t, err)
	})
}

func TestLLMClient_HasAPIKey(t *testing.T) {
	assert.True(t, newTestClient("http://localhost", "secret").HasAPIKey())
	assert.False(t, newTestClient("http://localhost", "").HasAPIKey())
}
