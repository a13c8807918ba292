package reconcile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/pkg/reconcile"
)

func TestBackend_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "anthropic", reconcile.NewAnthropicBackend().Name())
	assert.Equal(t, "openai_compat", reconcile.NewOpenAICompatBackend("http://localhost:8000", "m").Name())
	assert.Equal(t, "ollama", reconcile.NewOllamaBackend("http://localhost:11434", "m").Name())
}

func TestAnthropicBackend_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		wantErr    string
		wantStatus int
		wantResp   string
		wantUsage  int
	}{
		{
			name:   "successful generation",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "be terse", body["system"])
				assert.InDelta(t, 0.1, body["temperature"], 0.0001)

				_, _ = w.Write([]byte(`{
					"content": [{"type": "text", "text": "{\"name\":"}, {"type": "text", "text": "\"x\"}"}],
					"model": "claude-test",
					"usage": {"input_tokens": 10, "output_tokens": 5}
				}`))
			},
			wantResp:  `{"name":"x"}`,
			wantUsage: 15,
		},
		{
			name:    "missing API key",
			handler: func(_ http.ResponseWriter, _ *http.Request) {},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name:   "rate limited",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
			},
			wantErr:    "rate_limit_error: slow down",
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:   "server error without envelope",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`upstream exploded`))
			},
			wantErr:    "upstream exploded",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "empty content",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"content": [], "model": "claude-test"}`))
			},
			wantErr: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			b := reconcile.NewAnthropicBackend(
				reconcile.WithAnthropicEndpoint(srv.URL),
				reconcile.WithAnthropicHTTPClient(srv.Client()),
				reconcile.WithAnthropicAPIKey(tt.apiKey),
			)

			resp, err := b.Generate(context.Background(), reconcile.GenerateRequest{
				Prompt:      "reformat",
				SystemMsg:   "be terse",
				Temperature: 0.1,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				if tt.wantStatus != 0 {
					var bErr *reconcile.BackendError
					require.ErrorAs(t, err, &bErr)
					assert.Equal(t, tt.wantStatus, bErr.StatusCode)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
		})
	}
}

func TestOpenAICompatBackend_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			MaxTokens int `json:"max_tokens"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "qwen2.5", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "json_object", body.ResponseFormat.Type)
		assert.Equal(t, 4096, body.MaxTokens)

		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "{}"}}],
			"model": "qwen2.5",
			"usage": {"prompt_tokens": 7, "completion_tokens": 3}
		}`))
	}))
	defer srv.Close()

	b := reconcile.NewOpenAICompatBackend(srv.URL+"/", "qwen2.5",
		reconcile.WithOpenAICompatHTTPClient(srv.Client()),
		reconcile.WithOpenAICompatAPIKey("sk-test"),
	)

	resp, err := b.Generate(context.Background(), reconcile.GenerateRequest{
		Prompt:    "reformat",
		SystemMsg: "json only",
		Format:    reconcile.FormatJSON,
		MaxTokens: 4096,
	})
	require.NoError(t, err)
	assert.Equal(t, "{}", resp.Content)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
}

func TestOpenAICompatBackend_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"bad gateway", http.StatusBadGateway, `model loading`, "status 502"},
		{"no choices", http.StatusOK, `{"choices": []}`, "empty choices"},
		{"not json", http.StatusOK, `<html>`, "parsing openai-compatible response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			b := reconcile.NewOpenAICompatBackend(srv.URL, "m", reconcile.WithOpenAICompatAPIKey(""))
			_, err := b.Generate(context.Background(), reconcile.GenerateRequest{Prompt: "x"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOllamaBackend_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "json", body["format"])
		assert.Equal(t, false, body["stream"])
		opts, _ := body["options"].(map[string]any)
		assert.InDelta(t, 0.1, opts["temperature"], 0.0001)
		assert.InDelta(t, 4096, opts["num_predict"], 0.0001)

		_, _ = w.Write([]byte(`{"model": "llama3.1", "response": "{\"name\": \"x\"}", "prompt_eval_count": 40, "eval_count": 12}`))
	}))
	defer srv.Close()

	b := reconcile.NewOllamaBackend(srv.URL, "llama3.1", reconcile.WithOllamaHTTPClient(srv.Client()))
	resp, err := b.Generate(context.Background(), reconcile.GenerateRequest{
		Prompt:      "reformat",
		Format:      reconcile.FormatJSON,
		Temperature: 0.1,
		MaxTokens:   4096,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name": "x"}`, resp.Content)
	assert.Equal(t, 52, resp.Usage.TotalTokens)
}

func TestOllamaBackend_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := reconcile.NewOllamaBackend(addr, "m").Generate(context.Background(), reconcile.GenerateRequest{})

	var bErr *reconcile.BackendError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "ollama", bErr.Backend)
	assert.Zero(t, bErr.StatusCode)
}
