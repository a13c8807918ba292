package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/internal/config"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
)

func TestNewBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.LLMConfig
		wantName string
		wantErr  bool
	}{
		{name: "none disables reconciliation", cfg: config.LLMConfig{Backend: config.BackendNone}},
		{
			name: "ollama",
			cfg: config.LLMConfig{
				Backend: config.BackendOllama,
				Ollama:  config.OllamaConfig{Endpoint: "http://localhost:11434", Model: "qwen2.5:7b"},
			},
			wantName: "ollama",
		},
		{
			name:     "anthropic",
			cfg:      config.LLMConfig{Backend: config.BackendAnthropic, Anthropic: config.AnthropicConfig{APIKey: "k"}},
			wantName: "anthropic",
		},
		{
			name: "openai compatible",
			cfg: config.LLMConfig{
				Backend:      config.BackendOpenAICompat,
				OpenAICompat: config.OpenAICompatConfig{Endpoint: "http://localhost:1234", Model: "m"},
			},
			wantName: "openai_compat",
		},
		{name: "unknown backend", cfg: config.LLMConfig{Backend: "bard"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.cfg.Timeout = time.Second
			b, err := newBackend(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantName == "" {
				assert.Nil(t, b)
				return
			}
			require.NotNil(t, b)
			assert.Equal(t, tt.wantName, b.Name())
		})
	}
}

func TestBuildComponents(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	comps, err := buildComponents(cfg, logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, comps.finder)
	assert.NotNil(t, comps.extractor)
	assert.Nil(t, comps.reconciler)
	assert.Len(t, comps.serviceOptions(logger.Discard(), nil), 1)

	cfg.LLM.Backend = config.BackendAnthropic
	comps, err = buildComponents(cfg, logger.Discard())
	require.NoError(t, err)
	require.NotNil(t, comps.reconciler)
	assert.Equal(t, "anthropic", comps.reconciler.Backend())
	assert.Len(t, comps.serviceOptions(logger.Discard(), nil), 2)
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	assert.True(t, isURL("https://www.gsmarena.com/google_pixel_9_pro-13218.php"))
	assert.True(t, isURL("http://localhost:8090/x.php"))
	assert.False(t, isURL("httpphone"))
	assert.False(t, isURL("pixel 9 pro"))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := versionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "spec-scraper dev\n", out.String())
}

func TestOpenAPICommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := openapiCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "title: Phone Spec Scraper API")
	assert.Contains(t, out.String(), "/api/v1/ingest")
}

func TestOpenAPICommand_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "openapi.json")
	cmd := openapiCommand()
	cmd.SetArgs([]string{"--output", path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"openapi": "3.1.0"`)
}
