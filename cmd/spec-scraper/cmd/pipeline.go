package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/donaldgifford/phone-spec-scraper/internal/config"
	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
	"github.com/donaldgifford/phone-spec-scraper/pkg/reconcile"
	"github.com/donaldgifford/phone-spec-scraper/pkg/scrape"
)

// components holds the scrape and reconcile pipeline built from config.
type components struct {
	limiter    *scrape.RateLimiter
	finder     *scrape.Finder
	extractor  *scrape.Extractor
	reconciler *reconcile.Reconciler
}

// loadConfig reads cfgFile. When allowMissing is set, a missing file yields
// the defaults so offline commands work without one.
func loadConfig(allowMissing bool) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func buildComponents(cfg *config.Config, log *slog.Logger) (*components, error) {
	src := cfg.Source
	limiter := scrape.NewRateLimiter(src.RateLimit.PerSecond, src.RateLimit.Burst, src.RateLimit.DailyLimit)

	fetchOpts := []scrape.HTTPFetcherOption{scrape.WithTimeout(src.Timeout)}
	if src.UserAgent != "" {
		fetchOpts = append(fetchOpts, scrape.WithUserAgent(src.UserAgent))
	}
	fetcher := scrape.NewLimitedFetcher(scrape.NewHTTPFetcher(fetchOpts...), limiter)

	c := &components{
		limiter: limiter,
		finder: scrape.NewFinder(fetcher,
			scrape.WithFinderBaseURL(src.BaseURL),
			scrape.WithFinderLogger(logger.Component(log, "finder")),
		),
		extractor: scrape.NewExtractor(fetcher,
			scrape.WithUnclassifiedHook(engine.CountUnclassified),
			scrape.WithExtractorLogger(logger.Component(log, "extractor")),
		),
	}

	backend, err := newBackend(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	if backend != nil {
		c.reconciler = reconcile.NewReconciler(backend,
			reconcile.WithTemperature(cfg.LLM.Temperature),
			reconcile.WithMaxTokens(cfg.LLM.MaxTokens),
			reconcile.WithLogger(logger.Component(log, "reconcile")),
		)
	}
	return c, nil
}

// newBackend returns the configured completion backend, or nil when
// reconciliation is disabled.
func newBackend(cfg *config.LLMConfig) (reconcile.LLMBackend, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Backend {
	case config.BackendNone, "":
		return nil, nil
	case config.BackendOllama:
		return reconcile.NewOllamaBackend(
			cfg.Ollama.Endpoint,
			cfg.Ollama.Model,
			reconcile.WithOllamaHTTPClient(client),
		), nil
	case config.BackendAnthropic:
		opts := []reconcile.AnthropicOption{
			reconcile.WithAnthropicModel(cfg.Anthropic.Model),
			reconcile.WithAnthropicHTTPClient(client),
		}
		if cfg.Anthropic.APIKey != "" {
			opts = append(opts, reconcile.WithAnthropicAPIKey(cfg.Anthropic.APIKey))
		}
		return reconcile.NewAnthropicBackend(opts...), nil
	case config.BackendOpenAICompat:
		return reconcile.NewOpenAICompatBackend(
			cfg.OpenAICompat.Endpoint,
			cfg.OpenAICompat.Model,
			reconcile.WithOpenAICompatAPIKey(cfg.OpenAICompat.APIKey),
			reconcile.WithOpenAICompatHTTPClient(client),
		), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// serviceOptions wires the optional engine dependencies that are present.
func (c *components) serviceOptions(log *slog.Logger, saver engine.SheetSaver) []engine.ServiceOption {
	opts := []engine.ServiceOption{engine.WithLogger(logger.Component(log, "engine"))}
	if c.reconciler != nil {
		opts = append(opts, engine.WithReconciler(c.reconciler))
	}
	if saver != nil {
		opts = append(opts, engine.WithSheetSaver(saver))
	}
	return opts
}
