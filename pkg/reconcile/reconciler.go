package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

const (
	// DefaultTemperature biases the completion toward stable formatting.
	DefaultTemperature = 0.1
	// DefaultMaxTokens leaves room for a full spec sheet in the reply.
	DefaultMaxTokens = 4096
)

// ErrInvalidRecord is returned for a nil or unnamed input record.
var ErrInvalidRecord = errors.New("record must have a name")

// Outcome is a successful reconciliation.
type Outcome struct {
	Result *domain.ReconciledResult
	Model  string
	Usage  TokenUsage
}

// Reconciler runs one completion per record and validates the reply.
type Reconciler struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
	log         *slog.Logger
}

// ReconcilerOption configures the Reconciler.
type ReconcilerOption func(*Reconciler)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ReconcilerOption {
	return func(r *Reconciler) {
		r.temperature = t
	}
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(n int) ReconcilerOption {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxTokens = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.log = l
	}
}

// NewReconciler creates a Reconciler over backend.
func NewReconciler(backend LLMBackend, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		backend:     backend,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Backend returns the name of the configured backend.
func (r *Reconciler) Backend() string {
	return r.backend.Name()
}

// Reconcile sends record to the completion service once and returns the
// validated, re-filtered reply. Unparseable or schema-invalid replies are
// returned as *ParseError; service failures as *BackendError.
func (r *Reconciler) Reconcile(ctx context.Context, record *domain.ExtractionResult) (*Outcome, error) {
	if record == nil || record.Name == "" {
		return nil, ErrInvalidRecord
	}

	prompt, err := RenderPrompt(record)
	if err != nil {
		return nil, fmt.Errorf("rendering reconcile prompt: %w", err)
	}

	resp, err := r.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		Format:      FormatJSON,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", r.backend.Name(), err)
	}

	obj, err := decodeObject(resp.Content)
	if err != nil {
		r.log.Warn("completion not parseable",
			"backend", r.backend.Name(),
			"name", record.Name,
			"error", err,
		)
		return nil, err
	}

	result, err := validateRecord(obj)
	if err != nil {
		return nil, newParseError(StageSchema, err.Error(), resp.Content)
	}
	if result.SourceURL == "" {
		result.SourceURL = record.SourceURL
	}

	usage := resp.Usage
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	}

	r.log.Debug("record reconciled",
		"backend", r.backend.Name(),
		"name", result.Name,
		"specs_in", record.TotalSpecs,
		"specs_out", result.TotalSpecs,
		"tokens", usage.TotalTokens,
	)

	return &Outcome{Result: result, Model: resp.Model, Usage: usage}, nil
}
