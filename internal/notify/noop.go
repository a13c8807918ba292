package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded failures. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards failures with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendFailure logs and discards a single failure.
func (n *NoOpNotifier) SendFailure(_ context.Context, f *FailurePayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"sheet", f.SheetName,
		"kind", f.Kind,
		"error", f.Error,
	)
	return nil
}

// SendBatchFailure logs and discards a batch of failures.
func (n *NoOpNotifier) SendBatchFailure(_ context.Context, failures []FailurePayload) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"count", len(failures),
	)
	return nil
}
