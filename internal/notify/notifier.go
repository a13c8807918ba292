// Package notify defines the notification interface and implementations
// for refresh failure delivery.
package notify

import (
	"context"
	"time"
)

// Failure kinds reported by the refresh engine.
const (
	KindExtraction = "extraction"
	KindTransport  = "transport"
)

// FailurePayload describes a stored sheet that could not be refreshed.
type FailurePayload struct {
	SheetID   string
	SheetName string
	SourceURL string
	Kind      string
	Error     string
	CheckedAt time.Time
}

// Notifier defines the interface for sending refresh failure notifications.
type Notifier interface {
	SendFailure(ctx context.Context, f *FailurePayload) error
	SendBatchFailure(ctx context.Context, failures []FailurePayload) error
}
