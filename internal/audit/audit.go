// Package audit is the pipeline's output port for audit events. The pipeline
// emits events; how they are stored is the surrounding system's concern.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/constants"
)

// Event is one audit record emitted toward the external audit collaborator.
type Event struct {
	Action     constants.AuditAction `json:"action"`
	DocumentID uuid.UUID             `json:"document_id"`
	Message    string                `json:"message"`
	Metadata   map[string]any        `json:"metadata,omitempty"`
	At         time.Time             `json:"at"`
}

// Recorder delivers audit events.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// LogRecorder writes events to the structured log. Used by one-shot CLIs and
// as a fallback when no queue is configured.
type LogRecorder struct {
	Logger *slog.Logger
}

func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRecorder{Logger: logger}
}

func (r *LogRecorder) Record(_ context.Context, ev Event) error {
	r.Logger.Info("audit event",
		"action", string(ev.Action),
		"document_id", ev.DocumentID,
		"message", ev.Message,
		"metadata", ev.Metadata,
	)
	return nil
}
