package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jmcarrillo/docuflow/internal/common"
)

// NATSRecorder publishes audit events as JSON messages on a NATS subject.
type NATSRecorder struct {
	conn    *nats.Conn
	subject string
}

func NewNATSRecorder(conn *nats.Conn, subject string) (*NATSRecorder, error) {
	if conn == nil {
		return nil, common.WrapError(common.ErrConfig, "audit.NewNATSRecorder", fmt.Errorf("nil connection"))
	}
	if subject == "" {
		subject = "documents.audit"
	}
	return &NATSRecorder{conn: conn, subject: subject}, nil
}

func (r *NATSRecorder) Record(_ context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return common.WrapError(common.ErrInvalid, "audit.Record", err)
	}
	if err := r.conn.Publish(r.subject, payload); err != nil {
		return fmt.Errorf("audit.Record: publish %s: %w", r.subject, err)
	}
	return nil
}
