// Package queue carries document events over NATS. Upload notifications are
// plain document IDs; consumers share a queue group so each upload is
// processed once.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const workersGroup = "docuflow-workers"

// Connect dials the NATS server with reconnect handling. The returned
// connection is shared by publishers, subscribers, and the audit recorder.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := nats.Connect(
		url,
		nats.Name("docuflow"),
		nats.Timeout(2*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(60),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return conn, nil
}

// Uploads publishes and consumes document-uploaded notifications.
type Uploads struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

func NewUploads(conn *nats.Conn, subject string, logger *slog.Logger) *Uploads {
	if subject == "" {
		subject = "documents.uploaded"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploads{conn: conn, subject: subject, logger: logger}
}

func (u *Uploads) Publish(_ context.Context, documentID uuid.UUID) error {
	if err := u.conn.Publish(u.subject, []byte(documentID.String())); err != nil {
		return fmt.Errorf("nats publish %s: %w", u.subject, err)
	}
	return nil
}

// Subscribe consumes uploads until ctx is cancelled. Handler errors are
// logged; malformed IDs are dropped.
func (u *Uploads) Subscribe(ctx context.Context, handler func(context.Context, uuid.UUID) error) error {
	sub, err := u.conn.QueueSubscribe(u.subject, workersGroup, func(msg *nats.Msg) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		id, err := uuid.Parse(string(msg.Data))
		if err != nil {
			u.logger.Warn("queue.bad_document_id", "subject", u.subject, "data", string(msg.Data))
			return
		}
		if err := handler(ctx, id); err != nil {
			u.logger.Error("queue.handler.failed", "document_id", id, "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe %s: %w", u.subject, err)
	}
	defer func() {
		_ = sub.Unsubscribe()
	}()

	if err := u.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}
	u.logger.Info("queue.listening", "subject", u.subject, "group", workersGroup)

	<-ctx.Done()
	return nil
}
