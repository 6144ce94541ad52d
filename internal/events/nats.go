package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger logger.Logger
}

func NewNATSPublisher(url, prefix string, logger logger.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("safemeet"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSPublisher{conn: conn, prefix: prefix, logger: logger}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, e domain.LifecycleEvent) error {
	payload, err := encode(e)
	if err != nil {
		return err
	}

	subject := Subject(p.prefix, e)
	p.logger.LogAttrs(ctx, logger.DebugLevel, "publishing event",
		logger.String("subject", subject),
		logger.String("session_id", e.SessionID),
	)

	if err = p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("drain nats: %w", err)
	}
	return nil
}
