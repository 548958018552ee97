package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// HandlerFunc processes one raw message from the bus.
type HandlerFunc func(ctx context.Context, msg []byte) error

// Publisher sends messages to a subject on the bus.
type Publisher interface {
	Publish(ctx context.Context, subject string, msg []byte) error
	Close() error
}

// Subscriber receives messages from a subject on the bus.
type Subscriber interface {
	Subscribe(ctx context.Context, subject string, handler HandlerFunc) error
	Close() error
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, msg []byte) error {
	return p.conn.Publish(subject, msg)
}

func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

type NATSSubscriber struct {
	conn *nats.Conn
}

func NewNATSSubscriber(url string) (*NATSSubscriber, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSSubscriber{conn: conn}, nil
}

func (s *NATSSubscriber) Subscribe(ctx context.Context, subject string, handler HandlerFunc) error {
	_, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
		_ = handler(ctx, msg.Data)
	})
	return err
}

func (s *NATSSubscriber) Close() error {
	s.conn.Close()
	return nil
}
