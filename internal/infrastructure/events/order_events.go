package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
)

const (
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderSettled = "order.settled"
	OrderVoided  = "order.voided"
)

// OrderEvent is the envelope published to the live order subject whenever
// an order changes. Consumers keep their own snapshot keyed by order ID.
type OrderEvent struct {
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	Order      *entity.Order `json:"order"`
}

// OrderEventPublisher broadcasts order lifecycle changes.
type OrderEventPublisher struct {
	publisher Publisher
	subject   string
}

// NewOrderEventPublisher creates a publisher bound to a subject.
func NewOrderEventPublisher(publisher Publisher, subject string) *OrderEventPublisher {
	return &OrderEventPublisher{publisher: publisher, subject: subject}
}

// Publish sends one order event. Publishing is best-effort: a bus outage
// must never fail the order operation that triggered it.
func (p *OrderEventPublisher) Publish(ctx context.Context, eventType string, order *entity.Order) {
	if p == nil || p.publisher == nil {
		return
	}

	event := OrderEvent{
		Type:       eventType,
		OccurredAt: time.Now(),
		Order:      order,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Warning: failed to marshal order event: %v", err)
		return
	}

	if err := p.publisher.Publish(ctx, p.subject, data); err != nil {
		log.Printf("Warning: failed to publish order event: %v", err)
	}
}
