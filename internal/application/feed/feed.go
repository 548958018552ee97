// Package feed maintains the live order snapshot the register's order
// rail renders. Events from the bus are applied as upserts keyed by
// order ID, so a late join or a replayed event converges to the same
// view; settled and voided orders drop out of the snapshot.
package feed

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// Feed is the in-memory live order snapshot.
type Feed struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*entity.Order
}

// New creates an empty feed.
func New() *Feed {
	return &Feed{orders: make(map[uuid.UUID]*entity.Order)}
}

// warmPageSize stays within the repository's per-page clamp.
const warmPageSize = 100

// Warm loads every currently open order from the repository so the
// snapshot is complete before live events start flowing. Open orders
// are paged through until the repository runs dry.
func (f *Feed) Warm(ctx context.Context, orderRepo repository.OrderRepository) error {
	status := enum.OrderStatusOpen
	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: warmPageSize},
		Status:     &status,
	}

	for {
		orders, _, err := orderRepo.List(ctx, params)
		if err != nil {
			return err
		}

		f.mu.Lock()
		for i := range orders {
			f.orders[orders[i].ID] = &orders[i]
		}
		f.mu.Unlock()

		if len(orders) < params.Pagination.PerPage {
			return nil
		}
		params.Pagination.Page++
	}
}

// Apply merges one order event into the snapshot. Created and updated
// orders are upserted; settled and voided orders are removed.
func (f *Feed) Apply(event *events.OrderEvent) {
	if event == nil || event.Order == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch event.Type {
	case events.OrderCreated, events.OrderUpdated:
		f.orders[event.Order.ID] = event.Order
	case events.OrderSettled, events.OrderVoided:
		delete(f.orders, event.Order.ID)
	}
}

// HandleMessage decodes a raw bus message and applies it. Malformed
// payloads are dropped; the snapshot must survive a noisy subject.
func (f *Feed) HandleMessage(ctx context.Context, data []byte) error {
	var event events.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		log.Printf("Warning: dropping malformed order event: %v", err)
		return nil
	}
	f.Apply(&event)
	return nil
}

// Subscribe attaches the feed to the live order subject.
func (f *Feed) Subscribe(ctx context.Context, subscriber events.Subscriber, subject string) error {
	return subscriber.Subscribe(ctx, subject, f.HandleMessage)
}

// Get returns one order from the snapshot, or nil.
func (f *Feed) Get(id uuid.UUID) *entity.Order {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.orders[id]
}

// List returns the snapshot ordered oldest first.
func (f *Feed) List() []*entity.Order {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]*entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].OpenedAt.Equal(result[j].OpenedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].OpenedAt.Before(result[j].OpenedAt)
	})
	return result
}

// Count returns the number of live orders.
func (f *Feed) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.orders)
}
