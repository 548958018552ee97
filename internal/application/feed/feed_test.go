package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(openedAt time.Time) *entity.Order {
	return &entity.Order{
		ID:       uuid.New(),
		OrderNo:  "ORD-TEST",
		Status:   enum.OrderStatusOpen,
		OpenedAt: openedAt,
	}
}

// pagedOrderRepo serves List from canned pages and records each request.
type pagedOrderRepo struct {
	pages    [][]entity.Order
	statuses []*enum.OrderStatus
	reqPages []int
}

func (r *pagedOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	r.statuses = append(r.statuses, params.Status)
	r.reqPages = append(r.reqPages, params.Pagination.Page)

	var total int64
	for _, p := range r.pages {
		total += int64(len(p))
	}
	if params.Pagination.Page > len(r.pages) {
		return nil, total, nil
	}
	return r.pages[params.Pagination.Page-1], total, nil
}

func (r *pagedOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }
func (r *pagedOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (r *pagedOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	return nil, nil
}
func (r *pagedOrderRepo) Update(ctx context.Context, order *entity.Order) error { return nil }
func (r *pagedOrderRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *pagedOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return nil, nil
}
func (r *pagedOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return nil, nil
}
func (r *pagedOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return nil
}
func (r *pagedOrderRepo) ListOpenByTable(ctx context.Context, tableID uuid.UUID) ([]entity.Order, error) {
	return nil, nil
}

func TestWarmPagesThroughAllOpenOrders(t *testing.T) {
	full := make([]entity.Order, 100)
	for i := range full {
		full[i] = *newOrder(time.Now())
	}
	rest := make([]entity.Order, 30)
	for i := range rest {
		rest[i] = *newOrder(time.Now())
	}

	repo := &pagedOrderRepo{pages: [][]entity.Order{full, rest}}
	f := New()
	require.NoError(t, f.Warm(context.Background(), repo))

	// Every open order lands in the snapshot, not just the first page
	assert.Equal(t, 130, f.Count())
	assert.Equal(t, []int{1, 2}, repo.reqPages)
	require.NotNil(t, repo.statuses[0])
	assert.Equal(t, enum.OrderStatusOpen, *repo.statuses[0])
}

func TestApplyUpsertsByOrderID(t *testing.T) {
	f := New()
	order := newOrder(time.Now())

	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: order})
	assert.Equal(t, 1, f.Count())

	// Same order replayed does not duplicate
	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: order})
	assert.Equal(t, 1, f.Count())

	updated := *order
	updated.Guests = 4
	f.Apply(&events.OrderEvent{Type: events.OrderUpdated, Order: &updated})
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, 4, f.Get(order.ID).Guests)
}

func TestApplyRemovesSettledAndVoided(t *testing.T) {
	f := New()
	a := newOrder(time.Now())
	b := newOrder(time.Now())

	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: a})
	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: b})

	f.Apply(&events.OrderEvent{Type: events.OrderSettled, Order: a})
	assert.Nil(t, f.Get(a.ID))

	f.Apply(&events.OrderEvent{Type: events.OrderVoided, Order: b})
	assert.Equal(t, 0, f.Count())
}

func TestListOrderedByOpenedAt(t *testing.T) {
	f := New()
	base := time.Now()
	newer := newOrder(base.Add(time.Minute))
	older := newOrder(base)

	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: newer})
	f.Apply(&events.OrderEvent{Type: events.OrderCreated, Order: older})

	list := f.List()
	require.Len(t, list, 2)
	assert.Equal(t, older.ID, list[0].ID)
	assert.Equal(t, newer.ID, list[1].ID)
}

func TestHandleMessageDropsMalformedPayloads(t *testing.T) {
	f := New()

	err := f.HandleMessage(context.Background(), []byte("{not json"))
	require.NoError(t, err)
	assert.Equal(t, 0, f.Count())

	order := newOrder(time.Now())
	data, err := json.Marshal(events.OrderEvent{Type: events.OrderCreated, Order: order})
	require.NoError(t, err)

	require.NoError(t, f.HandleMessage(context.Background(), data))
	assert.Equal(t, 1, f.Count())
}

func TestApplyIgnoresNilAndUnknownEvents(t *testing.T) {
	f := New()
	f.Apply(nil)
	f.Apply(&events.OrderEvent{Type: events.OrderCreated})
	f.Apply(&events.OrderEvent{Type: "order.unknown", Order: newOrder(time.Now())})
	assert.Equal(t, 0, f.Count())
}
