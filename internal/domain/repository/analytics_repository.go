package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
)

// AnalyticsRepository defines aggregate sales queries for the dashboard
type AnalyticsRepository interface {
	GetTopItems(ctx context.Context, limit int) ([]TopItemResult, error)
	GetSalesByChannel(ctx context.Context) ([]ChannelSalesResult, error)
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)
	GetTotalRevenue(ctx context.Context) (int64, error)
	GetRevenueSince(ctx context.Context, since time.Time) (int64, error)
	CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
}

// TopItemResult is one row of the best sellers report
type TopItemResult struct {
	MenuItemID   *uuid.UUID `json:"menu_item_id"`
	ItemName     string     `json:"item_name"`
	QuantitySold int64      `json:"quantity_sold"`
	Revenue      float64    `json:"revenue"`
}

// ChannelSalesResult aggregates settled revenue per order channel
type ChannelSalesResult struct {
	Channel    enum.OrderChannel `json:"channel"`
	TotalSales float64           `json:"total_sales"`
	OrderCount int64             `json:"order_count"`
	Percentage float64           `json:"percentage"`
}

// DailySalesResult is one day of the revenue series
type DailySalesResult struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}
