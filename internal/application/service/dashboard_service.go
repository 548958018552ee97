package service

import (
	"context"
	"time"

	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
)

// DashboardService aggregates sales figures for the back-office overview
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	paymentRepo   repository.PaymentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, paymentRepo repository.PaymentRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		paymentRepo:   paymentRepo,
	}
}

// MethodSales is one payment method's share of today's takings
type MethodSales struct {
	Method enum.PaymentMethod `json:"method"`
	Amount float64            `json:"amount"`
	Count  int                `json:"count"`
}

// DashboardStats is the overview payload
type DashboardStats struct {
	TotalRevenue   float64                         `json:"total_revenue"`
	TodayRevenue   float64                         `json:"today_revenue"`
	OpenOrders     int64                           `json:"open_orders"`
	SettledOrders  int64                           `json:"settled_orders"`
	TodayByMethod  []MethodSales                   `json:"today_by_method"`
	SalesByChannel []repository.ChannelSalesResult `json:"sales_by_channel"`
	TopItems       []repository.TopItemResult      `json:"top_items"`
	DailySales     []repository.DailySalesResult   `json:"daily_sales"`
}

// GetStats builds the dashboard overview
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(totalRevenue) / 100

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayRevenue, err := s.analyticsRepo.GetRevenueSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = float64(todayRevenue) / 100

	if stats.OpenOrders, err = s.analyticsRepo.CountOrdersByStatus(ctx, enum.OrderStatusOpen); err != nil {
		return nil, err
	}
	if stats.SettledOrders, err = s.analyticsRepo.CountOrdersByStatus(ctx, enum.OrderStatusPaid); err != nil {
		return nil, err
	}

	methodSales, err := s.paymentRepo.SalesByMethod(ctx, startOfDay, startOfDay.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	for _, m := range methodSales {
		stats.TodayByMethod = append(stats.TodayByMethod, MethodSales{
			Method: m.Method,
			Amount: float64(m.Amount) / 100,
			Count:  m.Count,
		})
	}

	if stats.SalesByChannel, err = s.analyticsRepo.GetSalesByChannel(ctx); err != nil {
		return nil, err
	}
	if stats.TopItems, err = s.analyticsRepo.GetTopItems(ctx, 10); err != nil {
		return nil, err
	}
	if stats.DailySales, err = s.analyticsRepo.GetDailySales(ctx, 14); err != nil {
		return nil, err
	}

	return stats, nil
}
