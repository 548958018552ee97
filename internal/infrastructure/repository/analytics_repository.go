package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopItems(ctx context.Context, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id as menu_item_id,
			oi.name as item_name,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.unit_price * oi.quantity), 0) / 100.0 as revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 1 AND oi.deleted_at IS NULL
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByChannel(ctx context.Context) ([]domainRepo.ChannelSalesResult, error) {
	var results []domainRepo.ChannelSalesResult

	var totalSales float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE status = 1 AND deleted_at IS NULL
	`).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			channel,
			COALESCE(SUM(total), 0) / 100.0 as total_sales,
			COUNT(id) as order_count
		FROM orders
		WHERE status = 1 AND deleted_at IS NULL
		GROUP BY channel
		ORDER BY total_sales DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = (results[i].TotalSales / totalSales) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	// Generate dates for the last N days and get sales for each
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var revenue sql.NullFloat64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) / 100.0
			FROM orders
			WHERE status = 1 AND deleted_at IS NULL
			AND settled_at >= ? AND settled_at < ?
		`, startOfDay, endOfDay).Scan(&revenue).Error

		if err != nil {
			return nil, err
		}

		rev := 0.0
		if revenue.Valid {
			rev = revenue.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay,
			Revenue: rev,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 1 AND deleted_at IS NULL
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 1 AND deleted_at IS NULL AND settled_at >= ?
	`, since).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
