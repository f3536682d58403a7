package repository

import (
	"context"
	"time"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ? AND status IN ?", from, to, model.SoldStatuses()).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *StatsGormRepository) OrderCountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) ActiveProductCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}

func (r *StatsGormRepository) TopProductsSince(ctx context.Context, since time.Time, limit int) ([]repo.TopProduct, error) {
	var rows []repo.TopProduct
	err := r.db.WithContext(ctx).Model(&model.OrderLine{}).
		Select("order_lines.product_id AS product_id, order_lines.product_name AS name, SUM(order_lines.quantity) AS total_sold").
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("orders.status IN ? AND orders.created_at >= ?", model.SoldStatuses(), since).
		Group("order_lines.product_id, order_lines.product_name").
		Order("total_sold desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.TopProduct{}, err
	}
	return rows, nil
}
