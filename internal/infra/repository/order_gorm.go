package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Omit("Lines").Create(&o).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByCustomer(ctx context.Context, customerID int64, page, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Order{}).Where("customer_id = ?", customerID)

	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	err := tx.Order("created_at desc").Order("id desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, 0, err
	}
	return orders, total, nil
}

func (r *OrderGormRepository) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Order{})

	if s := strings.TrimSpace(f.Status); s != "" {
		tx = tx.Where("status = ?", s)
	}
	if f.From != nil {
		tx = tx.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		tx = tx.Where("created_at < ?", *f.To)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	err := tx.Order("created_at desc").Order("id desc").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, 0, err
	}
	return orders, total, nil
}

// ApplyTransition runs the whole bulk action as one filtered UPDATE, so
// orders in a non-legal source state simply do not match and are skipped.
func (r *OrderGormRepository) ApplyTransition(ctx context.Context, t repo.StatusTransition, now time.Time) (int64, error) {
	if len(t.IDs) == 0 {
		return 0, nil
	}

	updates := map[string]interface{}{"status": t.ToStatus}
	if t.StampField != "" {
		updates[t.StampField] = now
	}
	if t.ToStatus == model.OrderStatusShipped && t.TrackingNumber != "" {
		updates["tracking_number"] = t.TrackingNumber
	}

	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id IN ? AND status IN ?", t.IDs, t.FromStatuses).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *OrderGormRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.OrderStatusPendingPayment, cutoff).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}
