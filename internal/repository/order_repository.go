package repository

import (
	"context"
	"time"

	"tienda/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	From   *time.Time
	To     *time.Time
}

// StatusTransition is one bulk lifecycle action: move every order whose id
// is listed AND whose current status is in FromStatuses to ToStatus, stamping
// the named timestamp column. Orders in any other state are skipped silently;
// the repository reports how many rows actually moved.
type StatusTransition struct {
	IDs            []int64
	FromStatuses   []model.OrderStatus
	ToStatus       model.OrderStatus
	StampField     string // "paid_at", "shipped_at" or "delivered_at"; empty for none
	TrackingNumber string // only applied when moving to enviado
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64, page, limit int) ([]model.Order, int64, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	ApplyTransition(ctx context.Context, t StatusTransition, now time.Time) (int64, error)

	// ListPendingOlderThan feeds the payment-reminder pass.
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error)
}
