package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderLineRepo repo.OrderLineRepository
	now           func() time.Time
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository, orderLineRepo repo.OrderLineRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		now:           time.Now,
	}
}

const (
	ActionMarkPaid      = "marcar_pagado"
	ActionMarkShipped   = "marcar_enviado"
	ActionMarkCompleted = "marcar_completado"
	ActionCancel        = "cancelar"
)

type BulkActionInput struct {
	Action         string
	IDs            []int64
	TrackingNumber string
}

type BulkActionOutput struct {
	Affected int64 `json:"affected"`
}

// ApplyBulkAction advances every selected order that sits in a valid source
// state and skips the rest without failing, reporting how many moved. The
// whole action is a single filtered UPDATE, so two admins acting at once
// cannot double-apply a transition.
//
// Cancelling does not restore stock: pending and paid orders have already
// claimed their units and returning them is a manual inventory decision.
func (u *AdminOrderUsecase) ApplyBulkAction(ctx context.Context, in BulkActionInput) (BulkActionOutput, error) {
	if len(in.IDs) == 0 {
		return BulkActionOutput{}, NewHTTPError(http.StatusBadRequest, "ids required")
	}

	t := repo.StatusTransition{IDs: in.IDs}
	switch in.Action {
	case ActionMarkPaid:
		t.FromStatuses = []model.OrderStatus{model.OrderStatusPendingPayment}
		t.ToStatus = model.OrderStatusPaid
		t.StampField = "paid_at"
	case ActionMarkShipped:
		t.FromStatuses = []model.OrderStatus{model.OrderStatusPaid, model.OrderStatusPreparing}
		t.ToStatus = model.OrderStatusShipped
		t.StampField = "shipped_at"
		t.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
		if t.TrackingNumber == "" {
			t.TrackingNumber = newTrackingNumber()
		}
	case ActionMarkCompleted:
		t.FromStatuses = []model.OrderStatus{model.OrderStatusShipped}
		t.ToStatus = model.OrderStatusCompleted
		t.StampField = "delivered_at"
	case ActionCancel:
		t.FromStatuses = []model.OrderStatus{model.OrderStatusPendingPayment, model.OrderStatusPaid}
		t.ToStatus = model.OrderStatusCancelled
	default:
		return BulkActionOutput{}, NewHTTPError(http.StatusBadRequest, "acción inválida")
	}

	affected, err := u.orderRepo.ApplyTransition(ctx, t, u.now())
	if err != nil {
		return BulkActionOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return BulkActionOutput{Affected: affected}, nil
}

// MarkPreparing is the single-order step between pagado and enviado.
func (u *AdminOrderUsecase) MarkPreparing(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	affected, err := u.orderRepo.ApplyTransition(ctx, repo.StatusTransition{
		IDs:          []int64{orderID},
		FromStatuses: []model.OrderStatus{model.OrderStatusPaid},
		ToStatus:     model.OrderStatusPreparing,
	}, u.now())
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if affected == 0 {
		return NewHTTPError(http.StatusBadRequest, "el pedido no está en estado pagado")
	}
	return nil
}

func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (OrderListOutput, error) {
	if f.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.orderRepo.ListAdmin(ctx, f)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderListOutput{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (u *AdminOrderUsecase) Detail(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "pedido no encontrado")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	lines, err := u.orderLineRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	o.Lines = lines
	return o, nil
}

func newTrackingNumber() string {
	return "TRK-" + strings.ToUpper(uuid.NewString()[:8])
}
