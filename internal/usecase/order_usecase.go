package usecase

import (
	"context"
	"net/http"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderLineRepo repo.OrderLineRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderLineRepo repo.OrderLineRepository) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
	}
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, customerID int64, page, limit int) (OrderListOutput, error) {
	if customerID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.orderRepo.ListByCustomer(ctx, customerID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// GetMyOrderDetail hides other customers' orders behind a 404 so ids cannot
// be probed.
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, customerID, orderID int64) (model.Order, error) {
	if customerID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
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
	if o.CustomerID == nil || *o.CustomerID != customerID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "pedido no encontrado")
	}

	lines, err := u.orderLineRepo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	o.Lines = lines
	return o, nil
}
