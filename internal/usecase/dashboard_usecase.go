package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type DashboardUsecase struct {
	statsRepo    repo.StatsRepository
	customerRepo repo.CustomerRepository
	now          func() time.Time
}

func NewDashboardUsecase(statsRepo repo.StatsRepository, customerRepo repo.CustomerRepository) *DashboardUsecase {
	return &DashboardUsecase{
		statsRepo:    statsRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

type DashboardSummary struct {
	MonthRevenue    decimal.Decimal   `json:"ventas_mes"`
	MonthOrderCount int64             `json:"pedidos_mes"`
	PendingPayment  int64             `json:"pedidos_pendientes_pago"`
	ActiveProducts  int64             `json:"productos_activos"`
	ActiveCustomers int64             `json:"clientes_activos"`
	TopProducts     []repo.TopProduct `json:"productos_mas_vendidos"`
}

// Summary aggregates the current calendar month plus a 30-day best-seller
// ranking. Revenue only counts orders that reached a paid state.
func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardSummary, error) {
	now := u.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenue, err := u.statsRepo.RevenueBetween(ctx, monthStart, now)
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	orderCount, err := u.statsRepo.OrderCountBetween(ctx, monthStart, now)
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	pending, err := u.statsRepo.CountByStatus(ctx, string(model.OrderStatusPendingPayment))
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	products, err := u.statsRepo.ActiveProductCount(ctx)
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	customers, err := u.customerRepo.CountActive(ctx)
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	top, err := u.statsRepo.TopProductsSince(ctx, now.AddDate(0, 0, -30), 5)
	if err != nil {
		return DashboardSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardSummary{
		MonthRevenue:    revenue,
		MonthOrderCount: orderCount,
		PendingPayment:  pending,
		ActiveProducts:  products,
		ActiveCustomers: customers,
		TopProducts:     top,
	}, nil
}
