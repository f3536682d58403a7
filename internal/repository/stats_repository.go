package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TopProduct struct {
	ProductID int64  `json:"producto_id"`
	Name      string `json:"nombre"`
	TotalSold int64  `json:"total_vendido"`
}

// StatsRepository backs the admin sales summary. "Sold" aggregates only count
// orders in pagado/preparando/enviado/completado.
type StatsRepository interface {
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	OrderCountBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	ActiveProductCount(ctx context.Context) (int64, error)
	TopProductsSince(ctx context.Context, since time.Time, limit int) ([]TopProduct, error)
}
