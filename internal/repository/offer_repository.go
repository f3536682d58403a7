package repository

import (
	"context"
	"time"

	"tienda/internal/domain/model"
)

type OfferRepository interface {
	// ListActiveByProduct returns the offers effectively active for the
	// product at the given instant (flag set, now within the window).
	ListActiveByProduct(ctx context.Context, productID int64, now time.Time) ([]model.Offer, error)

	// ListActiveByProducts batches the lookup for cart and listing views,
	// keyed by product id.
	ListActiveByProducts(ctx context.Context, productIDs []int64, now time.Time) (map[int64][]model.Offer, error)

	ListByProduct(ctx context.Context, productID int64) ([]model.Offer, error)
	Create(ctx context.Context, o model.Offer) (model.Offer, error)
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)
	Delete(ctx context.Context, id int64) error
}
