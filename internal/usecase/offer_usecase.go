package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type OfferUsecase struct {
	offerRepo   repo.OfferRepository
	productRepo repo.ProductRepository
}

func NewOfferUsecase(offerRepo repo.OfferRepository, productRepo repo.ProductRepository) *OfferUsecase {
	return &OfferUsecase{
		offerRepo:   offerRepo,
		productRepo: productRepo,
	}
}

type OfferInput struct {
	ProductID  int64
	OfferPrice decimal.Decimal
	StartsAt   time.Time
	EndsAt     time.Time
	IsActive   bool
}

// Create rejects malformed offers up front. Offers with an offer price at or
// above the base price, or an empty window, never reach the table.
func (u *OfferUsecase) Create(ctx context.Context, in OfferInput) (model.Offer, error) {
	if in.ProductID <= 0 {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "el producto no existe")
	}
	if err != nil {
		return model.Offer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !in.OfferPrice.IsPositive() {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "el precio de oferta debe ser mayor que cero")
	}
	if in.OfferPrice.GreaterThanOrEqual(p.Price) {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "el precio de oferta debe ser menor que el precio unitario")
	}
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "las fechas de la oferta son obligatorias")
	}
	if !in.EndsAt.After(in.StartsAt) {
		return model.Offer{}, NewHTTPError(http.StatusBadRequest, "la fecha de fin debe ser posterior a la fecha de inicio")
	}

	o, err := u.offerRepo.Create(ctx, model.Offer{
		ProductID:  in.ProductID,
		OfferPrice: in.OfferPrice,
		StartsAt:   in.StartsAt,
		EndsAt:     in.EndsAt,
		IsActive:   in.IsActive,
	})
	if err != nil {
		return model.Offer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

func (u *OfferUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Offer, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	offers, err := u.offerRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return offers, nil
}

func (u *OfferUsecase) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	affected, err := u.offerRepo.SetActive(ctx, ids, active)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return affected, nil
}

func (u *OfferUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid offer id")
	}
	err := u.offerRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "oferta no encontrada")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
