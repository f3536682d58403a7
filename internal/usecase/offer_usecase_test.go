package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tienda/internal/domain/model"
	"tienda/internal/usecase"
)

func newOfferUsecase(productPrice int64) (*usecase.OfferUsecase, *OfferRepoMock) {
	offers := new(OfferRepoMock)
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(1)).Return(activeProduct(1, productPrice, 10), nil)
	return usecase.NewOfferUsecase(offers, products), offers
}

func TestOfferCreateRejectsPriceAtOrAboveBase(t *testing.T) {
	uc, _ := newOfferUsecase(1000)
	now := time.Now()

	for _, price := range []int64{1000, 1200} {
		_, err := uc.Create(context.Background(), usecase.OfferInput{
			ProductID:  1,
			OfferPrice: decimal.NewFromInt(price),
			StartsAt:   now,
			EndsAt:     now.Add(24 * time.Hour),
			IsActive:   true,
		})
		he, ok := usecase.AsHTTPError(err)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}

func TestOfferCreateRejectsEmptyWindow(t *testing.T) {
	uc, _ := newOfferUsecase(1000)
	now := time.Now()

	_, err := uc.Create(context.Background(), usecase.OfferInput{
		ProductID:  1,
		OfferPrice: decimal.NewFromInt(800),
		StartsAt:   now,
		EndsAt:     now,
		IsActive:   true,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.Create(context.Background(), usecase.OfferInput{
		ProductID:  1,
		OfferPrice: decimal.NewFromInt(800),
		StartsAt:   now,
		EndsAt:     now.Add(-time.Hour),
		IsActive:   true,
	})
	he, ok = usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestOfferCreateAcceptsValidOffer(t *testing.T) {
	uc, offers := newOfferUsecase(1000)
	now := time.Now()

	offers.On("Create", mock.Anything, mock.MatchedBy(func(o model.Offer) bool {
		return o.ProductID == 1 && o.OfferPrice.Equal(decimal.NewFromInt(790))
	})).Return(model.Offer{ID: 3, ProductID: 1, OfferPrice: decimal.NewFromInt(790)}, nil)

	o, err := uc.Create(context.Background(), usecase.OfferInput{
		ProductID:  1,
		OfferPrice: decimal.NewFromInt(790),
		StartsAt:   now,
		EndsAt:     now.Add(48 * time.Hour),
		IsActive:   true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), o.ID)
}

func TestOfferCreateRejectsMissingProduct(t *testing.T) {
	offers := new(OfferRepoMock)
	products := new(ProductRepoMock)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repoErrNotFound())
	uc := usecase.NewOfferUsecase(offers, products)

	_, err := uc.Create(context.Background(), usecase.OfferInput{
		ProductID:  99,
		OfferPrice: decimal.NewFromInt(500),
		StartsAt:   time.Now(),
		EndsAt:     time.Now().Add(time.Hour),
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
