package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tienda/internal/domain/model"
	"tienda/internal/pricing"
)

func offer(price int64, startOffset, endOffset time.Duration, active bool, now time.Time) model.Offer {
	return model.Offer{
		OfferPrice: decimal.NewFromInt(price),
		StartsAt:   now.Add(startOffset),
		EndsAt:     now.Add(endOffset),
		IsActive:   active,
	}
}

func TestBestOfferRequiresFlagAndWindow(t *testing.T) {
	now := time.Now()
	product := model.Product{Price: decimal.NewFromInt(1000)}

	tests := []struct {
		name  string
		offer model.Offer
		want  int64
	}{
		{"active inside window", offer(800, -time.Hour, time.Hour, true, now), 800},
		{"flag off inside window", offer(800, -time.Hour, time.Hour, false, now), 1000},
		{"window not started", offer(800, time.Hour, 2*time.Hour, true, now), 1000},
		{"window already over", offer(800, -2*time.Hour, -time.Hour, true, now), 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.EffectivePrice(product, []model.Offer{tt.offer}, now)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestBestOfferWindowBoundsAreInclusive(t *testing.T) {
	now := time.Now()
	product := model.Product{Price: decimal.NewFromInt(1000)}

	atStart := model.Offer{
		OfferPrice: decimal.NewFromInt(700),
		StartsAt:   now,
		EndsAt:     now.Add(time.Hour),
		IsActive:   true,
	}
	assert.True(t, pricing.EffectivePrice(product, []model.Offer{atStart}, now).Equal(decimal.NewFromInt(700)))

	atEnd := model.Offer{
		OfferPrice: decimal.NewFromInt(700),
		StartsAt:   now.Add(-time.Hour),
		EndsAt:     now,
		IsActive:   true,
	}
	assert.True(t, pricing.EffectivePrice(product, []model.Offer{atEnd}, now).Equal(decimal.NewFromInt(700)))
}

func TestBestOfferPicksLowestPriceOnOverlap(t *testing.T) {
	now := time.Now()
	offers := []model.Offer{
		offer(900, -time.Hour, time.Hour, true, now),
		offer(750, -2*time.Hour, 2*time.Hour, true, now),
		offer(600, time.Hour, 2*time.Hour, true, now), // cheaper but not started
	}

	best := pricing.BestOffer(offers, now)
	assert.NotNil(t, best)
	assert.True(t, best.OfferPrice.Equal(decimal.NewFromInt(750)))
}

func TestBestOfferNilWithoutCandidates(t *testing.T) {
	assert.Nil(t, pricing.BestOffer(nil, time.Now()))
}

func TestDiscountPercent(t *testing.T) {
	o := model.Offer{OfferPrice: decimal.NewFromInt(750)}
	pct := o.DiscountPercent(decimal.NewFromInt(1000))
	assert.True(t, pct.Equal(decimal.NewFromInt(25)), "got %s", pct)
}
