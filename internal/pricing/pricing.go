package pricing

import (
	"time"

	"tienda/internal/domain/model"

	"github.com/shopspring/decimal"
)

// BestOffer returns the offer to apply for the product at the given instant,
// or nil when no offer is effectively active. The schema allows overlapping
// offers; the tie-break is the lowest offer price, so the result does not
// depend on row order.
func BestOffer(offers []model.Offer, now time.Time) *model.Offer {
	var best *model.Offer
	for i := range offers {
		o := &offers[i]
		if !o.CurrentlyActive(now) {
			continue
		}
		if best == nil || o.OfferPrice.LessThan(best.OfferPrice) {
			best = o
		}
	}
	return best
}

// EffectivePrice is the unit price to charge for the product at the given
// instant: the best active offer price, or the base price.
func EffectivePrice(p model.Product, offers []model.Offer, now time.Time) decimal.Decimal {
	if o := BestOffer(offers, now); o != nil {
		return o.OfferPrice
	}
	return p.Price
}
