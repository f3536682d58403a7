package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// A time-bounded discounted price for one product. The offer price must be
// below the product's base price and the window must be non-empty; both are
// rejected at creation, never silently skipped when pricing.
type Offer struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64           `gorm:"not null;index:idx_ofertas_producto_ventana" json:"producto_id"`
	Product    *Product        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OfferPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"precio_oferta"`
	StartsAt   time.Time       `gorm:"not null;index:idx_ofertas_producto_ventana" json:"fecha_inicio"`
	EndsAt     time.Time       `gorm:"not null;index:idx_ofertas_producto_ventana" json:"fecha_fin"`
	IsActive   bool            `gorm:"not null;default:true" json:"activa"`
}

// CurrentlyActive reports whether the offer applies at the given instant.
func (o Offer) CurrentlyActive(now time.Time) bool {
	return o.IsActive && !now.Before(o.StartsAt) && !now.After(o.EndsAt)
}

// DiscountPercent is for display only; monetary math always uses the raw
// offer price to avoid rounding drift.
func (o Offer) DiscountPercent(basePrice decimal.Decimal) decimal.Decimal {
	if basePrice.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	return basePrice.Sub(o.OfferPrice).Div(basePrice).Mul(hundred).Round(2)
}
