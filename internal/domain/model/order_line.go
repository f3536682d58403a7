package model

import "github.com/shopspring/decimal"

// Historical snapshot of one purchased product. UnitPrice is the price
// charged at the moment of purchase and is never recomputed. The product row
// cannot be deleted while lines reference it.
type OrderLine struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64           `gorm:"not null;index" json:"-"`
	ProductID   int64           `gorm:"not null;index" json:"producto_id"`
	Product     *Product        `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	ProductName string          `gorm:"type:varchar(100);not null" json:"producto_nombre"`
	Quantity    int64           `gorm:"not null" json:"cantidad"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"precio_compra"`
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}
