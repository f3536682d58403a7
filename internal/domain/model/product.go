package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitUnidad  Unit = "unidad"
	UnitKg      Unit = "kg"
	UnitGr      Unit = "gr"
	UnitLt      Unit = "lt"
	UnitMl      Unit = "ml"
	UnitPaquete Unit = "paquete"
	UnitCaja    Unit = "caja"
)

func ValidUnit(u Unit) bool {
	switch u {
	case UnitUnidad, UnitKg, UnitGr, UnitLt, UnitMl, UnitPaquete, UnitCaja:
		return true
	}
	return false
}

// Price is always > 0 and stock never negative; both are enforced at write
// time, and the checkout decrement guards again with a conditional UPDATE.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null;index" json:"nombre"`
	Description string          `gorm:"type:varchar(500)" json:"descripcion"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"precio_unitario"`
	Unit        Unit            `gorm:"type:varchar(20);not null;default:'unidad'" json:"unidad_medida"`
	Stock       int64           `gorm:"not null;default:0" json:"stock_disponible"`
	CategoryID  int64           `gorm:"not null;index" json:"categoria_id"`
	Category    *Category       `gorm:"constraint:OnDelete:RESTRICT" json:"categoria,omitempty"`
	Image       string          `gorm:"type:varchar(255);default:'default.jpg'" json:"imagen"`
	IsActive    bool            `gorm:"not null;default:true" json:"activo"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"fecha_creacion"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"fecha_modificacion"`
}

func (p Product) HasStock() bool {
	return p.Stock > 0
}
