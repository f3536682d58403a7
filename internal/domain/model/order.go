package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pendiente_pago"
	OrderStatusPaid           OrderStatus = "pagado"
	OrderStatusPreparing      OrderStatus = "preparando"
	OrderStatusShipped        OrderStatus = "enviado"
	OrderStatusCompleted      OrderStatus = "completado"
	OrderStatusCancelled      OrderStatus = "cancelado"
)

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentWebpay   PaymentMethod = "webpay"
	PaymentCash     PaymentMethod = "efectivo"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentTransfer, PaymentWebpay, PaymentCash:
		return true
	}
	return false
}

// An order is an immutable snapshot of the customer's contact and shipping
// data at checkout. CustomerID is nil for guest checkout. Orders are never
// deleted; only status, timestamps and tracking mutate afterwards.
type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *int64    `gorm:"index" json:"-"`
	Customer   *Customer `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"nombre_cliente"`
	CustomerEmail string `gorm:"type:varchar(255);not null" json:"correo_cliente"`
	CustomerPhone string `gorm:"type:varchar(20);not null" json:"telefono_cliente"`

	Address          string `gorm:"type:varchar(500);not null" json:"direccion"`
	Region           string `gorm:"type:varchar(100);not null" json:"region"`
	Comuna           string `gorm:"type:varchar(100);not null" json:"comuna"`
	PostalCode       string `gorm:"type:varchar(20)" json:"codigo_postal"`
	AddressReference string `gorm:"type:text" json:"referencia_direccion"`
	Notes            string `gorm:"type:text" json:"notas_pedido"`

	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_pedido"`
	Status        OrderStatus     `gorm:"type:varchar(50);not null;default:'pendiente_pago';index" json:"estado_pedido"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(50);not null;default:'transferencia'" json:"metodo_pago"`

	PaidAt         *time.Time `json:"fecha_pago"`
	ShippedAt      *time.Time `json:"fecha_envio"`
	DeliveredAt    *time.Time `json:"fecha_entrega"`
	TrackingNumber string     `gorm:"type:varchar(100)" json:"numero_seguimiento"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"fecha_pedido"`

	Lines []OrderLine `gorm:"foreignKey:OrderID" json:"detalles,omitempty"`
}

func (o Order) IsGuest() bool {
	return o.CustomerID == nil
}

// Cancellation is only allowed before preparation starts.
func (o Order) CanCancel() bool {
	return o.Status == OrderStatusPendingPayment || o.Status == OrderStatusPaid
}

// SoldStatuses are the states that count as realized sales in aggregates.
func SoldStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPaid, OrderStatusPreparing, OrderStatusShipped, OrderStatusCompleted}
}
