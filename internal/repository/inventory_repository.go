package repository

import "context"

type InventoryRepository interface {
	// DecreaseStockIfEnough subtracts qty only when the row still holds at
	// least qty units, in one conditional UPDATE. Returns false when stock
	// was insufficient.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// IncreaseStock restocks. Kept for a future restock-on-cancel policy;
	// the current cancel action intentionally does not call it.
	IncreaseStock(ctx context.Context, productID int64, qty int64) error

	SetStock(ctx context.Context, productID int64, newStock int64) error
}
