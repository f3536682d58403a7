package repository

import "context"

// TxRepos are the repositories available inside a transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderLines() OrderLineRepository
	Products() ProductRepository
	Offers() OfferRepository
	Inventory() InventoryRepository
}

// TransactionManager hides begin/commit/rollback from usecases. An error
// from fn rolls back everything.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
