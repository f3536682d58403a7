package repository

import (
	"context"

	"tienda/internal/domain/model"
)

// CartStore is the ephemeral per-identity cart storage. Identities look like
// "user:<id>" or "guest:<uuid>"; an anonymous identity and an authenticated
// one never share a cart. Entries expire after the store's TTL.
type CartStore interface {
	// Get returns the stored cart, or an empty cart when none exists.
	Get(ctx context.Context, identity string) (model.Cart, error)
	Put(ctx context.Context, identity string, cart model.Cart) error
	Delete(ctx context.Context, identity string) error

	// PurgeExpired drops entries past their TTL and returns how many were
	// removed. Driven by the maintenance scheduler.
	PurgeExpired(ctx context.Context) (int, error)
}
