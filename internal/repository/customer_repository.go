package repository

import (
	"context"
	"time"

	"tienda/internal/domain/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	CountActive(ctx context.Context) (int64, error)
}
