package repository

import (
	"context"

	"tienda/internal/domain/model"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)

	// FindByNameFold matches the name ignoring case, for duplicate checks.
	FindByNameFold(ctx context.Context, name string) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
}
