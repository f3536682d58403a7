package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict marks unique-constraint violations (duplicate category
	// name, duplicate customer email).
	ErrConflict = errors.New("conflict")
)

// Category and name filters are case-insensitive substring matches.
type ProductListQuery struct {
	Category string
	Q        string
	Page     int
	Limit    int
}

type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SetActive(ctx context.Context, ids []int64, active bool) (int64, error)

	// CountByCategory backs the deletion guard on categories.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}
