package usecase

import (
	"context"
	"net/http"
	"strings"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

type CategoryInput struct {
	Name        string
	Description string
	IsActive    bool
}

func (u *CategoryUsecase) validateName(ctx context.Context, name string, selfID int64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "el nombre es obligatorio")
	}
	if len(name) > 100 {
		return NewHTTPError(http.StatusBadRequest, "nombre demasiado largo")
	}

	// Duplicate check ignores case: "Lácteos" and "lácteos" are one category.
	existing, err := u.categoryRepo.FindByNameFold(ctx, name)
	if err == nil && existing.ID != selfID {
		return NewHTTPError(http.StatusBadRequest, "ya existe una categoría con ese nombre")
	}
	if err != nil && err != repo.ErrNotFound {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryInput) (model.Category, error) {
	if err := u.validateName(ctx, in.Name, 0); err != nil {
		return model.Category{}, err
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err == repo.ErrConflict {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "ya existe una categoría con ese nombre")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	if err := u.validateName(ctx, in.Name, id); err != nil {
		return err
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "categoría no encontrada")
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusBadRequest, "ya existe una categoría con ese nombre")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Delete refuses while products still reference the category; them being
// inactive does not matter, the row is still a parent.
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	count, err := u.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusBadRequest, "la categoría tiene productos asociados")
	}

	err = u.categoryRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "categoría no encontrada")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
