package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tienda/internal/domain/model"
	"tienda/internal/usecase"
)

func TestCategoryCreateRejectsDuplicateNameIgnoringCase(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categories, products)

	categories.On("FindByNameFold", mock.Anything, "Lácteos").
		Return(model.Category{ID: 3, Name: "lácteos"}, nil)

	_, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "Lácteos"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCategoryUpdateAllowsKeepingOwnName(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categories, products)

	categories.On("FindByNameFold", mock.Anything, "Lácteos").
		Return(model.Category{ID: 3, Name: "Lácteos"}, nil)
	categories.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := uc.Update(context.Background(), 3, usecase.CategoryInput{Name: "Lácteos", IsActive: true})
	assert.NoError(t, err)
}

func TestCategoryDeleteBlockedWhileProductsRemain(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categories, products)

	products.On("CountByCategory", mock.Anything, int64(3)).Return(int64(4), nil)

	err := uc.Delete(context.Background(), 3)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryDeleteSucceedsWhenEmpty(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categories, products)

	products.On("CountByCategory", mock.Anything, int64(3)).Return(int64(0), nil)
	categories.On("Delete", mock.Anything, int64(3)).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), 3))
}
