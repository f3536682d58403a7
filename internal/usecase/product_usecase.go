package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tienda/internal/domain/model"
	"tienda/internal/pricing"
	repo "tienda/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	offerRepo    repo.OfferRepository
	now          func() time.Time
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	offerRepo repo.OfferRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		offerRepo:    offerRepo,
		now:          time.Now,
	}
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
}

// PricedProduct is the public view of a product with the offer already
// applied. PriceFinal equals the base price when no offer is active.
type PricedProduct struct {
	model.Product
	PriceFinal      decimal.Decimal  `json:"precio_final"`
	HasOffer        bool             `json:"tiene_oferta"`
	DiscountPercent *decimal.Decimal `json:"descuento_porcentaje,omitempty"`
	Savings         *decimal.Decimal `json:"ahorro,omitempty"`
}

type ProductListOutput struct {
	Items []PricedProduct `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        strings.TrimSpace(in.Q),
		Category: strings.TrimSpace(in.Category),
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	priced, err := u.priceMany(ctx, items)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: priced,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (PricedProduct, error) {
	if productID <= 0 {
		return PricedProduct{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return PricedProduct{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}
	if err != nil {
		return PricedProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return PricedProduct{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}

	offers, err := u.offerRepo.ListActiveByProduct(ctx, productID, u.now())
	if err != nil {
		return PricedProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return priceOne(p, offers, u.now()), nil
}

func (u *ProductUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}

func (u *ProductUsecase) priceMany(ctx context.Context, items []model.Product) ([]PricedProduct, error) {
	now := u.now()
	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}

	offersByProduct := map[int64][]model.Offer{}
	if len(ids) > 0 {
		var err error
		offersByProduct, err = u.offerRepo.ListActiveByProducts(ctx, ids, now)
		if err != nil {
			return nil, err
		}
	}

	out := make([]PricedProduct, 0, len(items))
	for _, p := range items {
		out = append(out, priceOne(p, offersByProduct[p.ID], now))
	}
	return out, nil
}

func priceOne(p model.Product, offers []model.Offer, now time.Time) PricedProduct {
	pp := PricedProduct{
		Product:    p,
		PriceFinal: p.Price,
	}
	if best := pricing.BestOffer(offers, now); best != nil {
		pp.PriceFinal = best.OfferPrice
		pp.HasOffer = true
		pct := best.DiscountPercent(p.Price)
		savings := p.Price.Sub(best.OfferPrice)
		pp.DiscountPercent = &pct
		pp.Savings = &savings
	}
	return pp
}

type AdminProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Unit        string
	Stock       int64
	CategoryID  int64
	Image       string
	IsActive    bool
}

func (u *ProductUsecase) validateProductInput(ctx context.Context, in AdminProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "el nombre es obligatorio")
	}
	if len(strings.TrimSpace(in.Name)) > 100 {
		return NewHTTPError(http.StatusBadRequest, "nombre demasiado largo")
	}
	if !in.Price.IsPositive() {
		return NewHTTPError(http.StatusBadRequest, "el precio debe ser mayor que cero")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "el stock no puede ser negativo")
	}
	if in.Unit != "" && !model.ValidUnit(model.Unit(in.Unit)) {
		return NewHTTPError(http.StatusBadRequest, "unidad de medida inválida")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "categoría inválida")
	}
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "la categoría no existe")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := u.validateProductInput(ctx, in); err != nil {
		return model.Product{}, err
	}

	unit := model.Unit(in.Unit)
	if in.Unit == "" {
		unit = model.UnitUnidad
	}
	image := in.Image
	if image == "" {
		image = "default.jpg"
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Unit:        unit,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Image:       image,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID int64, in AdminProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := u.validateProductInput(ctx, in); err != nil {
		return err
	}

	unit := model.Unit(in.Unit)
	if in.Unit == "" {
		unit = model.UnitUnidad
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Unit:        unit,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Image:       in.Image,
		IsActive:    in.IsActive,
		UpdatedAt:   u.now(),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminSetProductsActive toggles visibility in bulk; deactivation is the
// soft-delete of the catalog, order lines keep their snapshots.
func (u *ProductUsecase) AdminSetProductsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "ids required")
	}
	affected, err := u.productRepo.SetActive(ctx, ids, active)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return affected, nil
}
