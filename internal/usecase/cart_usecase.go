package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tienda/internal/domain/model"
	"tienda/internal/pricing"
	repo "tienda/internal/repository"
)

// The cart stores only product id -> quantity. Prices are resolved on every
// read, so a view after an offer expires already shows the base price.
type CartUsecase struct {
	cartStore   repo.CartStore
	productRepo repo.ProductRepository
	offerRepo   repo.OfferRepository
	now         func() time.Time
}

func NewCartUsecase(
	cartStore repo.CartStore,
	productRepo repo.ProductRepository,
	offerRepo repo.OfferRepository,
) *CartUsecase {
	return &CartUsecase{
		cartStore:   cartStore,
		productRepo: productRepo,
		offerRepo:   offerRepo,
		now:         time.Now,
	}
}

type CartLineView struct {
	ProductID int64           `json:"producto_id"`
	Name      string          `json:"nombre"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	HasOffer  bool            `json:"tiene_oferta"`
	Quantity  int64           `json:"cantidad"`
	Unit      model.Unit      `json:"unidad_medida"`
	Stock     int64           `json:"stock_disponible"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items     []CartLineView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int64           `json:"cantidad_items"`
}

// View prices the cart at the current instant. Lines whose product was
// deleted or deactivated since they were added are dropped silently, and the
// stored cart is compacted so they do not come back.
func (u *CartUsecase) View(ctx context.Context, identity string) (CartView, error) {
	cart, err := u.cartStore.Get(ctx, identity)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	view := CartView{Items: []CartLineView{}, Total: decimal.Zero}
	if cart.IsEmpty() {
		return view, nil
	}

	now := u.now()
	ids := make([]int64, 0, len(cart.Items))
	for id := range cart.Items {
		ids = append(ids, id)
	}
	offersByProduct, err := u.offerRepo.ListActiveByProducts(ctx, ids, now)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	kept := model.NewCart()
	for id, qty := range cart.Items {
		p, err := u.productRepo.FindByID(ctx, id)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !p.IsActive {
			continue
		}

		kept.Items[id] = qty
		unitPrice := pricing.EffectivePrice(p, offersByProduct[id], now)
		line := CartLineView{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: unitPrice,
			HasOffer:  unitPrice.LessThan(p.Price),
			Quantity:  qty,
			Unit:      p.Unit,
			Stock:     p.Stock,
			Subtotal:  unitPrice.Mul(decimal.NewFromInt(qty)),
		}
		view.Items = append(view.Items, line)
		view.Total = view.Total.Add(line.Subtotal)
		view.ItemCount += qty
	}

	if len(kept.Items) != len(cart.Items) {
		if err := u.cartStore.Put(ctx, identity, kept); err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
		}
	}
	return view, nil
}

// Add merges quantity into the existing line. The check caps the accumulated
// quantity at the current stock; checkout re-verifies inside the transaction.
func (u *CartUsecase) Add(ctx context.Context, identity string, productID, quantity int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "la cantidad debe ser al menos 1")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartView{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}

	cart, err := u.cartStore.Get(ctx, identity)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}

	wanted := cart.Items[productID] + quantity
	if wanted > p.Stock {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "stock insuficiente")
	}

	cart.Items[productID] = wanted
	if err := u.cartStore.Put(ctx, identity, cart); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	return u.View(ctx, identity)
}

// SetQuantity replaces the line quantity; anything below 1 removes the line.
func (u *CartUsecase) SetQuantity(ctx context.Context, identity string, productID, quantity int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return u.Remove(ctx, identity, productID)
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartView{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartView{}, NewHTTPError(http.StatusNotFound, "producto no encontrado")
	}
	if quantity > p.Stock {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "stock insuficiente")
	}

	cart, err := u.cartStore.Get(ctx, identity)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	cart.Items[productID] = quantity
	if err := u.cartStore.Put(ctx, identity, cart); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	return u.View(ctx, identity)
}

// Remove is idempotent: removing an absent line is not an error.
func (u *CartUsecase) Remove(ctx context.Context, identity string, productID int64) (CartView, error) {
	if productID <= 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := u.cartStore.Get(ctx, identity)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	delete(cart.Items, productID)
	if err := u.cartStore.Put(ctx, identity, cart); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	return u.View(ctx, identity)
}

func (u *CartUsecase) Clear(ctx context.Context, identity string) error {
	if err := u.cartStore.Delete(ctx, identity); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "cart error")
	}
	return nil
}
