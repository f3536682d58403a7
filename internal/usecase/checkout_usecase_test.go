package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tienda/internal/domain/model"
	"tienda/internal/infra/cartstore"
	"tienda/internal/mailer"
	"tienda/internal/usecase"
	"tienda/internal/validator"
)

func validCheckoutInput() validator.CheckoutInput {
	return validator.CheckoutInput{
		CustomerName:  "María Pérez",
		CustomerEmail: "maria@example.com",
		CustomerPhone: "912345678",
		Address:       "Av. Siempre Viva 123",
		Region:        "Metropolitana",
		Comuna:        "Ñuñoa",
	}
}

type checkoutFixture struct {
	uc        *usecase.CheckoutUsecase
	store     *cartstore.Memory
	tx        *txManagerStub
	orders    *OrderRepoMock
	lines     *OrderLineRepoMock
	products  *ProductRepoMock
	offers    *OfferRepoMock
	inventory *InventoryRepoMock
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		store:     cartstore.NewMemory(time.Hour),
		orders:    new(OrderRepoMock),
		lines:     new(OrderLineRepoMock),
		products:  new(ProductRepoMock),
		offers:    new(OfferRepoMock),
		inventory: new(InventoryRepoMock),
	}
	f.tx = &txManagerStub{repos: &txReposStub{
		orders:     f.orders,
		orderLines: f.lines,
		products:   f.products,
		offers:     f.offers,
		inventory:  f.inventory,
	}}
	f.uc = usecase.NewCheckoutUsecase(f.tx, f.store, f.orders, mailer.NopMailer{})
	return f
}

func (f *checkoutFixture) putCart(t *testing.T, identity string, items map[int64]int64) {
	t.Helper()
	cart := model.NewCart()
	for id, qty := range items {
		cart.Items[id] = qty
	}
	assert.NoError(t, f.store.Put(context.Background(), identity, cart))
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	f := newCheckoutFixture()
	f.putCart(t, "guest:a", map[int64]int64{1: 2})

	f.offers.On("ListActiveByProducts", mock.Anything, []int64{1}, mock.Anything).Return(noOffers(), nil)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(activeProduct(1, 1500, 10), nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Status == model.OrderStatusPendingPayment &&
			o.Total.Equal(decimal.NewFromInt(3000)) &&
			o.CustomerPhone == "+56912345678"
	})).Return(int64(42), nil)
	f.lines.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(lines []model.OrderLine) bool {
		return len(lines) == 1 && lines[0].Quantity == 2 &&
			lines[0].UnitPrice.Equal(decimal.NewFromInt(1500))
	})).Return(nil)

	out, err := f.uc.Checkout(context.Background(), "guest:a", nil, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
	assert.Equal(t, string(model.OrderStatusPendingPayment), out.Status)

	cart, err := f.store.Get(context.Background(), "guest:a")
	assert.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutChargesOfferPrice(t *testing.T) {
	f := newCheckoutFixture()
	f.putCart(t, "guest:a", map[int64]int64{1: 1})

	now := time.Now()
	offer := model.Offer{
		ProductID:  1,
		OfferPrice: decimal.NewFromInt(990),
		StartsAt:   now.Add(-time.Hour),
		EndsAt:     now.Add(time.Hour),
		IsActive:   true,
	}
	f.offers.On("ListActiveByProducts", mock.Anything, []int64{1}, mock.Anything).
		Return(map[int64][]model.Offer{1: {offer}}, nil)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(activeProduct(1, 1500, 10), nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(true, nil)
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Total.Equal(decimal.NewFromInt(990))
	})).Return(int64(1), nil)
	f.lines.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)

	out, err := f.uc.Checkout(context.Background(), "guest:a", nil, validCheckoutInput())
	assert.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(990)))
}

func TestCheckoutAbortsWhenStockInsufficient(t *testing.T) {
	f := newCheckoutFixture()
	f.putCart(t, "guest:a", map[int64]int64{1: 1, 2: 3})

	f.offers.On("ListActiveByProducts", mock.Anything, []int64{1, 2}, mock.Anything).Return(noOffers(), nil)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(activeProduct(1, 1000, 10), nil)
	f.products.On("FindByID", mock.Anything, int64(2)).Return(activeProduct(2, 2000, 1), nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(true, nil)
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(3)).Return(false, nil)

	_, err := f.uc.Checkout(context.Background(), "guest:a", nil, validCheckoutInput())
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.True(t, f.tx.RolledBack)

	// No order was written and the cart survives for a retry.
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cart, err := f.store.Get(context.Background(), "guest:a")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCheckoutLastUnitGoesToFirstBuyer(t *testing.T) {
	f := newCheckoutFixture()
	f.putCart(t, "guest:a", map[int64]int64{1: 1})
	f.putCart(t, "guest:b", map[int64]int64{1: 1})

	f.offers.On("ListActiveByProducts", mock.Anything, []int64{1}, mock.Anything).Return(noOffers(), nil)
	f.products.On("FindByID", mock.Anything, int64(1)).Return(activeProduct(1, 1000, 1), nil)
	// The conditional decrement succeeds exactly once for the single unit.
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(true, nil).Once()
	f.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(1)).Return(false, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	f.lines.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil).Once()

	_, err := f.uc.Checkout(context.Background(), "guest:a", nil, validCheckoutInput())
	assert.NoError(t, err)

	_, err = f.uc.Checkout(context.Background(), "guest:b", nil, validCheckoutInput())
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	f.orders.AssertNumberOfCalls(t, "Create", 1)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.Checkout(context.Background(), "guest:a", nil, validCheckoutInput())
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCheckoutRejectsInvalidPhone(t *testing.T) {
	f := newCheckoutFixture()
	f.putCart(t, "guest:a", map[int64]int64{1: 1})

	in := validCheckoutInput()
	in.CustomerPhone = "12345"

	_, err := f.uc.Checkout(context.Background(), "guest:a", nil, in)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Contains(t, he.Message, "telefono_cliente")
}
