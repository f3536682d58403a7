package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListActive(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByNameFold(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OfferRepoMock struct{ mock.Mock }

func (m *OfferRepoMock) ListActiveByProduct(ctx context.Context, productID int64, now time.Time) ([]model.Offer, error) {
	args := m.Called(ctx, productID, now)
	offers, _ := args.Get(0).([]model.Offer)
	return offers, args.Error(1)
}

func (m *OfferRepoMock) ListActiveByProducts(ctx context.Context, productIDs []int64, now time.Time) (map[int64][]model.Offer, error) {
	args := m.Called(ctx, productIDs, now)
	offers, _ := args.Get(0).(map[int64][]model.Offer)
	return offers, args.Error(1)
}

func (m *OfferRepoMock) ListByProduct(ctx context.Context, productID int64) ([]model.Offer, error) {
	args := m.Called(ctx, productID)
	offers, _ := args.Get(0).([]model.Offer)
	return offers, args.Error(1)
}

func (m *OfferRepoMock) Create(ctx context.Context, o model.Offer) (model.Offer, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Offer)
	return created, args.Error(1)
}

func (m *OfferRepoMock) SetActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	args := m.Called(ctx, ids, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OfferRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomer(ctx context.Context, customerID int64, page, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, customerID, page, limit)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) ApplyTransition(ctx context.Context, t repo.StatusTransition, now time.Time) (int64, error) {
	args := m.Called(ctx, t, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	args := m.Called(ctx, cutoff)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

type OrderLineRepoMock struct{ mock.Mock }

func (m *OrderLineRepoMock) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *OrderLineRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	args := m.Called(ctx, orderID)
	lines, _ := args.Get(0).([]model.OrderLine)
	return lines, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *CustomerRepoMock) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func repoErrNotFound() error { return repo.ErrNotFound }

// txReposStub hands the shared mocks to the transactional closure.
type txReposStub struct {
	orders     *OrderRepoMock
	orderLines *OrderLineRepoMock
	products   *ProductRepoMock
	offers     *OfferRepoMock
	inventory  *InventoryRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderLines() repo.OrderLineRepository { return s.orderLines }
func (s *txReposStub) Products() repo.ProductRepository     { return s.products }
func (s *txReposStub) Offers() repo.OfferRepository         { return s.offers }
func (s *txReposStub) Inventory() repo.InventoryRepository  { return s.inventory }

// txManagerStub runs the closure directly; "rollback" is observable through
// RolledBack when the closure errors.
type txManagerStub struct {
	repos      *txReposStub
	RolledBack bool
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := fn(m.repos); err != nil {
		m.RolledBack = true
		return err
	}
	return nil
}
