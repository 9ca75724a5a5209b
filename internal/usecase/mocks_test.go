package usecase_test

import (
	"context"
	"strings"
	"testing"

	"advse-backend/internal/domain/aggregate"
	"advse-backend/internal/domain/model"
	"advse-backend/internal/infra/events"
	repo "advse-backend/internal/repository"
	"advse-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) ListRows(ctx context.Context, q repo.ItemListQuery) ([]aggregate.Row, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]aggregate.Row)
	return rows, args.Error(1)
}

func (m *ItemRepoMock) DetailRows(ctx context.Context, itemID int64) ([]aggregate.Row, error) {
	args := m.Called(ctx, itemID)
	rows, _ := args.Get(0).([]aggregate.Row)
	return rows, args.Error(1)
}

func (m *ItemRepoMock) Exists(ctx context.Context, itemID int64) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *ItemRepoMock) ListVariants(ctx context.Context, itemID int64) ([]model.ItemVariant, error) {
	args := m.Called(ctx, itemID)
	list, _ := args.Get(0).([]model.ItemVariant)
	return list, args.Error(1)
}

func (m *ItemRepoMock) FindVariant(ctx context.Context, itemID int64, size int64) (model.ItemVariant, error) {
	args := m.Called(ctx, itemID, size)
	v, _ := args.Get(0).(model.ItemVariant)
	return v, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, itemID int64, size int64, qty int64) (bool, error) {
	args := m.Called(ctx, itemID, size, qty)
	return args.Bool(0), args.Error(1)
}

type BrandRepoMock struct{ mock.Mock }

func (m *BrandRepoMock) List(ctx context.Context) ([]model.ItemBrand, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.ItemBrand)
	return list, args.Error(1)
}

func (m *BrandRepoMock) FindByID(ctx context.Context, brandID int64) (model.ItemBrand, error) {
	args := m.Called(ctx, brandID)
	b, _ := args.Get(0).(model.ItemBrand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) Create(ctx context.Context, brand model.ItemBrand) (model.ItemBrand, error) {
	args := m.Called(ctx, brand)
	b, _ := args.Get(0).(model.ItemBrand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) Update(ctx context.Context, brand model.ItemBrand) (int64, error) {
	args := m.Called(ctx, brand)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BrandRepoMock) Delete(ctx context.Context, brandID int64) (int64, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]repo.OrderSummary, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]repo.OrderSummary)
	return list, args.Error(1)
}

func (m *OrderRepoMock) DetailRows(ctx context.Context, orderID int64) ([]aggregate.Row, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]aggregate.Row)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) Exists(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	list, _ := args.Get(0).([]model.OrderItem)
	return list, args.Error(1)
}

func (m *OrderItemRepoMock) FindByOrderAndItem(ctx context.Context, orderID int64, itemID int64) (model.OrderItem, error) {
	args := m.Called(ctx, orderID, itemID)
	it, _ := args.Get(0).(model.OrderItem)
	return it, args.Error(1)
}

type OrderAddressRepoMock struct{ mock.Mock }

func (m *OrderAddressRepoMock) CreateInvoice(ctx context.Context, a model.OrderAddress) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *OrderAddressRepoMock) CreateShipping(ctx context.Context, a model.OrderAddress) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *OrderAddressRepoMock) FindInvoice(ctx context.Context, orderID int64) (model.OrderAddress, error) {
	args := m.Called(ctx, orderID)
	a, _ := args.Get(0).(model.OrderAddress)
	return a, args.Error(1)
}

func (m *OrderAddressRepoMock) FindShipping(ctx context.Context, orderID int64) (model.OrderAddress, error) {
	args := m.Called(ctx, orderID)
	a, _ := args.Get(0).(model.OrderAddress)
	return a, args.Error(1)
}

type UserStoreMock struct{ mock.Mock }

func (m *UserStoreMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.User)
	return list, args.Error(1)
}

func (m *UserStoreMock) FindByID(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserStoreMock) Create(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStoreMock) Update(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStoreMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserStoreMock) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *UserStoreMock) Reset(ctx context.Context, users []model.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	addresses  repo.OrderAddressRepository
	items      repo.ItemRepository
	inventory  repo.InventoryRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository                { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository        { return r.orderItems }
func (r *TxReposMock) OrderAddresses() repo.OrderAddressRepository { return r.addresses }
func (r *TxReposMock) Items() repo.ItemRepository                  { return r.items }
func (r *TxReposMock) Inventory() repo.InventoryRepository         { return r.inventory }

type ValidatorMock struct{ mock.Mock }

func (m *ValidatorMock) ValidatePlaceOrder(ctx context.Context, in usecase.PlaceOrderInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishOrderPlaced(ctx context.Context, ev events.OrderPlaced) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *PublisherMock) Close() error {
	panic("not used in usecase tests")
}

// =====================
// helpers
// =====================

func requireStatus(t *testing.T, err error, status int) *usecase.HTTPError {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "err=%v is not HTTPError", err)
	require.Equal(t, status, he.Status, "err=%v", err)
	return he
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
