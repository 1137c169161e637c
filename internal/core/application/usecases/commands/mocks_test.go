package commands_test

import (
	"context"
	"testing"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"
	"salesorder/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomerEmail(ctx context.Context, email kernel.Email) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func testEmail(t *testing.T) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("buyer@example.com")
	require.NoError(t, err)
	return email
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("1 High Street", "London", "SW1A 1AA", "UK")
	require.NoError(t, err)
	return address
}

func gbp(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), kernel.CurrencyGBP)
	require.NoError(t, err)
	return m
}

func qty(t *testing.T, n int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(n)
	require.NoError(t, err)
	return q
}

// storedOrder builds a draft order with one line, as a repository would return it.
func storedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(testEmail(t), testAddress(t))
	require.NoError(t, err)
	require.NoError(t, o.AddLine(kernel.NewProductID(), "Widget", qty(t, 2), gbp(t, "25.00")))
	o.ClearDomainEvents()
	return o
}

// storedSubmittedOrder walks a stored order to Submitted status.
func storedSubmittedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := storedOrder(t)
	require.NoError(t, o.Submit())
	o.ClearDomainEvents()
	return o
}

// storedPaidOrder walks a stored order to Paid status.
func storedPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o := storedSubmittedOrder(t)
	require.NoError(t, o.MarkAsPaid("PAY-1"))
	o.ClearDomainEvents()
	return o
}

// expectMutationSuccess wires the happy-path Begin/Get/Update/Commit sequence.
func expectMutationSuccess(
	ctx context.Context,
	uow *MockOrderUoW,
	repo *MockOrderRepository,
	aggregate *order.Order,
) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}
