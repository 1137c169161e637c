package commands_test

import (
	"testing"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/order"
	"salesorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedSubmittedOrder(t)
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), "PAY-42")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectMutationSuccess(ctx, uow, repo, aggregate)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.StatusPaid, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_NotSubmitted(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t) // still a draft
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), "PAY-42")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDomainRule)
	require.ErrorContains(t, err, "only submitted orders can be marked as paid")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_EmptyReference(t *testing.T) {
	ctx := t.Context()
	aggregate := storedSubmittedOrder(t)
	cmd, err := commands.NewMarkOrderPaidCommand(aggregate.ID(), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorContains(t, err, "payment reference is required")
	require.Equal(t, order.StatusSubmitted, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
