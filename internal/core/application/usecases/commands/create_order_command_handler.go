package commands

import (
	"context"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// New orders start in Draft status with an empty line collection and a zero total.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier of
// the new order. Uses a transaction to ensure the order is properly persisted
// or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(cmd.CustomerEmail(), cmd.ShippingAddress())
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	// Events are consumed in process, so a committed change clears them.
	aggregate.ClearDomainEvents()
	return aggregate.ID(), nil
}
