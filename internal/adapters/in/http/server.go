package http

import (
	"errors"
	"net/http"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/application/usecases/queries"
	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderLineHandler    commands.AddOrderLineCommandHandler
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler
	submitOrderHandler     commands.SubmitOrderCommandHandler
	markOrderPaidHandler   commands.MarkOrderPaidCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addOrderLineHandler:      addOrderLineHandler,
		removeOrderLineHandler:   removeOrderLineHandler,
		submitOrderHandler:       submitOrderHandler,
		markOrderPaidHandler:     markOrderPaidHandler,
		shipOrderHandler:         shipOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes binds the order lifecycle routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetCustomerOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/lines", s.AddOrderLine)
	v1.DELETE("/orders/:id/lines/:productId", s.RemoveOrderLine)
	v1.POST("/orders/:id/submit", s.SubmitOrder)
	v1.POST("/orders/:id/pay", s.MarkOrderPaid)
	v1.POST("/orders/:id/ship", s.ShipOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(req.CustomerEmail)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	address, err := kernel.NewAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.PostCode,
		req.ShippingAddress.Country,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewCreateOrderCommand(email, address)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return applicationError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AddOrderLine handles POST /api/v1/orders/:id/lines - adds a line to a draft order.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req AddOrderLineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.ProductIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	currency, err := kernel.CurrencyFromString(req.Currency)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	amount, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit price")
	}
	unitPrice, err := kernel.NewMoney(amount, currency)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewAddOrderLineCommand(orderID, productID, req.ProductName, quantity, unitPrice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.addOrderLineHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderLine handles DELETE /api/v1/orders/:id/lines/:productId.
func (s *Server) RemoveOrderLine(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	productID, err := kernel.ProductIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewRemoveOrderLineCommand(orderID, productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.removeOrderLineHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/orders/:id/submit.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewSubmitOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.submitOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/orders/:id/pay.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req MarkOrderPaidRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewMarkOrderPaidCommand(orderID, req.PaymentReference)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markOrderPaidHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ShipOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewShipOrderCommand(orderID, req.TrackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return applicationError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return applicationError(ctx, err)
	}

	lines := make([]OrderLineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = OrderLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			LineTotal:   line.LineTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:            result.ID.String(),
		CustomerEmail: result.CustomerEmail,
		ShippingAddress: AddressRequest{
			Street:   result.Street,
			City:     result.City,
			PostCode: result.PostCode,
			Country:  result.Country,
		},
		Status:      result.Status,
		Currency:    result.Currency,
		TotalAmount: result.TotalAmount.String(),
		Lines:       lines,
	})
}

// GetCustomerOrders handles GET /api/v1/orders?email=... - lists a customer's orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.QueryParam("email"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(email)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	results, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return applicationError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(results))
	for i, result := range results {
		response[i] = OrderSummaryResponse{
			ID:          result.ID.String(),
			Status:      result.Status,
			Currency:    result.Currency,
			TotalAmount: result.TotalAmount.String(),
			LineCount:   result.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func applicationError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDomainRule):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
