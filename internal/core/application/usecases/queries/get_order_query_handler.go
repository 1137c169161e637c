package queries

import (
	"context"
	"database/sql"
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"
	"salesorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its lines from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			address_street,
			address_city,
			address_post_code,
			address_country,
			status,
			currency,
			total_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID().UUID()).Row()

	var id uuid.UUID
	var status int
	err := row.Scan(
		&id,
		&response.CustomerEmail,
		&response.Street,
		&response.City,
		&response.PostCode,
		&response.Country,
		&status,
		&response.Currency,
		&response.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.OrderIDFrom(id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID
	response.Status = order.Status(status).String()

	lines, err := h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

// readLines loads the line read models for one order.
func (h GetOrderQueryHandler) readLines(
	ctx context.Context,
	orderID kernel.OrderID,
) ([]GetOrderQueryLineResponse, error) {
	lines := make([]GetOrderQueryLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID.UUID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLineResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		pID, idErr := kernel.ProductIDFrom(productID)
		if idErr != nil {
			return nil, idErr
		}
		line.ProductID = pID
		line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
