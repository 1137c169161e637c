// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table and are loaded alongside the order row.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerEmail string          `gorm:"type:varchar(255);not null;index"`
	Address       AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Status        int             `gorm:"type:int;not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(255);not null"`
	PostCode string `gorm:"type:varchar(32);not null"`
	Country  string `gorm:"type:varchar(64);not null"`
}

// OrderLineDTO represents the database structure for persisting order lines.
// Links to the owning order via foreign key.
type OrderLineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID()
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))

	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:          line.ID().UUID(),
			OrderID:     orderID,
			ProductID:   line.ProductID().UUID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity().Value(),
			UnitPrice:   line.UnitPrice().Amount(),
			Currency:    line.UnitPrice().Currency().String(),
		})
	}

	address := aggregate.ShippingAddress()
	return OrderDTO{
		ID:            orderID,
		CustomerEmail: aggregate.CustomerEmail().Value(),
		Address: AddressDTO{
			Street:   address.Street(),
			City:     address.City(),
			PostCode: address.PostCode(),
			Country:  address.Country(),
		},
		Status:      int(aggregate.Status()),
		Currency:    aggregate.TotalAmount().Currency().String(),
		TotalAmount: aggregate.TotalAmount().Amount(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.PostCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, email, address, order.Status(dto.Status), lines)
}

// lineToDomain converts an order line DTO to its domain entity.
func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	id, err := kernel.OrderLineIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.ProductIDFrom(dto.ProductID)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLine(id, productID, dto.ProductName, quantity, unitPrice)
}
