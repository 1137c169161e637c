package services

import (
	"github.com/shopspring/decimal"

	"salesorder/internal/core/domain/model/customer"
	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"
)

const (
	// loyaltyPurchasesThreshold is the historical purchase total above which
	// the loyalty discount applies.
	loyaltyPurchasesThreshold = 1000
	// loyaltyDiscountPercent is granted to customers above the purchases threshold.
	loyaltyDiscountPercent = 10
	// bulkQuantityThreshold is the summed line quantity above which the bulk
	// discount applies.
	bulkQuantityThreshold = 10
	// bulkDiscountPercent is granted to orders above the quantity threshold.
	bulkDiscountPercent = 5
)

// PricingService calculates the discount an order is entitled to.
type PricingService interface {
	// CalculateDiscount returns the discount for the order in the order's
	// currency. Discounts are additive and uncapped; neither the order nor
	// the customer is mutated.
	CalculateDiscount(ord *order.Order, cust *customer.Customer) (kernel.Money, error)
}

// DiscountPricingService is the standard PricingService. It grants a
// loyalty discount based on purchase history and a bulk discount based on
// the order's total line quantity.
type DiscountPricingService struct{}

// NewDiscountPricingService creates a new DiscountPricingService.
func NewDiscountPricingService() DiscountPricingService {
	return DiscountPricingService{}
}

// CalculateDiscount implements PricingService.
func (s DiscountPricingService) CalculateDiscount(
	ord *order.Order,
	cust *customer.Customer,
) (kernel.Money, error) {
	if err := ord.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := cust.Validate(); err != nil {
		return kernel.Money{}, err
	}

	discount, err := kernel.NewMoneyZero(ord.TotalAmount().Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	// Each discount is computed on the order total on its own, so each
	// amount rounds before they are summed.
	if cust.TotalPurchases().Amount().GreaterThan(decimal.NewFromInt(loyaltyPurchasesThreshold)) {
		loyalty, err := ord.TotalAmount().Percentage(decimal.NewFromInt(loyaltyDiscountPercent))
		if err != nil {
			return kernel.Money{}, err
		}
		discount, err = discount.Add(loyalty)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	if totalQuantity(ord) > bulkQuantityThreshold {
		bulk, err := ord.TotalAmount().Percentage(decimal.NewFromInt(bulkDiscountPercent))
		if err != nil {
			return kernel.Money{}, err
		}
		discount, err = discount.Add(bulk)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return discount, nil
}

// totalQuantity sums the quantities across all order lines.
func totalQuantity(ord *order.Order) int {
	total := 0
	for _, line := range ord.Lines() {
		total += line.Quantity().Value()
	}
	return total
}
