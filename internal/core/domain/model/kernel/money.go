package kernel

import (
	"errors"
	"fmt"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// NewMoney or NewMoneyZero. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyZero constructors")

// Money is a value object representing an exact monetary amount bound to one
// currency. Amounts are never negative and are stored rounded to two decimal
// places using banker's rounding (round half to even), so a Money value never
// carries hidden sub-penny precision.
//
// Arithmetic never silently crosses currencies: every binary operation fails
// with a domain rule violation when the operands' currencies differ.
//
// Money is immutable; all operations return a new value.
// The zero value of Money is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromFloat(19.99), kernel.CurrencyGBP)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: Price: £19.99
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount and a currency.
// The amount must not be negative and is rounded half-to-even to two decimals.
//
// Parameters:
//   - amount: The monetary amount (must not be negative)
//   - currency: The currency the amount is denominated in (must be a valid Currency)
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or the currency is invalid
//
// Example:
//
//	total, err := NewMoney(decimal.RequireFromString("75.00"), CurrencyGBP)
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
//	// total is now ready to use
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, errs.NewDomainRuleError("money amount cannot be negative")
	}

	return Money{
		amount:   amount.RoundBank(2),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyZero creates a zero amount in the given currency.
func NewMoneyZero(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the exact decimal amount, rounded to two decimal places.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is bound to.
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual reports structural equality on (amount, currency).
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Add returns the sum of two Money values.
// Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two Money values.
// Fails when the currencies differ or when other exceeds the receiver.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	if other.amount.GreaterThan(m.amount) {
		return Money{}, errs.NewDomainRuleError("insufficient funds")
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns the amount multiplied by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := errors.Join(m.Validate(), m.currency.Validate()); err != nil {
		return Money{}, err
	}
	if factor.IsNegative() {
		return Money{}, errs.NewDomainRuleError("factor cannot be negative")
	}
	return NewMoney(m.amount.Mul(factor), m.currency)
}

// MultiplyInt returns the amount multiplied by a non-negative integer factor.
func (m Money) MultiplyInt(factor int) (Money, error) {
	return m.Multiply(decimal.NewFromInt(int64(factor)))
}

// Divide returns the amount divided by a strictly positive divisor.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, errs.NewDomainRuleError("cannot divide by zero")
	}
	if divisor.IsNegative() {
		return Money{}, errs.NewDomainRuleError("divisor cannot be negative")
	}
	return NewMoney(m.amount.Div(divisor), m.currency)
}

// Percentage returns percent/100 of the amount in the same currency.
// No lower bound is enforced on the result.
func (m Money) Percentage(percent decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Mul(percent).Div(decimal.NewFromInt(100)), m.currency)
}

// GreaterThanOrEqual reports whether the receiver is at least other.
// Fails when the currencies differ.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThanOrEqual(other.amount), nil
}

// String renders the amount with its currency symbol and two decimals, e.g. "£75.00".
func (m Money) String() string {
	return m.currency.Symbol() + m.amount.StringFixed(2)
}

func (m Money) ensureSameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return errs.NewDomainRuleError(
			fmt.Sprintf("cannot combine %s with %s", m.currency, other.currency))
	}
	return nil
}
