package kernel

import (
	"fmt"

	"salesorder/internal/pkg/errs"
)

// Currency identifies one of the monetary units the system supports.
// The set is closed: GBP, USD and EUR. The zero value (CurrencyUnknown)
// is invalid and rejected by Validate.
type Currency int

const (
	// CurrencyUnknown represents an invalid or undefined currency.
	// This value (0) helps catch uninitialized Currency values.
	CurrencyUnknown Currency = iota

	// CurrencyGBP is pound sterling.
	CurrencyGBP

	// CurrencyUSD is the United States dollar.
	CurrencyUSD

	// CurrencyEUR is the euro.
	CurrencyEUR
)

// getValidCurrencies returns the closed set of valid currencies with their codes.
func getValidCurrencies() map[Currency]string {
	return map[Currency]string{
		CurrencyGBP: "GBP",
		CurrencyUSD: "USD",
		CurrencyEUR: "EUR",
	}
}

// CurrencyFromString parses an ISO currency code into a Currency.
// Returns an error for codes outside the supported set.
func CurrencyFromString(code string) (Currency, error) {
	for currency, c := range getValidCurrencies() {
		if c == code {
			return currency, nil
		}
	}
	return CurrencyUnknown, errs.NewDomainRuleError(fmt.Sprintf("unsupported currency %q", code))
}

// Validate checks that the Currency belongs to the supported set.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencies()[c]; !ok {
		return errs.NewValueIsRequiredErrorWithCause("currency",
			fmt.Errorf("%d is not a valid currency", c))
	}
	return nil
}

// String returns the ISO code of the currency, or "Unknown" for invalid values.
func (c Currency) String() string {
	if code, ok := getValidCurrencies()[c]; ok {
		return code
	}
	return "Unknown"
}

// Symbol returns the display symbol for the currency. The mapping is total
// over the closed currency set; an invalid value falls back to the ISO code.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyGBP:
		return "£"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	default:
		return c.String()
	}
}
