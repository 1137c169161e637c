package kernel

import (
	"errors"
	"fmt"
	"strings"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates that an Address was not created through
// NewAddress. Returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a value object representing a normalized postal address.
// All four components are required and stored trimmed; the post code is
// additionally upper-cased. Equality is structural over all fields.
type Address struct { //nolint:recvcheck //using for validation
	street   string
	city     string
	postCode string
	country  string
	guard    guard.ConstructorGuard
}

// NewAddress creates an Address from its four components.
// Every component must be non-empty after trimming.
func NewAddress(street, city, postCode, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setPostCode(postCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the trimmed street component.
func (a Address) Street() string {
	return a.street
}

// City returns the trimmed city component.
func (a Address) City() string {
	return a.city
}

// PostCode returns the trimmed, upper-cased post code.
func (a Address) PostCode() string {
	return a.postCode
}

// Country returns the trimmed country component.
func (a Address) Country() string {
	return a.country
}

// IsEqual reports structural equality over all four components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postCode == other.postCode &&
		a.country == other.country
}

// String renders the address as a single comma-separated line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.street, a.city, a.postCode, a.country)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewDomainRuleError("street is required")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewDomainRuleError("city is required")
	}
	a.city = city
	return nil
}

func (a *Address) setPostCode(postCode string) error {
	postCode = strings.TrimSpace(postCode)
	if postCode == "" {
		return errs.NewDomainRuleError("post code is required")
	}
	a.postCode = strings.ToUpper(postCode)
	return nil
}

func (a *Address) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewDomainRuleError("country is required")
	}
	a.country = country
	return nil
}
