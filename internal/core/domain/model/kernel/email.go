package kernel

import (
	"strings"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// ErrEmailIsNotConstructed indicates that an Email was not created through
// NewEmail. Returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

const emailMaxLength = 255

// Email is a value object representing a validated contact email address.
// The value is stored normalized: trimmed of surrounding whitespace and
// lower-cased. There is no implicit conversion back to a raw string;
// callers use the explicit Value accessor.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from a raw string. The input must be non-empty,
// contain both '@' and '.', and not exceed 255 characters.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, errs.NewDomainRuleError("email cannot be empty")
	}
	if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
		return Email{}, errs.NewDomainRuleError("invalid email format")
	}
	if len(value) > emailMaxLength {
		return Email{}, errs.NewDomainRuleError("email too long")
	}

	return Email{
		value: strings.ToLower(strings.TrimSpace(value)),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Email was created through NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Value returns the normalized email string.
func (e Email) Value() string {
	return e.value
}

// IsEqual reports structural equality on the normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// String returns the normalized email string.
func (e Email) String() string {
	return e.value
}
