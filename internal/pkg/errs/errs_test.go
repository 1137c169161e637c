package errs_test

import (
	"errors"
	"testing"

	"salesorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainRuleError(t *testing.T) {
	t.Run("NewDomainRuleError", func(t *testing.T) {
		err := errs.NewDomainRuleError("cannot submit an empty order")

		assert.Equal(t, "cannot submit an empty order", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "domain rule violation: cannot submit an empty order", err.Error())
		assert.Equal(t, errs.ErrDomainRule, err.Unwrap())
	})

	t.Run("NewDomainRuleErrorWithCause", func(t *testing.T) {
		cause := errors.New("total is 0.50")
		err := errs.NewDomainRuleErrorWithCause("order total must be at least 1", cause)

		assert.Equal(t, "order total must be at least 1", err.Message)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"domain rule violation: order total must be at least 1 (cause: total is 0.50)",
			err.Error())
		assert.Equal(t, errs.ErrDomainRule, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewDomainRuleError("first line\nsecond line")
		assert.Contains(t, err.Error(), "first line second line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerEmail")

		assert.Equal(t, "customerEmail", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerEmail", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("shippingAddress", cause)

		assert.Equal(t, "shippingAddress", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: shippingAddress (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrDomainRule)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrObjectNotFound)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "domain rule violation", errs.ErrDomainRule.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		domainRuleErr := errs.NewDomainRuleError("cannot cancel a shipped order")
		require.ErrorIs(t, domainRuleErr, errs.ErrDomainRule)

		valueRequiredErr := errs.NewValueIsRequiredError("quantity")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)
	})
}
