package kernel_test

import (
	"testing"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderID(t *testing.T) {
	t.Run("should generate valid random identifier", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil, id.UUID())
	})

	t.Run("should wrap an existing UUID", func(t *testing.T) {
		raw := uuid.New()

		id, err := kernel.OrderIDFrom(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.UUID())
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.OrderIDFrom(uuid.Nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should parse from string", func(t *testing.T) {
		raw := uuid.New()

		id, err := kernel.OrderIDFromString(raw.String())

		require.NoError(t, err)
		assert.Equal(t, raw.String(), id.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var id kernel.OrderID

		require.Error(t, id.Validate())
	})

	t.Run("should compare by value", func(t *testing.T) {
		raw := uuid.New()
		a, _ := kernel.OrderIDFrom(raw)
		b, _ := kernel.OrderIDFrom(raw)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(kernel.NewOrderID()))
	})
}

func TestOrderLineID(t *testing.T) {
	t.Run("should generate valid random identifier", func(t *testing.T) {
		id := kernel.NewOrderLineID()

		require.NoError(t, id.Validate())
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.OrderLineIDFrom(uuid.Nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProductID(t *testing.T) {
	t.Run("should generate valid random identifier", func(t *testing.T) {
		id := kernel.NewProductID()

		require.NoError(t, id.Validate())
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.ProductIDFrom(uuid.Nil)

		require.Error(t, err)
	})

	t.Run("should round-trip through string", func(t *testing.T) {
		id := kernel.NewProductID()

		parsed, err := kernel.ProductIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})
}

func TestCustomerID(t *testing.T) {
	t.Run("should generate valid random identifier", func(t *testing.T) {
		id := kernel.NewCustomerID()

		require.NoError(t, id.Validate())
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.CustomerIDFrom(uuid.Nil)

		require.Error(t, err)
	})
}
