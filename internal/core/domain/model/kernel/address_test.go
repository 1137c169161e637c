package kernel_test

import (
	"testing"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all valid components", func(t *testing.T) {
		a, err := kernel.NewAddress("10 Downing Street", "London", "sw1a 2aa", "United Kingdom")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "10 Downing Street", a.Street())
		assert.Equal(t, "London", a.City())
		assert.Equal(t, "SW1A 2AA", a.PostCode())
		assert.Equal(t, "United Kingdom", a.Country())
	})

	t.Run("should trim all components", func(t *testing.T) {
		a, err := kernel.NewAddress("  1 Main St ", " Leeds ", " LS1 1AA ", " UK ")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", a.Street())
		assert.Equal(t, "Leeds", a.City())
		assert.Equal(t, "LS1 1AA", a.PostCode())
		assert.Equal(t, "UK", a.Country())
	})

	t.Run("should fail on empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("  ", "London", "SW1A 2AA", "UK")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDomainRule)
		assert.Contains(t, err.Error(), "street is required")
	})

	t.Run("should fail on empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Main St", "", "SW1A 2AA", "UK")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "city is required")
	})

	t.Run("should fail on empty post code", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Main St", "London", "  ", "UK")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "post code is required")
	})

	t.Run("should fail on empty country", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Main St", "London", "SW1A 2AA", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "country is required")
	})

	t.Run("should collect all component errors", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street is required")
		assert.Contains(t, err.Error(), "city is required")
		assert.Contains(t, err.Error(), "post code is required")
		assert.Contains(t, err.Error(), "country is required")
	})

	t.Run("should fail validation for zero value address", func(t *testing.T) {
		var a kernel.Address

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("should be equal over all four components", func(t *testing.T) {
		a, _ := kernel.NewAddress("1 Main St", "London", "SW1A 2AA", "UK")
		b, _ := kernel.NewAddress("1 Main St", "London", "sw1a 2aa", "UK")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should differ on any component", func(t *testing.T) {
		a, _ := kernel.NewAddress("1 Main St", "London", "SW1A 2AA", "UK")
		b, _ := kernel.NewAddress("2 Main St", "London", "SW1A 2AA", "UK")

		assert.False(t, a.IsEqual(b))
	})
}

func TestAddress_String(t *testing.T) {
	t.Run("should render one comma separated line", func(t *testing.T) {
		a, _ := kernel.NewAddress("1 Main St", "London", "SW1A 2AA", "UK")

		assert.Equal(t, "1 Main St, London, SW1A 2AA, UK", a.String())
	})
}
