package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_AlwaysOwnsACart(t *testing.T) {
	customer, err := NewCustomer(0, "John Doe", "john@example.com")
	require.NoError(t, err)

	require.NotNil(t, customer.Cart)
	assert.True(t, customer.Cart.IsEmpty())
}

func TestNewCustomer_ValidatesIdentity(t *testing.T) {
	_, err := NewCustomer(0, "   ", "john@example.com")
	assert.ErrorIs(t, err, ErrEmptyCustomerName)

	_, err = NewCustomer(0, "John Doe", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSetAddress_StoresACopy(t *testing.T) {
	customer, err := NewCustomer(0, "Jane Smith", "jane@example.com")
	require.NoError(t, err)

	address := &Address{Street: "456 Oak Ave", City: "Los Angeles", State: "CA", ZipCode: "90001"}
	customer.SetAddress(address)
	address.City = "mutated"

	assert.Equal(t, "Los Angeles", customer.Address.City)

	customer.SetAddress(nil)
	assert.Nil(t, customer.Address)
}
