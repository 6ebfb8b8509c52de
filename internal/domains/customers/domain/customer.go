package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrInvalidEmail      = errors.New("email must contain '@'")
)

// Address is the optional postal address attached to a customer.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Customer owns exactly one shopping cart for its whole lifetime. The cart
// is created here, at construction; there is no cart-less customer and no
// way to swap the cart for another one.
type Customer struct {
	ID      int64
	Name    string
	Email   string
	Address *Address
	Cart    *Cart
}

// NewCustomer validates identity fields and builds the customer with its cart.
func NewCustomer(id int64, name, email string) (*Customer, error) {
	customer := &Customer{ID: id, Cart: NewCart()}
	if err := customer.Rename(name); err != nil {
		return nil, err
	}
	if err := customer.SetEmail(email); err != nil {
		return nil, err
	}
	return customer, nil
}

// Rename trims and validates the customer name.
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCustomerName
	}
	c.Name = name
	return nil
}

// SetEmail applies a minimal shape check on the email address.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// SetAddress replaces the postal address with a copy, nil clears it.
func (c *Customer) SetAddress(address *Address) {
	if address == nil {
		c.Address = nil
		return
	}
	clone := *address
	c.Address = &clone
}

// Validate re-applies core invariants for persistence.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCustomerName
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if c.Cart == nil {
		return errors.New("customer cart is missing")
	}
	return nil
}
