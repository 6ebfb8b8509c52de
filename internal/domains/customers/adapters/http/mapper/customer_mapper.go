package mapper

import (
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/domain"
	"github.com/mohammedHatemm/go-shop-api/internal/domains/customers/ports"
)

// Address is the HTTP representation of a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Customer is the HTTP representation of a customer.
type Customer struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address *Address `json:"address,omitempty"`
}

// RegisterCustomer captures the inbound registration payload.
type RegisterCustomer struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address *Address `json:"address,omitempty"`
}

// CartItemRequest adds units of a product to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartLine is a priced cart line on the wire.
type CartLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Cart is the priced cart projection on the wire.
type Cart struct {
	CustomerID int64      `json:"customerId"`
	Items      []CartLine `json:"items"`
	ItemCount  int        `json:"itemCount"`
	Total      string     `json:"total"`
}

// ToRegisterInput converts the transport payload into the application input.
func ToRegisterInput(payload RegisterCustomer) ports.RegisterCustomerInput {
	return ports.RegisterCustomerInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Address: toDomainAddress(payload.Address),
	}
}

// ToDomainAddress maps an address payload, nil clearing the field.
func ToDomainAddress(payload *Address) *domain.Address {
	return toDomainAddress(payload)
}

func toDomainAddress(payload *Address) *domain.Address {
	if payload == nil {
		return nil
	}
	return &domain.Address{
		Street:  payload.Street,
		City:    payload.City,
		State:   payload.State,
		ZipCode: payload.ZipCode,
	}
}

// FromDomain maps the customer aggregate into its HTTP representation.
func FromDomain(customer *domain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	out := Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
	if customer.Address != nil {
		out.Address = &Address{
			Street:  customer.Address.Street,
			City:    customer.Address.City,
			State:   customer.Address.State,
			ZipCode: customer.Address.ZipCode,
		}
	}
	return out
}

// FromCartView maps the priced cart projection onto the wire format.
func FromCartView(view *ports.CartView) Cart {
	if view == nil {
		return Cart{}
	}
	out := Cart{
		CustomerID: view.CustomerID,
		Items:      make([]CartLine, 0, len(view.Lines)),
		ItemCount:  len(view.Lines),
		Total:      view.Total.StringFixed(2),
	}
	for _, line := range view.Lines {
		out.Items = append(out.Items, CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal.StringFixed(2),
		})
	}
	return out
}
