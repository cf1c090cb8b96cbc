package lemonsqueezy

import (
	"context"
	"errors"
	"net/url"
)

type createCustomerRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"attributes"`
		Relationships struct {
			Store relationship `json:"store"`
		} `json:"relationships"`
	} `json:"data"`
}

type relationship struct {
	Data relationshipData `json:"data"`
}

type relationshipData struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CreateCustomer registers a new customer in the configured store.
func (c *Client) CreateCustomer(ctx context.Context, name, email string) (Customer, error) {
	if email == "" {
		return Customer{}, errors.New("customer email is required")
	}
	if name == "" {
		name = email
	}

	var req createCustomerRequest
	req.Data.Type = "customers"
	req.Data.Attributes.Name = name
	req.Data.Attributes.Email = email
	req.Data.Relationships.Store = relationship{
		Data: relationshipData{Type: "stores", ID: c.storeID},
	}

	var doc document[CustomerAttributes]
	if err := c.post(ctx, "/customers", req, &doc); err != nil {
		return Customer{}, err
	}
	return Customer{ID: doc.Data.ID, CustomerAttributes: doc.Data.Attributes}, nil
}

// GetCustomer fetches a customer by its vendor id. The returned record
// includes a signed customer portal URL valid for 24 hours.
func (c *Client) GetCustomer(ctx context.Context, id string) (Customer, error) {
	if id == "" {
		return Customer{}, errors.New("customer id is required")
	}

	var doc document[CustomerAttributes]
	if err := c.get(ctx, "/customers/"+id, nil, &doc); err != nil {
		return Customer{}, err
	}
	return Customer{ID: doc.Data.ID, CustomerAttributes: doc.Data.Attributes}, nil
}

// FindCustomerByEmail looks up a customer in the configured store by email.
// Returns ErrNotFound if no customer matches.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (Customer, error) {
	if email == "" {
		return Customer{}, errors.New("customer email is required")
	}

	q := url.Values{}
	q.Set("filter[email]", email)
	q.Set("filter[store_id]", c.storeID)

	var doc listDocument[CustomerAttributes]
	if err := c.get(ctx, "/customers", q, &doc); err != nil {
		return Customer{}, err
	}
	if len(doc.Data) == 0 {
		return Customer{}, ErrNotFound
	}
	return Customer{ID: doc.Data[0].ID, CustomerAttributes: doc.Data[0].Attributes}, nil
}
