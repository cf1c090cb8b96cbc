package lemonsqueezy

import (
	"context"
	"errors"
)

// CheckoutParams describes a hosted checkout session to create.
type CheckoutParams struct {
	VariantID string
	UserID    string
	Email     string
	Name      string
}

func (p CheckoutParams) validate() error {
	if p.VariantID == "" {
		return errors.New("variant id is required")
	}
	if p.UserID == "" {
		return errors.New("user id is required")
	}
	return nil
}

type checkoutData struct {
	Email  string            `json:"email,omitempty"`
	Name   string            `json:"name,omitempty"`
	Custom map[string]string `json:"custom"`
}

type createCheckoutRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			CheckoutData checkoutData `json:"checkout_data"`
		} `json:"attributes"`
		Relationships struct {
			Store   relationship `json:"store"`
			Variant relationship `json:"variant"`
		} `json:"relationships"`
	} `json:"data"`
}

// CreateCheckout creates a hosted checkout session for a variant. The user id
// travels in checkout_data.custom so subscription webhooks can be attributed
// back to the local user.
func (c *Client) CreateCheckout(ctx context.Context, params CheckoutParams) (Checkout, error) {
	if err := params.validate(); err != nil {
		return Checkout{}, err
	}

	var req createCheckoutRequest
	req.Data.Type = "checkouts"
	req.Data.Attributes.CheckoutData = checkoutData{
		Email:  params.Email,
		Name:   params.Name,
		Custom: map[string]string{"user_id": params.UserID},
	}
	req.Data.Relationships.Store = relationship{
		Data: relationshipData{Type: "stores", ID: c.storeID},
	}
	req.Data.Relationships.Variant = relationship{
		Data: relationshipData{Type: "variants", ID: params.VariantID},
	}

	var doc document[CheckoutAttributes]
	if err := c.post(ctx, "/checkouts", req, &doc); err != nil {
		return Checkout{}, err
	}
	return Checkout{ID: doc.Data.ID, CheckoutAttributes: doc.Data.Attributes}, nil
}
