package lemonsqueezy

import "time"

// resource is a single JSON:API resource object.
type resource[A any] struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes A      `json:"attributes"`
}

// document wraps a single-resource JSON:API response.
type document[A any] struct {
	Data resource[A] `json:"data"`
}

// listDocument wraps a paginated JSON:API collection response.
type listDocument[A any] struct {
	Meta listMeta      `json:"meta"`
	Data []resource[A] `json:"data"`
}

type listMeta struct {
	Page Pagination `json:"page"`
}

// Pagination describes the page position of a list response.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
	PerPage     int `json:"perPage"`
	Total       int `json:"total"`
}

// HasMore reports whether more pages remain after the current one.
func (p Pagination) HasMore() bool { return p.CurrentPage < p.LastPage }

// SubscriptionAttributes mirrors a LemonSqueezy subscription resource.
type SubscriptionAttributes struct {
	StoreID         int        `json:"store_id"`
	CustomerID      int        `json:"customer_id"`
	OrderID         int        `json:"order_id"`
	ProductID       int        `json:"product_id"`
	VariantID       int        `json:"variant_id"`
	ProductName     string     `json:"product_name"`
	VariantName     string     `json:"variant_name"`
	UserName        string     `json:"user_name"`
	UserEmail       string     `json:"user_email"`
	Status          string     `json:"status"`
	StatusFormatted string     `json:"status_formatted"`
	CardBrand       string     `json:"card_brand"`
	CardLastFour    string     `json:"card_last_four"`
	Cancelled       bool       `json:"cancelled"`
	TrialEndsAt     *time.Time `json:"trial_ends_at"`
	RenewsAt        *time.Time `json:"renews_at"`
	EndsAt          *time.Time `json:"ends_at"`
	TestMode        bool       `json:"test_mode"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Subscription is a vendor subscription with its resource id.
type Subscription struct {
	ID string
	SubscriptionAttributes
}

// ProductAttributes mirrors a LemonSqueezy product resource.
type ProductAttributes struct {
	StoreID        int       `json:"store_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Price          int       `json:"price"`
	PriceFormatted string    `json:"price_formatted"`
	TestMode       bool      `json:"test_mode"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Product is a vendor product with its resource id.
type Product struct {
	ID string
	ProductAttributes
}

// VariantAttributes mirrors a LemonSqueezy variant resource.
type VariantAttributes struct {
	ProductID   int       `json:"product_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Interval    string    `json:"interval"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Variant is a vendor variant with its resource id.
type Variant struct {
	ID string
	VariantAttributes
}

// CustomerAttributes mirrors a LemonSqueezy customer resource.
type CustomerAttributes struct {
	StoreID   int          `json:"store_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Status    string       `json:"status"`
	URLs      CustomerURLs `json:"urls"`
	TestMode  bool         `json:"test_mode"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CustomerURLs holds customer-scoped signed URLs.
type CustomerURLs struct {
	CustomerPortal string `json:"customer_portal"`
}

// Customer is a vendor customer with its resource id.
type Customer struct {
	ID string
	CustomerAttributes
}

// CheckoutAttributes mirrors a LemonSqueezy checkout resource.
type CheckoutAttributes struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at"`
	TestMode  bool       `json:"test_mode"`
	CreatedAt time.Time  `json:"created_at"`
}

// Checkout is a created checkout session.
type Checkout struct {
	ID string
	CheckoutAttributes
}
