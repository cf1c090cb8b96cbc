package billing

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
)

// Status is a vendor subscription lifecycle status.
type Status string

const (
	StatusOnTrial   Status = "on_trial"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusPastDue   Status = "past_due"
	StatusUnpaid    Status = "unpaid"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Customer maps a local user to a vendor customer id. Created once per user,
// never updated.
type Customer struct {
	UserID           uuid.UUID
	Email            string
	VendorCustomerID string
	CreatedAt        time.Time
}

// Subscription mirrors a vendor subscription, keyed by the vendor-assigned
// id. UserID is null when the record arrived through sync and no webhook has
// attributed it yet.
type Subscription struct {
	VendorID         string
	UserID           uuid.NullUUID
	VendorCustomerID string
	VendorProductID  string
	VendorVariantID  string
	ProductName      string
	VariantName      string
	UserEmail        string
	Status           Status
	CardBrand        string
	CardLastFour     string
	Cancelled        bool
	TrialEndsAt      *time.Time
	RenewsAt         *time.Time
	EndsAt           *time.Time
	TestMode         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Product mirrors a vendor catalog product, keyed by the vendor-assigned id.
type Product struct {
	VendorID    string
	Name        string
	Slug        string
	Description string
	Status      string
	Price       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant mirrors a vendor product variant, keyed by the vendor-assigned id.
type Variant struct {
	VendorID        string
	VendorProductID string
	Name            string
	Slug            string
	Description     string
	Price           int
	Interval        string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// subscriptionFromVendor maps a vendor subscription resource to a local
// record. userID carries webhook attribution; pass the zero value for sync
// items so the upsert preserves any attribution already stored.
func subscriptionFromVendor(sub lemonsqueezy.Subscription, userID uuid.NullUUID) Subscription {
	return Subscription{
		VendorID:         sub.ID,
		UserID:           userID,
		VendorCustomerID: strconv.Itoa(sub.CustomerID),
		VendorProductID:  strconv.Itoa(sub.ProductID),
		VendorVariantID:  strconv.Itoa(sub.VariantID),
		ProductName:      sub.ProductName,
		VariantName:      sub.VariantName,
		UserEmail:        sub.UserEmail,
		Status:           Status(sub.Status),
		CardBrand:        sub.CardBrand,
		CardLastFour:     sub.CardLastFour,
		Cancelled:        sub.Cancelled,
		TrialEndsAt:      sub.TrialEndsAt,
		RenewsAt:         sub.RenewsAt,
		EndsAt:           sub.EndsAt,
		TestMode:         sub.TestMode,
		CreatedAt:        sub.CreatedAt,
		UpdatedAt:        sub.UpdatedAt,
	}
}

func productFromVendor(p lemonsqueezy.Product) Product {
	return Product{
		VendorID:    p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Status:      p.Status,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func variantFromVendor(v lemonsqueezy.Variant) Variant {
	return Variant{
		VendorID:        v.ID,
		VendorProductID: strconv.Itoa(v.ProductID),
		Name:            v.Name,
		Slug:            v.Slug,
		Description:     v.Description,
		Price:           v.Price,
		Interval:        v.Interval,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
