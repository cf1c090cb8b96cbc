package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/lemonbridge/pkg/billing"
)

// PostgresStore implements billing.Store on a pgx connection pool. All
// upserts rely on unique vendor-id constraints with ON CONFLICT DO UPDATE,
// so concurrent writes for the same vendor id can never create duplicates.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a billing store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	if db == nil {
		panic("storage: pgx pool is required")
	}
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (billing.Customer, error) {
	const query = `
		SELECT user_id, email, vendor_customer_id, created_at
		FROM billing_customers
		WHERE user_id = $1`

	var c billing.Customer
	err := s.db.QueryRow(ctx, query, userID).
		Scan(&c.UserID, &c.Email, &c.VendorCustomerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Customer{}, billing.ErrCustomerNotFound
		}
		return billing.Customer{}, err
	}
	return c, nil
}

func (s *PostgresStore) CreateCustomer(ctx context.Context, customer billing.Customer) error {
	const query = `
		INSERT INTO billing_customers (user_id, email, vendor_customer_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := s.db.Exec(ctx, query,
		customer.UserID, customer.Email, customer.VendorCustomerID, customer.CreatedAt)
	return err
}

func (s *PostgresStore) GetSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (billing.Subscription, error) {
	const query = `
		SELECT vendor_id, user_id, vendor_customer_id, vendor_product_id,
		       vendor_variant_id, product_name, variant_name, user_email,
		       status, card_brand, card_last_four, cancelled,
		       trial_ends_at, renews_at, ends_at,
		       test_mode, created_at, updated_at
		FROM billing_subscriptions
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1`

	var sub billing.Subscription
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&sub.VendorID, &sub.UserID, &sub.VendorCustomerID, &sub.VendorProductID,
		&sub.VendorVariantID, &sub.ProductName, &sub.VariantName, &sub.UserEmail,
		&sub.Status, &sub.CardBrand, &sub.CardLastFour, &sub.Cancelled,
		&sub.TrialEndsAt, &sub.RenewsAt, &sub.EndsAt,
		&sub.TestMode, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Subscription{}, billing.ErrSubscriptionNotFound
		}
		return billing.Subscription{}, err
	}
	return sub, nil
}

func (s *PostgresStore) UpsertSubscription(ctx context.Context, sub billing.Subscription) error {
	// COALESCE keeps webhook-provided user attribution when a later sync
	// pass writes the same row without one.
	const query = `
		INSERT INTO billing_subscriptions (
			vendor_id, user_id, vendor_customer_id, vendor_product_id,
			vendor_variant_id, product_name, variant_name, user_email,
			status, card_brand, card_last_four, cancelled,
			trial_ends_at, renews_at, ends_at,
			test_mode, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (vendor_id) DO UPDATE SET
			user_id            = COALESCE(EXCLUDED.user_id, billing_subscriptions.user_id),
			vendor_customer_id = EXCLUDED.vendor_customer_id,
			vendor_product_id  = EXCLUDED.vendor_product_id,
			vendor_variant_id  = EXCLUDED.vendor_variant_id,
			product_name       = EXCLUDED.product_name,
			variant_name       = EXCLUDED.variant_name,
			user_email         = EXCLUDED.user_email,
			status             = EXCLUDED.status,
			card_brand         = EXCLUDED.card_brand,
			card_last_four     = EXCLUDED.card_last_four,
			cancelled          = EXCLUDED.cancelled,
			trial_ends_at      = EXCLUDED.trial_ends_at,
			renews_at          = EXCLUDED.renews_at,
			ends_at            = EXCLUDED.ends_at,
			test_mode          = EXCLUDED.test_mode,
			updated_at         = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query,
		sub.VendorID, sub.UserID, sub.VendorCustomerID, sub.VendorProductID,
		sub.VendorVariantID, sub.ProductName, sub.VariantName, sub.UserEmail,
		sub.Status, sub.CardBrand, sub.CardLastFour, sub.Cancelled,
		sub.TrialEndsAt, sub.RenewsAt, sub.EndsAt,
		sub.TestMode, sub.CreatedAt, sub.UpdatedAt,
	)
	return err
}

func (s *PostgresStore) UpsertProduct(ctx context.Context, product billing.Product) error {
	const query = `
		INSERT INTO billing_products (
			vendor_id, name, slug, description, status, price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vendor_id) DO UPDATE SET
			name        = EXCLUDED.name,
			slug        = EXCLUDED.slug,
			description = EXCLUDED.description,
			status      = EXCLUDED.status,
			price       = EXCLUDED.price,
			updated_at  = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query,
		product.VendorID, product.Name, product.Slug, product.Description,
		product.Status, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	return err
}

func (s *PostgresStore) UpsertVariant(ctx context.Context, variant billing.Variant) error {
	const query = `
		INSERT INTO billing_variants (
			vendor_id, vendor_product_id, name, slug, description,
			price, billing_interval, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (vendor_id) DO UPDATE SET
			vendor_product_id = EXCLUDED.vendor_product_id,
			name              = EXCLUDED.name,
			slug              = EXCLUDED.slug,
			description       = EXCLUDED.description,
			price             = EXCLUDED.price,
			billing_interval  = EXCLUDED.billing_interval,
			status            = EXCLUDED.status,
			updated_at        = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query,
		variant.VendorID, variant.VendorProductID, variant.Name, variant.Slug,
		variant.Description, variant.Price, variant.Interval, variant.Status,
		variant.CreatedAt, variant.UpdatedAt,
	)
	return err
}
