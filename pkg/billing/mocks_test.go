package billing_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/lemonbridge/pkg/billing"
	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
)

type mockVendorClient struct {
	mock.Mock
}

func (m *mockVendorClient) CreateCustomer(ctx context.Context, name, email string) (lemonsqueezy.Customer, error) {
	args := m.Called(ctx, name, email)
	return args.Get(0).(lemonsqueezy.Customer), args.Error(1)
}

func (m *mockVendorClient) GetCustomer(ctx context.Context, id string) (lemonsqueezy.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(lemonsqueezy.Customer), args.Error(1)
}

func (m *mockVendorClient) FindCustomerByEmail(ctx context.Context, email string) (lemonsqueezy.Customer, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(lemonsqueezy.Customer), args.Error(1)
}

func (m *mockVendorClient) CreateCheckout(ctx context.Context, params lemonsqueezy.CheckoutParams) (lemonsqueezy.Checkout, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(lemonsqueezy.Checkout), args.Error(1)
}

func (m *mockVendorClient) ListSubscriptions(ctx context.Context, page int) ([]lemonsqueezy.Subscription, lemonsqueezy.Pagination, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]lemonsqueezy.Subscription), args.Get(1).(lemonsqueezy.Pagination), args.Error(2)
}

func (m *mockVendorClient) ListProducts(ctx context.Context, page int) ([]lemonsqueezy.Product, lemonsqueezy.Pagination, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]lemonsqueezy.Product), args.Get(1).(lemonsqueezy.Pagination), args.Error(2)
}

func (m *mockVendorClient) ListVariants(ctx context.Context, page int) ([]lemonsqueezy.Variant, lemonsqueezy.Pagination, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]lemonsqueezy.Variant), args.Get(1).(lemonsqueezy.Pagination), args.Error(2)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (billing.Customer, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(billing.Customer), args.Error(1)
}

func (m *mockStore) CreateCustomer(ctx context.Context, customer billing.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockStore) GetSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (billing.Subscription, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(billing.Subscription), args.Error(1)
}

func (m *mockStore) UpsertSubscription(ctx context.Context, sub billing.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockStore) UpsertProduct(ctx context.Context, product billing.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockStore) UpsertVariant(ctx context.Context, variant billing.Variant) error {
	return m.Called(ctx, variant).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, userID uuid.UUID, url string, ttl time.Duration) error {
	return m.Called(ctx, userID, url, ttl).Error(0)
}

type mockArchive struct {
	mock.Mock
}

func (m *mockArchive) Archive(ctx context.Context, event billing.Event) error {
	return m.Called(ctx, event).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PaymentFailed(ctx context.Context, sub billing.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *mockNotifier) SubscriptionCancelled(ctx context.Context, sub billing.Subscription) error {
	return m.Called(ctx, sub).Error(0)
}
