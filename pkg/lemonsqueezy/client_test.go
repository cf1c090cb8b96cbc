package lemonsqueezy_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lemonbridge/pkg/lemonsqueezy"
)

func newTestClient(t *testing.T, handler http.Handler) *lemonsqueezy.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := lemonsqueezy.New(lemonsqueezy.Config{
		APIKey:  "test-key",
		StoreID: "1",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires api key", func(t *testing.T) {
		t.Parallel()
		_, err := lemonsqueezy.New(lemonsqueezy.Config{StoreID: "1"})
		assert.ErrorIs(t, err, lemonsqueezy.ErrMissingAPIKey)
	})

	t.Run("requires store id", func(t *testing.T) {
		t.Parallel()
		_, err := lemonsqueezy.New(lemonsqueezy.Config{APIKey: "key"})
		assert.ErrorIs(t, err, lemonsqueezy.ErrMissingStoreID)
	})
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.api+json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		data := body["data"].(map[string]any)
		assert.Equal(t, "customers", data["type"])
		attrs := data["attributes"].(map[string]any)
		assert.Equal(t, "user@example.com", attrs["email"])

		w.Header().Set("Content-Type", "application/vnd.api+json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"type":"customers","id":"123","attributes":{"store_id":1,"name":"User","email":"user@example.com","status":"subscribed"}}}`))
	}))

	customer, err := client.CreateCustomer(context.Background(), "User", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123", customer.ID)
	assert.Equal(t, "user@example.com", customer.Email)
}

func TestGetCustomer(t *testing.T) {
	t.Parallel()

	t.Run("returns portal url", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers/123", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":{"type":"customers","id":"123","attributes":{"email":"user@example.com","urls":{"customer_portal":"https://store.lemonsqueezy.com/billing?signature=abc"}}}}`))
		}))

		customer, err := client.GetCustomer(context.Background(), "123")
		require.NoError(t, err)
		assert.Equal(t, "https://store.lemonsqueezy.com/billing?signature=abc", customer.URLs.CustomerPortal)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.GetCustomer(context.Background(), "missing")
		assert.ErrorIs(t, err, lemonsqueezy.ErrNotFound)
	})
}

func TestFindCustomerByEmail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "user@example.com", r.URL.Query().Get("filter[email]"))
			assert.Equal(t, "1", r.URL.Query().Get("filter[store_id]"))
			_, _ = w.Write([]byte(`{"meta":{"page":{"currentPage":1,"lastPage":1,"total":1}},"data":[{"type":"customers","id":"123","attributes":{"email":"user@example.com"}}]}`))
		}))

		customer, err := client.FindCustomerByEmail(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "123", customer.ID)
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meta":{"page":{"currentPage":1,"lastPage":1,"total":0}},"data":[]}`))
		}))

		_, err := client.FindCustomerByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, lemonsqueezy.ErrNotFound)
	})
}

func TestCreateCheckout(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/checkouts", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			data := body["data"].(map[string]any)
			attrs := data["attributes"].(map[string]any)
			checkoutData := attrs["checkout_data"].(map[string]any)
			custom := checkoutData["custom"].(map[string]any)
			assert.Equal(t, "user-1", custom["user_id"])

			rels := data["relationships"].(map[string]any)
			variant := rels["variant"].(map[string]any)["data"].(map[string]any)
			assert.Equal(t, "55", variant["id"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"data":{"type":"checkouts","id":"ck_1","attributes":{"url":"https://store.lemonsqueezy.com/checkout/buy/abc"}}}`))
		}))

		checkout, err := client.CreateCheckout(context.Background(), lemonsqueezy.CheckoutParams{
			VariantID: "55",
			UserID:    "user-1",
			Email:     "user@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://store.lemonsqueezy.com/checkout/buy/abc", checkout.URL)
	})

	t.Run("requires variant id", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		_, err := client.CreateCheckout(context.Background(), lemonsqueezy.CheckoutParams{UserID: "user-1"})
		assert.Error(t, err)
	})

	t.Run("vendor error relayed", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":[{"status":"422","title":"Unprocessable Entity","detail":"The variant does not exist."}]}`))
		}))

		_, err := client.CreateCheckout(context.Background(), lemonsqueezy.CheckoutParams{
			VariantID: "999",
			UserID:    "user-1",
		})
		require.ErrorIs(t, err, lemonsqueezy.ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "The variant does not exist.")
	})
}

func TestListSubscriptions(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page[number]"))
		assert.Equal(t, "100", r.URL.Query().Get("page[size]"))
		_, _ = w.Write([]byte(`{
			"meta":{"page":{"currentPage":2,"lastPage":3,"perPage":100,"total":250}},
			"data":[
				{"type":"subscriptions","id":"42","attributes":{"status":"active","customer_id":99}},
				{"type":"subscriptions","id":"43","attributes":{"status":"cancelled","cancelled":true}}
			]
		}`))
	}))

	subs, page, err := client.ListSubscriptions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "42", subs[0].ID)
	assert.Equal(t, "active", subs[0].Status)
	assert.True(t, subs[1].Cancelled)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.LastPage)
	assert.True(t, page.HasMore())
}

func TestListProductsAndVariants(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			_, _ = w.Write([]byte(`{"meta":{"page":{"currentPage":1,"lastPage":1,"total":1}},"data":[{"type":"products","id":"3","attributes":{"name":"Pro","price":900,"status":"published"}}]}`))
		case "/variants":
			_, _ = w.Write([]byte(`{"meta":{"page":{"currentPage":1,"lastPage":1,"total":1}},"data":[{"type":"variants","id":"5","attributes":{"product_id":3,"name":"Monthly","price":900,"interval":"month"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	products, page, err := client.ListProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pro", products[0].Name)
	assert.False(t, page.HasMore())

	variants, _, err := client.ListVariants(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, 3, variants[0].ProductID)
	assert.Equal(t, "month", variants[0].Interval)
}
