package stripe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/storefront/internal/payment"
)

func TestCreateSession(t *testing.T) {
	var gotForm map[string][]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.example/session/cs_test_1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("sk_test_key", server.URL)
	url, err := client.CreateSession(context.Background(), payment.SessionRequest{
		OrderID:    "order_1",
		Currency:   "COP",
		SuccessURL: "https://shop.example/cart?success=1",
		CancelURL:  "https://shop.example/cart?canceled=1",
		Items: []payment.LineItem{
			{Name: "Linen Shirt", Price: decimal.RequireFromString("49.90"), Quantity: 1},
			{Name: "Wool Scarf", Price: decimal.RequireFromString("15.00"), Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/session/cs_test_1", url)

	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.Equal(t, "payment", gotForm["mode"][0])
	assert.Equal(t, "order_1", gotForm["metadata[orderId]"][0])
	assert.Equal(t, "true", gotForm["phone_number_collection[enabled]"][0])
	assert.Equal(t, "Linen Shirt", gotForm["line_items[0][price_data][product_data][name]"][0])
	assert.Equal(t, "4990", gotForm["line_items[0][price_data][unit_amount]"][0])
	assert.Equal(t, "COP", gotForm["line_items[0][price_data][currency]"][0])
	assert.Equal(t, "1500", gotForm["line_items[1][price_data][unit_amount]"][0])
}

func TestCreateSessionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid API Key"}}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewClient("bad-key", server.URL)
	_, err := client.CreateSession(context.Background(), payment.SessionRequest{OrderID: "o"})
	assert.Error(t, err)
}

func TestCreateSessionMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"cs_test_1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("sk_test_key", server.URL)
	_, err := client.CreateSession(context.Background(), payment.SessionRequest{OrderID: "o"})
	assert.Error(t, err)
}
