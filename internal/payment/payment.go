// Package payment abstracts the hosted checkout provider. The service never
// touches card data; it creates a session and redirects the shopper to the
// provider's URL.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// LineItem is one purchasable row in a checkout session.
type LineItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// SessionRequest describes a checkout session to create. OrderID travels as
// provider metadata so a later reconciliation can find the local order.
type SessionRequest struct {
	OrderID    string
	Currency   string
	Items      []LineItem
	SuccessURL string
	CancelURL  string
}

// Provider creates hosted checkout sessions and returns the redirect URL.
type Provider interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}
