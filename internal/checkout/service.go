// Package checkout implements order placement: checkout validation,
// total computation from the submitted cart lines, and transactional
// persistence of the order header plus its items.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyCart rejects a checkout whose cart payload is missing or
	// decodes to zero lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError marks a user-correctable checkout problem: the form
// should be re-prompted, storage is never touched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PlaceOrder validates the checkout submission, computes the order total
// from the submitted cart lines and persists the order atomically.
//
// The total is computed from the client-supplied unit prices, not from
// the live catalog: the cart contract is a price-at-add snapshot, and
// later catalog changes must not alter what the customer was shown.
func (s *Service) PlaceOrder(ctx context.Context, req CheckoutRequest) (*Order, error) {
	if req.Email == "" {
		return nil, invalidf("email is required")
	}
	if req.Phone == "" {
		return nil, invalidf("phone is required")
	}
	if req.Suburb == "" {
		return nil, invalidf("suburb is required")
	}

	lines, err := parseCart(req.CartData)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	now := time.Now().UTC()
	o := &Order{
		ID:             uuid.NewString(),
		CustomerEmail:  req.Email,
		CustomerPhone:  req.Phone,
		CustomerSuburb: req.Suburb,
		TotalAmount:    total.StringFixed(2),
		Status:         StatusCompleted,
		OrderDate:      now,
	}
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ID:              uuid.NewString(),
			OrderID:         o.ID,
			ProductID:       l.ProductID,
			ProductName:     l.Name,
			Quantity:        l.Quantity,
			PriceAtPurchase: l.Price.StringFixed(2),
		})
	}

	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	return o, nil
}

// Get returns the confirmation view of an order: header, items and
// per-item subtotals.
func (s *Service) Get(ctx context.Context, id string) (*OrderView, error) {
	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := NewOrderView(*o, items)
	return &v, nil
}

// NewOrderView computes the per-item subtotals for display.
func NewOrderView(o Order, items []Item) OrderView {
	v := OrderView{Order: o, Items: make([]ItemView, 0, len(items))}
	for _, it := range items {
		price, err := decimal.NewFromString(it.PriceAtPurchase)
		if err != nil {
			price = decimal.Zero
		}
		sub := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		v.Items = append(v.Items, ItemView{Item: it, Subtotal: sub.StringFixed(2)})
	}
	return v
}

func parseCart(raw string) ([]CartLine, error) {
	if raw == "" {
		return nil, ErrEmptyCart
	}
	var lines []CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, invalidf("cart_data is not valid JSON")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for i, l := range lines {
		if l.ProductID == "" {
			return nil, invalidf("cart line %d has no product id", i+1)
		}
		if l.Name == "" {
			return nil, invalidf("cart line %d has no product name", i+1)
		}
		if l.Quantity < 1 {
			return nil, invalidf("cart line %d has a non-positive quantity", i+1)
		}
		if l.Price.IsNegative() {
			return nil, invalidf("cart line %d has a negative price", i+1)
		}
	}
	return lines, nil
}
