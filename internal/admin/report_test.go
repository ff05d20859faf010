package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/checkout"
)

type fakeOrders struct{ all []checkout.OrderWithItems }

func (f *fakeOrders) ListAll(ctx context.Context) ([]checkout.OrderWithItems, error) {
	return f.all, nil
}

type fakeCosts struct{ index map[string]string }

func (f *fakeCosts) CostPriceIndex(ctx context.Context) (map[string]string, error) {
	return f.index, nil
}

func order(id, total string, items ...checkout.Item) checkout.OrderWithItems {
	return checkout.OrderWithItems{
		Order: checkout.Order{ID: id, TotalAmount: total, Status: "completed"},
		Items: items,
	}
}

func TestSummary_RevenueCostProfit(t *testing.T) {
	orders := &fakeOrders{all: []checkout.OrderWithItems{
		order("o1", "20.00", checkout.Item{ID: "i1", OrderID: "o1", ProductID: "pA", Quantity: 1, PriceAtPurchase: "20.00"}),
		order("o2", "30.00", checkout.Item{ID: "i2", OrderID: "o2", ProductID: "pB", Quantity: 1, PriceAtPurchase: "30.00"}),
	}}
	costs := &fakeCosts{index: map[string]string{"pA": "5.00", "pB": "8.00"}}

	rep, err := NewService(orders, costs).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "50.00", rep.TotalRevenue)
	assert.Equal(t, "13.00", rep.TotalCost)
	assert.Equal(t, "37.00", rep.TotalProfit)
	require.Len(t, rep.Orders, 2)
	assert.Equal(t, "20.00", rep.Orders[0].Items[0].Subtotal)
}

func TestSummary_CostScalesWithQuantity(t *testing.T) {
	orders := &fakeOrders{all: []checkout.OrderWithItems{
		order("o1", "60.00", checkout.Item{ID: "i1", OrderID: "o1", ProductID: "pA", Quantity: 3, PriceAtPurchase: "20.00"}),
	}}
	costs := &fakeCosts{index: map[string]string{"pA": "5.00"}}

	rep, err := NewService(orders, costs).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "60.00", rep.TotalRevenue)
	assert.Equal(t, "15.00", rep.TotalCost)
	assert.Equal(t, "45.00", rep.TotalProfit)
}

func TestSummary_RemovedProductContributesNoCost(t *testing.T) {
	orders := &fakeOrders{all: []checkout.OrderWithItems{
		order("o1", "20.00",
			checkout.Item{ID: "i1", OrderID: "o1", ProductID: "pA", Quantity: 1, PriceAtPurchase: "10.00"},
			checkout.Item{ID: "i2", OrderID: "o1", ProductID: "gone", Quantity: 1, PriceAtPurchase: "10.00"},
		),
	}}
	costs := &fakeCosts{index: map[string]string{"pA": "4.00"}}

	rep, err := NewService(orders, costs).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "20.00", rep.TotalRevenue, "snapshot revenue is unaffected")
	assert.Equal(t, "4.00", rep.TotalCost, "missing product is silently omitted from cost")
	assert.Equal(t, "16.00", rep.TotalProfit)
}

func TestSummary_ZeroOrders(t *testing.T) {
	rep, err := NewService(&fakeOrders{}, &fakeCosts{index: map[string]string{}}).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", rep.TotalRevenue)
	assert.Equal(t, "0.00", rep.TotalCost)
	assert.Equal(t, "0.00", rep.TotalProfit)
	assert.Empty(t, rep.Orders)
}

func TestSummary_NegativeProfitAllowed(t *testing.T) {
	orders := &fakeOrders{all: []checkout.OrderWithItems{
		order("o1", "5.00", checkout.Item{ID: "i1", OrderID: "o1", ProductID: "pA", Quantity: 1, PriceAtPurchase: "5.00"}),
	}}
	costs := &fakeCosts{index: map[string]string{"pA": "9.00"}}

	rep, err := NewService(orders, costs).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-4.00", rep.TotalProfit)
}
