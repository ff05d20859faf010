// Package admin builds the revenue/cost/profit report over all
// historical orders. The report is a pure read projection, recomputed
// from scratch on every request.
package admin

import (
	"context"

	"github.com/shopspring/decimal"

	"shopfront/internal/checkout"
)

// OrderSource supplies every persisted order with its items.
type OrderSource interface {
	ListAll(ctx context.Context) ([]checkout.OrderWithItems, error)
}

// CostSource maps product ids to their current cost price.
type CostSource interface {
	CostPriceIndex(ctx context.Context) (map[string]string, error)
}

// Report is the admin summary: the order list (newest first) plus the
// aggregated money totals.
// swagger:model AdminReport
type Report struct {
	Orders       []checkout.OrderView `json:"orders"`
	TotalRevenue string               `json:"total_revenue"`
	TotalCost    string               `json:"total_cost"`
	TotalProfit  string               `json:"total_profit"`
}

type Service struct {
	orders  OrderSource
	catalog CostSource
}

func NewService(orders OrderSource, catalog CostSource) *Service {
	return &Service{orders: orders, catalog: catalog}
}

// Summary aggregates revenue from order totals and cost from each item's
// referenced product. Items whose product no longer exists contribute no
// cost: the snapshot price still counts as revenue, but there is no
// acquisition cost left to look up.
func (s *Service) Summary(ctx context.Context) (*Report, error) {
	all, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	costs, err := s.catalog.CostPriceIndex(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	cost := decimal.Zero
	views := make([]checkout.OrderView, 0, len(all))
	for _, ow := range all {
		if t, err := decimal.NewFromString(ow.Order.TotalAmount); err == nil {
			revenue = revenue.Add(t)
		}
		for _, it := range ow.Items {
			c, ok := costs[it.ProductID]
			if !ok {
				continue
			}
			unitCost, err := decimal.NewFromString(c)
			if err != nil {
				continue
			}
			cost = cost.Add(unitCost.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		views = append(views, checkout.NewOrderView(ow.Order, ow.Items))
	}

	return &Report{
		Orders:       views,
		TotalRevenue: revenue.StringFixed(2),
		TotalCost:    cost.StringFixed(2),
		TotalProfit:  revenue.Sub(cost).StringFixed(2),
	}, nil
}
