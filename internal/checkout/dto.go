package checkout

import "github.com/shopspring/decimal"

// CartLine is one entry of the cart_data payload the browser submits at
// checkout. Price is the unit sell price snapshotted when the line was
// added to the cart.
// swagger:model CartLine
type CartLine struct {
	ProductID string          `json:"id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Name      string          `json:"name" example:"Python Programming Guide"`
	Price     decimal.Decimal `json:"price" example:"24.99"`
	Quantity  int             `json:"quantity" example:"2"`
}

// CheckoutRequest carries the checkout form fields. CartData is the raw
// JSON array of cart lines serialized by the storefront page.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	Email    string `form:"email" json:"email" example:"jane@example.com"`
	Phone    string `form:"phone" json:"phone" example:"0400123456"`
	Suburb   string `form:"suburb" json:"suburb" example:"Newtown"`
	CartData string `form:"cart_data" json:"cart_data"`
}

// ItemView is an order line plus its computed subtotal.
// swagger:model OrderItemView
type ItemView struct {
	Item
	Subtotal string `json:"subtotal"`
}

// OrderView is the confirmation-page projection of a persisted order.
// swagger:model OrderView
type OrderView struct {
	Order
	Items []ItemView `json:"items"`
}
