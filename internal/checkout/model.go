package checkout

import "time"

// StatusCompleted is the only order status in this system; there is no
// cancellation or refund transition.
const StatusCompleted = "completed"

type Order struct {
	ID             string    `json:"id"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerPhone  string    `json:"customer_phone"`
	CustomerSuburb string    `json:"customer_suburb"`
	TotalAmount    string    `json:"total_amount"` // NUMERIC -> string
	Status         string    `json:"status"`
	OrderDate      time.Time `json:"order_date"`
}

// Item snapshots the product name and unit price at purchase time.
// ProductID is a plain lookup key, not a foreign key: the product may be
// removed from the catalog without touching historical orders.
type Item struct {
	ID              string `json:"id"`
	OrderID         string `json:"order_id"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

// OrderWithItems pairs an order header with its lines for bulk reads.
type OrderWithItems struct {
	Order Order  `json:"order"`
	Items []Item `json:"items"`
}
