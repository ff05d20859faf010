package catalog

import "time"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Prices are stored as strings to avoid rounding errors (NUMERIC in Postgres)
	CostPrice string    `json:"cost_price"`
	SellPrice string    `json:"sell_price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	// limit applied
	Limit int `json:"limit"`
	// offset applied
	Offset int `json:"offset"`
	// products found
	Items []Product `json:"items"`
}
