package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id string) (*Order, []Item, error)
	ListAll(ctx context.Context) ([]OrderWithItems, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts the order header and all of its items in one
// transaction. The deferred rollback is a no-op after a successful
// commit, so any failure along the way leaves no partial order behind.
func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, customer_email, customer_phone, customer_suburb, total_amount, status, order_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, o.ID, o.CustomerEmail, o.CustomerPhone, o.CustomerSuburb, o.TotalAmount, o.Status, o.OrderDate); err != nil {
		return err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, product_name, quantity, price_at_purchase)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, it.ID, o.ID, it.ProductID, it.ProductName, it.Quantity, it.PriceAtPurchase); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, customer_email, customer_phone, customer_suburb, total_amount::text, status, order_date
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.CustomerEmail, &o.CustomerPhone, &o.CustomerSuburb, &o.TotalAmount, &o.Status, &o.OrderDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

// ListAll returns every order with its items, most recent first. Two
// queries, grouped in memory, to avoid one round-trip per order.
func (r *PGRepo) ListAll(ctx context.Context) ([]OrderWithItems, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, customer_email, customer_phone, customer_suburb, total_amount::text, status, order_date
    FROM orders
    ORDER BY order_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderWithItems
	index := make(map[string]int)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerEmail, &o.CustomerPhone, &o.CustomerSuburb, &o.TotalAmount, &o.Status, &o.OrderDate); err != nil {
			return nil, err
		}
		index[o.ID] = len(out)
		out = append(out, OrderWithItems{Order: o})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, product_name, quantity, price_at_purchase::text
    FROM order_items
  `)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it Item
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.PriceAtPurchase); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out, itemRows.Err()
}

func (r *PGRepo) itemsFor(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, product_name, quantity, price_at_purchase::text
    FROM order_items WHERE order_id=$1
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.PriceAtPurchase); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
