package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categories is the fixed set of grouping tags the storefront knows about.
var Categories = []string{"ebooks", "courses", "software"}

// SeedProduct is one entry of the category-keyed seed document.
type SeedProduct struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SellPrice   decimal.Decimal `json:"sell_price"`
}

// SeedIfEmpty populates the catalog when the products table is empty.
// When path is empty the built-in sample catalog is used. Returns the
// number of products inserted (0 when the catalog was already seeded).
func SeedIfEmpty(ctx context.Context, repo Repository, path string) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seed := defaultSeed
	if path != "" {
		loaded, err := LoadSeedFile(path)
		if err != nil {
			return 0, err
		}
		seed = loaded
	}

	inserted := 0
	for _, cat := range Categories {
		for _, sp := range seed[cat] {
			p, err := fromSeed(sp, cat)
			if err != nil {
				return inserted, err
			}
			if err := repo.Create(ctx, p); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	log.Printf("[catalog] seeded %d products", inserted)
	return inserted, nil
}

// LoadSeedFile reads a category-keyed seed document from disk and rejects
// categories outside the known set.
func LoadSeedFile(path string) (map[string][]SeedProduct, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed map[string][]SeedProduct
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for cat := range seed {
		if !knownCategory(cat) {
			return nil, fmt.Errorf("unknown category %q in seed file", cat)
		}
	}
	return seed, nil
}

func knownCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

func fromSeed(sp SeedProduct, category string) (*Product, error) {
	if sp.Name == "" {
		return nil, fmt.Errorf("seed product in %q has no name", category)
	}
	if sp.CostPrice.IsNegative() || sp.SellPrice.IsNegative() {
		return nil, fmt.Errorf("seed product %q has a negative price", sp.Name)
	}
	id := sp.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Product{
		ID:          id,
		Name:        sp.Name,
		Description: sp.Description,
		CostPrice:   sp.CostPrice.StringFixed(2),
		SellPrice:   sp.SellPrice.StringFixed(2),
		Category:    category,
	}, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var defaultSeed = map[string][]SeedProduct{
	"ebooks": {
		{Name: "Web Development Basics", Description: "Learn HTML, CSS and JavaScript fundamentals", CostPrice: dec("5.00"), SellPrice: dec("19.99")},
		{Name: "Python Programming Guide", Description: "Complete Python programming tutorial", CostPrice: dec("8.00"), SellPrice: dec("24.99")},
		{Name: "Database Design Manual", Description: "Learn SQL and database principles", CostPrice: dec("6.00"), SellPrice: dec("22.99")},
	},
	"courses": {
		{Name: "Flask Web Development Course", Description: "Build web applications with Flask", CostPrice: dec("20.00"), SellPrice: dec("49.99")},
		{Name: "JavaScript Masterclass", Description: "Advanced JavaScript programming", CostPrice: dec("15.00"), SellPrice: dec("39.99")},
		{Name: "Responsive Design Workshop", Description: "Create mobile-friendly websites", CostPrice: dec("12.00"), SellPrice: dec("34.99")},
	},
	"software": {
		{Name: "Code Editor Pro", Description: "Professional code editing software", CostPrice: dec("10.00"), SellPrice: dec("29.99")},
		{Name: "Web Design Toolkit", Description: "Complete web design software package", CostPrice: dec("15.00"), SellPrice: dec("44.99")},
		{Name: "Database Manager", Description: "Manage your databases efficiently", CostPrice: dec("18.00"), SellPrice: dec("54.99")},
		{Name: "Project Planning App", Description: "Organize your development projects", CostPrice: dec("8.00"), SellPrice: dec("24.99")},
	},
}
