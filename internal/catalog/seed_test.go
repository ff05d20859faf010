package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	products []Product
}

func (m *memRepo) Create(ctx context.Context, p *Product) error {
	m.products = append(m.products, *p)
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) List(ctx context.Context, q Query) ([]Product, error) { return m.products, nil }

func (m *memRepo) ListGrouped(ctx context.Context) (map[string][]Product, error) {
	out := make(map[string][]Product)
	for _, p := range m.products {
		out[p.Category] = append(out[p.Category], p)
	}
	return out, nil
}

func (m *memRepo) Count(ctx context.Context) (int, error) { return len(m.products), nil }

func (m *memRepo) CostPriceIndex(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, p := range m.products {
		out[p.ID] = p.CostPrice
	}
	return out, nil
}

func TestSeedIfEmpty_DefaultCatalog(t *testing.T) {
	repo := &memRepo{}
	n, err := SeedIfEmpty(context.Background(), repo, "")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	require.Len(t, repo.products, 10)

	grouped, _ := repo.ListGrouped(context.Background())
	assert.Len(t, grouped["ebooks"], 3)
	assert.Len(t, grouped["courses"], 3)
	assert.Len(t, grouped["software"], 4)

	for _, p := range repo.products {
		assert.NotEmpty(t, p.ID)
		assert.Regexp(t, `^\d+\.\d{2}$`, p.CostPrice)
		assert.Regexp(t, `^\d+\.\d{2}$`, p.SellPrice)
	}
}

func TestSeedIfEmpty_SkipsNonEmptyCatalog(t *testing.T) {
	repo := &memRepo{}
	_ = repo.Create(context.Background(), &Product{ID: "x", Name: "Existing", CostPrice: "1.00", SellPrice: "2.00", Category: "ebooks"})

	n, err := SeedIfEmpty(context.Background(), repo, "")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, repo.products, 1)
}

func TestSeedIfEmpty_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	doc := `{
		"ebooks": [
			{"id": "e1", "name": "Go Basics", "cost_price": 3.5, "sell_price": 12.99}
		],
		"software": [
			{"name": "Editor", "cost_price": 10, "sell_price": 25}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	repo := &memRepo{}
	n, err := SeedIfEmpty(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	p, err := repo.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", p.Name)
	assert.Equal(t, "3.50", p.CostPrice)
	assert.Equal(t, "12.99", p.SellPrice)
	assert.Equal(t, "ebooks", p.Category)
}

func TestLoadSeedFile_RejectsUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	doc := `{"gadgets": [{"name": "Widget", "cost_price": 1, "sell_price": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadSeedFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadSeedFile_RejectsNegativePriceAtSeed(t *testing.T) {
	repo := &memRepo{}
	path := filepath.Join(t.TempDir(), "seed.json")
	doc := `{"ebooks": [{"name": "Bad", "cost_price": -1, "sell_price": 2}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := SeedIfEmpty(context.Background(), repo, path)
	require.Error(t, err)
	assert.Empty(t, repo.products)
}
