package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/storefront/internal/db"
	"github.com/vbonduro/storefront/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func seedStore(t *testing.T, d *sql.DB, userID string) *domain.Store {
	t.Helper()
	st, err := NewStoreStore(d).Create(context.Background(), userID, "Test Store")
	require.NoError(t, err)
	return st
}

// seedCatalog creates a billboard, category, size, and color in the store so
// products can be inserted without tripping foreign keys.
func seedCatalog(t *testing.T, d *sql.DB, storeID string) (billboard *domain.Billboard, category *domain.Category, size *domain.Size, color *domain.Color) {
	t.Helper()
	ctx := context.Background()

	billboard, err := NewBillboardStore(d).Create(ctx, storeID, "Summer Sale", "https://img.example/summer.png")
	require.NoError(t, err)

	category, err = NewCategoryStore(d).Create(ctx, storeID, billboard.ID, "Shirts")
	require.NoError(t, err)

	size, err = NewSizeStore(d).Create(ctx, storeID, "Medium", "M")
	require.NoError(t, err)

	color, err = NewColorStore(d).Create(ctx, storeID, "Red", "#ff0000")
	require.NoError(t, err)

	return billboard, category, size, color
}

func seedProduct(t *testing.T, d *sql.DB, storeID string, urls ...string) *domain.Product {
	t.Helper()
	_, category, size, color := seedCatalog(t, d, storeID)

	p, err := NewProductStore(d).Create(context.Background(), ProductParams{
		StoreID:    storeID,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
		Name:       "Linen Shirt",
		Supplier:   "Acme Textiles",
		Price:      decimal.RequireFromString("49.90"),
		Quantity:   10,
		ImageURLs:  urls,
	})
	require.NoError(t, err)
	return p
}
