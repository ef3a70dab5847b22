package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vbonduro/storefront/internal/domain"
)

// ProductParams carries every writable product field plus the replacement
// image URL collection. Create and Update both take the full set; partial
// updates do not exist in this API.
type ProductParams struct {
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	Name       string
	Supplier   string
	Price      decimal.Decimal
	Quantity   int64
	IsFeatured bool
	IsArchived bool
	ImageURLs  []string
}

// ProductFilter narrows List results. Zero-value fields are ignored.
type ProductFilter struct {
	CategoryID string
	SizeID     string
	ColorID    string
	Featured   *bool
}

type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// Create inserts the product and its image collection in one transaction.
func (s *ProductStore) Create(ctx context.Context, p ProductParams) (*domain.Product, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, store_id, category_id, size_id, color_id, name, supplier, price, quantity, is_featured, is_archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.StoreID, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Supplier, p.Price.String(), p.Quantity, p.IsFeatured, p.IsArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := insertImages(ctx, tx, id, p.ImageURLs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Update rewrites the product row and replaces its image collection. Both
// happen in a single transaction so a failure mid-way leaves the old images
// intact.
func (s *ProductStore) Update(ctx context.Context, id string, p ProductParams) (*domain.Product, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category_id = ?, size_id = ?, color_id = ?, name = ?, supplier = ?,
		    price = ?, quantity = ?, is_featured = ?, is_archived = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Supplier, p.Price.String(), p.Quantity, p.IsFeatured, p.IsArchived, id, p.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Product"}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_images WHERE product_id = ?`, id); err != nil {
		return nil, fmt.Errorf("failed to clear product images: %w", err)
	}
	if err := insertImages(ctx, tx, id, p.ImageURLs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product: %w", err)
	}
	return s.GetByID(ctx, id)
}

func insertImages(ctx context.Context, tx *sql.Tx, productID string, urls []string) error {
	for _, url := range urls {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_images (id, product_id, url) VALUES (?, ?, ?)
		`, uuid.NewString(), productID, url)
		if err != nil {
			return fmt.Errorf("failed to create product image: %w", err)
		}
	}
	return nil
}

// GetByID returns the product with its images and its category, size, and
// color embedded.
func (s *ProductStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.scanProduct(ctx, `
		SELECT id, store_id, category_id, size_id, color_id, name, supplier, price, quantity, is_featured, is_archived, created_at, updated_at
		FROM products WHERE id = ?
	`, id)
	if err != nil || p == nil {
		return p, err
	}
	if err := s.loadRelations(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductStore) scanProduct(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	p := &domain.Product{}
	var price string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID, &p.Name, &p.Supplier,
		&price, &p.Quantity, &p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product price: %w", err)
	}
	return p, nil
}

func (s *ProductStore) loadRelations(ctx context.Context, p *domain.Product) error {
	images, err := s.imagesFor(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Images = images

	p.Category = &domain.Category{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, store_id, billboard_id, name, created_at, updated_at FROM categories WHERE id = ?
	`, p.CategoryID).Scan(
		&p.Category.ID, &p.Category.StoreID, &p.Category.BillboardID, &p.Category.Name,
		&p.Category.CreatedAt, &p.Category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to get product category: %w", err)
	}

	p.Size = &domain.Size{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM sizes WHERE id = ?
	`, p.SizeID).Scan(&p.Size.ID, &p.Size.StoreID, &p.Size.Name, &p.Size.Value, &p.Size.CreatedAt, &p.Size.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to get product size: %w", err)
	}

	p.Color = &domain.Color{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM colors WHERE id = ?
	`, p.ColorID).Scan(&p.Color.ID, &p.Color.StoreID, &p.Color.Name, &p.Color.Value, &p.Color.CreatedAt, &p.Color.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to get product color: %w", err)
	}

	return nil
}

func (s *ProductStore) imagesFor(ctx context.Context, productID string) ([]domain.Image, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, url, created_at FROM product_images
		WHERE product_id = ? ORDER BY rowid ASC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		img := domain.Image{}
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product images: %w", err)
	}
	return images, nil
}

// List returns non-archived products for the store, newest first, with images
// and relations embedded. Filters narrow by category, size, color, and
// featured flag.
func (s *ProductStore) List(ctx context.Context, storeID string, f ProductFilter) ([]*domain.Product, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, store_id, category_id, size_id, color_id, name, supplier, price, quantity, is_featured, is_archived, created_at, updated_at
		FROM products WHERE store_id = ? AND is_archived = 0
	`)
	args := []any{storeID}

	if f.CategoryID != "" {
		query.WriteString(" AND category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.SizeID != "" {
		query.WriteString(" AND size_id = ?")
		args = append(args, f.SizeID)
	}
	if f.ColorID != "" {
		query.WriteString(" AND color_id = ?")
		args = append(args, f.ColorID)
	}
	if f.Featured != nil {
		query.WriteString(" AND is_featured = ?")
		args = append(args, *f.Featured)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	return s.listProducts(ctx, query.String(), args...)
}

// ListByIDs returns the products whose ids appear in ids, with relations
// embedded. Unknown ids are silently absent from the result.
func (s *ProductStore) ListByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return s.listProducts(ctx, `
		SELECT id, store_id, category_id, size_id, color_id, name, supplier, price, quantity, is_featured, is_archived, created_at, updated_at
		FROM products WHERE id IN (`+placeholders+`)
	`, args...)
}

func (s *ProductStore) listProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var result []*domain.Product
	for rows.Next() {
		p := &domain.Product{}
		var price string
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID, &p.Name, &p.Supplier,
			&price, &p.Quantity, &p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product price: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	for _, p := range result {
		if err := s.loadRelations(ctx, p); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Delete removes the product and returns the deleted record. Images cascade;
// an order item still referencing the product surfaces as a foreign-key
// failure for the caller to classify.
func (s *ProductStore) Delete(ctx context.Context, id, storeID string) (*domain.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Product"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return p, nil
}

// DecrementQuantity reduces the on-hand quantity by one. Quantity may go
// negative; the dashboard surfaces that as oversold rather than blocking
// the storefront sale.
func (s *ProductStore) DecrementQuantity(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE products SET quantity = quantity - 1, updated_at = datetime('now') WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to decrement product quantity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{Resource: "Product"}
	}
	return nil
}

func (s *ProductStore) CountByStore(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE store_id = ?`, storeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
