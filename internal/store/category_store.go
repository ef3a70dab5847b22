package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(ctx context.Context, storeID, billboardID, name string) (*domain.Category, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, store_id, billboard_id, name) VALUES (?, ?, ?, ?)
	`, id, storeID, billboardID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the category with its billboard embedded, matching what the
// storefront needs to render a category page.
func (s *CategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c := &domain.Category{Billboard: &domain.Billboard{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.id = ?
	`, id).Scan(
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&c.Billboard.ID, &c.Billboard.StoreID, &c.Billboard.Label, &c.Billboard.ImageURL,
		&c.Billboard.CreatedAt, &c.Billboard.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (s *CategoryStore) List(ctx context.Context, storeID string) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, billboard_id, name, created_at, updated_at FROM categories
		WHERE store_id = ? ORDER BY created_at DESC, rowid DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var result []*domain.Category
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return result, nil
}

func (s *CategoryStore) Update(ctx context.Context, id, storeID, billboardID, name string) (*domain.Category, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET billboard_id = ?, name = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, billboardID, name, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Category"}
	}
	return s.GetByID(ctx, id)
}

func (s *CategoryStore) Delete(ctx context.Context, id, storeID string) (*domain.Category, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Category"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryStore) CountByStore(ctx context.Context, storeID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE store_id = ?`, storeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}
