package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

type ColorStore struct {
	db *sql.DB
}

func NewColorStore(db *sql.DB) *ColorStore {
	return &ColorStore{db: db}
}

func (s *ColorStore) Create(ctx context.Context, storeID, name, value string) (*domain.Color, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO colors (id, store_id, name, value) VALUES (?, ?, ?, ?)
	`, id, storeID, name, value)
	if err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *ColorStore) GetByID(ctx context.Context, id string) (*domain.Color, error) {
	c := &domain.Color{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM colors WHERE id = ?
	`, id).Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get color: %w", err)
	}
	return c, nil
}

func (s *ColorStore) List(ctx context.Context, storeID string) ([]*domain.Color, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM colors
		WHERE store_id = ? ORDER BY created_at DESC, rowid DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var result []*domain.Color
	for rows.Next() {
		c := &domain.Color{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating colors: %w", err)
	}
	return result, nil
}

func (s *ColorStore) Update(ctx context.Context, id, storeID, name, value string) (*domain.Color, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE colors SET name = ?, value = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, name, value, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update color: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Color"}
	}
	return s.GetByID(ctx, id)
}

func (s *ColorStore) Delete(ctx context.Context, id, storeID string) (*domain.Color, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Color"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM colors WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return c, nil
}
