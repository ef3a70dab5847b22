package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

type SizeStore struct {
	db *sql.DB
}

func NewSizeStore(db *sql.DB) *SizeStore {
	return &SizeStore{db: db}
}

func (s *SizeStore) Create(ctx context.Context, storeID, name, value string) (*domain.Size, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sizes (id, store_id, name, value) VALUES (?, ?, ?, ?)
	`, id, storeID, name, value)
	if err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *SizeStore) GetByID(ctx context.Context, id string) (*domain.Size, error) {
	sz := &domain.Size{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM sizes WHERE id = ?
	`, id).Scan(&sz.ID, &sz.StoreID, &sz.Name, &sz.Value, &sz.CreatedAt, &sz.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get size: %w", err)
	}
	return sz, nil
}

func (s *SizeStore) List(ctx context.Context, storeID string) ([]*domain.Size, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at FROM sizes
		WHERE store_id = ? ORDER BY created_at DESC, rowid DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	defer rows.Close()

	var result []*domain.Size
	for rows.Next() {
		sz := &domain.Size{}
		if err := rows.Scan(&sz.ID, &sz.StoreID, &sz.Name, &sz.Value, &sz.CreatedAt, &sz.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		result = append(result, sz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sizes: %w", err)
	}
	return result, nil
}

func (s *SizeStore) Update(ctx context.Context, id, storeID, name, value string) (*domain.Size, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE sizes SET name = ?, value = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, name, value, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update size: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Size"}
	}
	return s.GetByID(ctx, id)
}

func (s *SizeStore) Delete(ctx context.Context, id, storeID string) (*domain.Size, error) {
	sz, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sz == nil || sz.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Size"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sizes WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return sz, nil
}
