package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

type BillboardStore struct {
	db *sql.DB
}

func NewBillboardStore(db *sql.DB) *BillboardStore {
	return &BillboardStore{db: db}
}

func (s *BillboardStore) Create(ctx context.Context, storeID, label, imageURL string) (*domain.Billboard, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO billboards (id, store_id, label, image_url) VALUES (?, ?, ?, ?)
	`, id, storeID, label, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create billboard: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *BillboardStore) GetByID(ctx context.Context, id string) (*domain.Billboard, error) {
	b := &domain.Billboard{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at FROM billboards WHERE id = ?
	`, id).Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billboard: %w", err)
	}
	return b, nil
}

func (s *BillboardStore) List(ctx context.Context, storeID string) ([]*domain.Billboard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at FROM billboards
		WHERE store_id = ? ORDER BY created_at DESC, rowid DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}
	defer rows.Close()

	var result []*domain.Billboard
	for rows.Next() {
		b := &domain.Billboard{}
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan billboard: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billboards: %w", err)
	}
	return result, nil
}

func (s *BillboardStore) Update(ctx context.Context, id, storeID, label, imageURL string) (*domain.Billboard, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE billboards SET label = ?, image_url = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, label, imageURL, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update billboard: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Billboard"}
	}
	return s.GetByID(ctx, id)
}

// Delete removes the billboard and returns the deleted record. A foreign-key
// failure (a category still references it) is returned unwrapped so the
// caller can classify it with IsForeignKeyViolation.
func (s *BillboardStore) Delete(ctx context.Context, id, storeID string) (*domain.Billboard, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Billboard"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM billboards WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return b, nil
}
