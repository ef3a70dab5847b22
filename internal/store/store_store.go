package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

// StoreStore persists tenant stores. Update and Delete are scoped by both id
// and owning user, so a caller can never mutate a store it does not own even
// if the ownership guard is bypassed.
type StoreStore struct {
	db *sql.DB
}

func NewStoreStore(db *sql.DB) *StoreStore {
	return &StoreStore{db: db}
}

func (s *StoreStore) Create(ctx context.Context, userID, name string) (*domain.Store, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stores (id, user_id, name) VALUES (?, ?, ?)
	`, id, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *StoreStore) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	st := &domain.Store{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at FROM stores WHERE id = ?
	`, id).Scan(&st.ID, &st.UserID, &st.Name, &st.CreatedAt, &st.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return st, nil
}

// GetByIDAndUser returns the store only when it is owned by userID. A nil
// result with a nil error means "not yours or not there"; the caller cannot
// tell which, and must not be able to.
func (s *StoreStore) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Store, error) {
	st := &domain.Store{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at FROM stores WHERE id = ? AND user_id = ?
	`, id, userID).Scan(&st.ID, &st.UserID, &st.Name, &st.CreatedAt, &st.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return st, nil
}

func (s *StoreStore) ListByUser(ctx context.Context, userID string) ([]*domain.Store, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, created_at, updated_at FROM stores
		WHERE user_id = ? ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var result []*domain.Store
	for rows.Next() {
		st := &domain.Store{}
		if err := rows.Scan(&st.ID, &st.UserID, &st.Name, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}
	return result, nil
}

func (s *StoreStore) Update(ctx context.Context, id, userID, name string) (*domain.Store, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE stores SET name = ?, updated_at = datetime('now') WHERE id = ? AND user_id = ?
	`, name, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Store"}
	}
	return s.GetByID(ctx, id)
}

func (s *StoreStore) Delete(ctx context.Context, id, userID string) (*domain.Store, error) {
	st, err := s.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, &domain.NotFoundError{Resource: "Store"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return nil, fmt.Errorf("failed to delete store: %w", err)
	}
	return st, nil
}
