package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vbonduro/storefront/internal/domain"
)

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, storeID, phone, address string, isPaid bool) (*domain.Order, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, store_id, phone, address, is_paid) VALUES (?, ?, ?, ?, ?)
	`, id, storeID, phone, address, isPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return s.GetByID(ctx, id)
}

// CreateWithItems inserts an unpaid order plus one item per product id in a
// single transaction. A product id that does not exist fails the whole order
// with a foreign-key error.
func (s *OrderStore) CreateWithItems(ctx context.Context, storeID string, productIDs []string) (*domain.Order, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, store_id, phone, address, is_paid) VALUES (?, ?, '', '', 0)
	`, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, productID := range productIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id) VALUES (?, ?, ?)
		`, uuid.NewString(), id, productID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, store_id, phone, address, is_paid, created_at, updated_at FROM orders WHERE id = ?
	`, id).Scan(&o.ID, &o.StoreID, &o.Phone, &o.Address, &o.IsPaid, &o.CreatedAt, &o.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	o.Items, err = s.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderStore) itemsFor(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, product_id FROM order_items WHERE order_id = ? ORDER BY rowid ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		item := domain.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}
	return items, nil
}

func (s *OrderStore) List(ctx context.Context, storeID string) ([]*domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, phone, address, is_paid, created_at, updated_at FROM orders
		WHERE store_id = ? ORDER BY created_at DESC, rowid DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var result []*domain.Order
	for rows.Next() {
		o := &domain.Order{}
		if err := rows.Scan(&o.ID, &o.StoreID, &o.Phone, &o.Address, &o.IsPaid, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, o := range result {
		o.Items, err = s.itemsFor(ctx, o.ID)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *OrderStore) Update(ctx context.Context, id, storeID, phone, address string, isPaid bool) (*domain.Order, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE orders SET phone = ?, address = ?, is_paid = ?, updated_at = datetime('now')
		WHERE id = ? AND store_id = ?
	`, phone, address, isPaid, id, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, &domain.NotFoundError{Resource: "Order"}
	}
	return s.GetByID(ctx, id)
}

func (s *OrderStore) Delete(ctx context.Context, id, storeID string) (*domain.Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.StoreID != storeID {
		return nil, &domain.NotFoundError{Resource: "Order"}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ? AND store_id = ?`, id, storeID); err != nil {
		return nil, err
	}
	return o, nil
}
