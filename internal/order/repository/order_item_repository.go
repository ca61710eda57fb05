package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orthanc/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// InsertMany writes all items of an order inside the caller's transaction.
func (r *MySQLOrderItemRepository) InsertMany(ctx context.Context, tx *sql.Tx, orderID string, items []domain.OrderItem) error {
	query := `INSERT INTO OrderItems (orderId, productId, quantity, price) VALUES (?, ?, ?, ?)`

	for _, item := range items {
		_, err := tx.ExecContext(ctx, query, orderID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return fmt.Errorf("inserting order item for product %d: %w", item.ProductID, err)
		}
	}

	return nil
}

func (r *MySQLOrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, productId, quantity, price
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
