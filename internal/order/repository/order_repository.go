package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"orthanc/internal/domain"
	"orthanc/internal/errors"
)

type MySQLOrderRepository struct {
	db       *sql.DB
	itemRepo *MySQLOrderItemRepository
}

func NewMySQLOrderRepository(db *sql.DB, itemRepo *MySQLOrderItemRepository) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db, itemRepo: itemRepo}
}

// Create persists the order together with its items in a single
// transaction. Either everything is written or nothing is.
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	query := `
		INSERT INTO Orders (id, totalAmount, totalItems, status)
		VALUES (?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query, order.ID, order.TotalAmount, order.TotalItems, order.Status)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	if err := r.itemRepo.InsertMany(ctx, tx, order.ID, order.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order transaction: %w", err)
	}

	return r.FindByID(ctx, order.ID)
}

func (r *MySQLOrderRepository) Count(ctx context.Context, status string) (int, error) {
	query := `SELECT COUNT(*) FROM Orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting orders: %w", err)
	}

	return total, nil
}

// FindPage returns a page of orders, most recent first. Ties on createdAt
// break on id so repeated page reads stay deterministic.
func (r *MySQLOrderRepository) FindPage(ctx context.Context, status string, skip, take int) ([]domain.Order, error) {
	var filters []string
	args := []interface{}{}
	if status != "" {
		filters = append(filters, "status = ?")
		args = append(args, status)
	}

	query := `
		SELECT id, totalAmount, totalItems, status, createdAt, updatedAt
		FROM Orders
	`
	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}
	query += `
		ORDER BY createdAt DESC, id DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, take, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders page: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.TotalAmount, &order.TotalItems, &order.Status,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, totalAmount, totalItems, status, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.TotalAmount, &order.TotalItems, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	items, err := r.itemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// UpdateStatus sets only the status column and returns the updated order.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}

	return r.FindByID(ctx, id)
}
