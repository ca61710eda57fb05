package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orthanc/internal/domain"
	"orthanc/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestOrderItemRepository_InsertMany_And_FindByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	orderID := insertTestOrder(t, db, domain.OrderStatusPending, time.Now())

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	err = repo.InsertMany(context.Background(), tx, orderID, []domain.OrderItem{
		{ProductID: 1, Quantity: 2, Price: 10.00},
		{ProductID: 2, Quantity: 1, Price: 5.50},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, orderID, items[0].OrderID)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 10.00, items[0].Price)
	assert.Equal(t, 2, items[1].ProductID)
}

func TestOrderItemRepository_InsertMany_RollbackLeavesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	orderID := insertTestOrder(t, db, domain.OrderStatusPending, time.Now())

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	err = repo.InsertMany(context.Background(), tx, orderID, []domain.OrderItem{
		{ProductID: 1, Quantity: 1, Price: 10.00},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderItemRepository_FindByOrderID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderItemRepository(db)

	orderID := insertTestOrder(t, db, domain.OrderStatusPending, time.Now())

	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
