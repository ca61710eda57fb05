package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'orthanc_test'; tests skip when it
// is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/orthanc_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id CHAR(36) NOT NULL PRIMARY KEY,
		totalAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		totalItems INT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_status (status),
		INDEX idx_created (createdAt)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId CHAR(36) NOT NULL,
		productId INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId),
		INDEX idx_product (productId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
