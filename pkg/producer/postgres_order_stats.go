package producer

import (
	"context"
	"database/sql"
	"time"

	"github.com/storely/mission-engine/pkg/errors"
)

// PostgresStoreDirectory lists stores from the platform's stores table.
type PostgresStoreDirectory struct {
	db *sql.DB
}

// NewPostgresStoreDirectory creates a store directory backed by PostgreSQL.
func NewPostgresStoreDirectory(db *sql.DB) *PostgresStoreDirectory {
	return &PostgresStoreDirectory{db: db}
}

// ListStores returns every store together with its owning account.
func (d *PostgresStoreDirectory) ListStores(ctx context.Context) ([]Store, error) {
	query := `
		SELECT id, owner_id
		FROM stores
		ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.ErrDatabaseError("list stores", err)
	}
	defer func() { _ = rows.Close() }()

	var stores []Store
	for rows.Next() {
		var store Store
		if err := rows.Scan(&store.ID, &store.OwnerID); err != nil {
			return nil, errors.ErrDatabaseError("scan store", err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate stores", err)
	}

	return stores, nil
}

// PostgresOrderStats computes order metrics from the platform's orders and
// order_items tables.
type PostgresOrderStats struct {
	db *sql.DB
}

// NewPostgresOrderStats creates an order statistics source backed by
// PostgreSQL.
func NewPostgresOrderStats(db *sql.DB) *PostgresOrderStats {
	return &PostgresOrderStats{db: db}
}

// CompletedRevenue sums the total amounts of completed orders placed in
// [from, to). A store with no qualifying orders yields 0.
func (s *PostgresOrderStats) CompletedRevenue(ctx context.Context, storeID int64, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE store_id = $1
		  AND status = 'completed'
		  AND created_at >= $2
		  AND created_at < $3`

	var revenue float64
	err := s.db.QueryRowContext(ctx, query, storeID, from, to).Scan(&revenue)
	if err != nil {
		return 0, errors.ErrDatabaseError("sum completed revenue", err)
	}

	return revenue, nil
}

// BestSellerUnits returns the unit count of the store's best-selling product
// among completed orders in [from, to). A store with no qualifying orders
// yields 0.
func (s *PostgresOrderStats) BestSellerUnits(ctx context.Context, storeID int64, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(MAX(units), 0)
		FROM (
			SELECT SUM(oi.quantity) AS units
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.store_id = $1
			  AND o.status = 'completed'
			  AND o.created_at >= $2
			  AND o.created_at < $3
			GROUP BY oi.product_id
		) per_product`

	var units float64
	err := s.db.QueryRowContext(ctx, query, storeID, from, to).Scan(&units)
	if err != nil {
		return 0, errors.ErrDatabaseError("compute best seller units", err)
	}

	return units, nil
}
