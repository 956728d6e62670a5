package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/models"
)

// LoadPostgres performs a one-shot read of the sales_records table into
// memory. The pool is closed before returning; after startup the process
// never touches the database again, so the in-memory model is the same as
// the CSV path.
func LoadPostgres(ctx context.Context, databaseURL string) ([]models.SalesRecord, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	log.Println("Successfully connected to the database")

	query := `
		SELECT month, product, region, sales
		FROM sales_records
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales records: %w", err)
	}
	defer rows.Close()

	var out []models.SalesRecord
	for rows.Next() {
		var r models.SalesRecord
		if err := rows.Scan(&r.Month, &r.Product, &r.Region, &r.Sales); err != nil {
			return nil, fmt.Errorf("failed to scan sales record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sales records: %w", err)
	}
	return out, nil
}
