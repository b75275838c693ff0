package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
)

// MaterializedRepository provides data access methods for the
// monthly_performance_materialized table. The table holds pre-calculated
// monthly rollups so the dashboard can read them without recomputing over
// the full trade history on each request.
type MaterializedRepository struct {
	db *sql.DB
}

// NewMaterializedRepository creates a new repository instance.
func NewMaterializedRepository(db *sql.DB) *MaterializedRepository {
	return &MaterializedRepository{db: db}
}

// ReplaceMonthlyPerformance atomically replaces the snapshot contents with
// the given rows. The whole table is swapped in one transaction so readers
// never observe a partially refreshed snapshot.
func (r *MaterializedRepository) ReplaceMonthlyPerformance(ctx context.Context, rows []model.MonthlyPerformance) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	//nolint:errcheck // Rollback after commit is a no-op
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM monthly_performance_materialized"); err != nil {
		return fmt.Errorf("failed to clear monthly snapshot: %w", err)
	}

	query := `
		INSERT INTO monthly_performance_materialized (id, month, total_trades, net_pnl, win_rate, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	calculatedAt := time.Now().UTC().Format("2006-01-02 15:04:05")
	for _, row := range rows {
		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			row.Month,
			row.TotalTrades,
			row.NetPnL,
			row.WinRate,
			calculatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert monthly snapshot row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

// GetMonthlyPerformance retrieves the persisted monthly rollups ordered by
// month descending, matching the live computation's display order.
func (r *MaterializedRepository) GetMonthlyPerformance() ([]model.MonthlyPerformanceMaterialized, error) {
	query := `
		SELECT id, month, total_trades, net_pnl, win_rate, calculated_at
		FROM monthly_performance_materialized
		ORDER BY month DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly_performance_materialized: %w", err)
	}
	defer rows.Close()

	records := []model.MonthlyPerformanceMaterialized{}

	for rows.Next() {
		var record model.MonthlyPerformanceMaterialized
		var calculatedAtStr string

		err := rows.Scan(
			&record.ID,
			&record.Month,
			&record.TotalTrades,
			&record.NetPnL,
			&record.WinRate,
			&calculatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly snapshot row: %w", err)
		}

		record.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly snapshot rows: %w", err)
	}

	return records, nil
}
