package testutil

import (
	"database/sql"
	"testing"

	"github.com/tradejournal/Trade-Journal-Backend/internal/analytics"
	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
	"github.com/tradejournal/Trade-Journal-Backend/internal/service"
)

// NewTestTradeService builds a TradeService wired to the given test
// database with the default brokerage schedule and no notes encryption.
func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db, nil)
	calculator := brokerage.NewCalculator(brokerage.DefaultSchedule())
	return service.NewTradeService(tradeRepo, calculator)
}

// NewTestAnalyticsService builds an AnalyticsService wired to the given
// test database with the default brokerage schedule.
func NewTestAnalyticsService(t *testing.T, db *sql.DB) *service.AnalyticsService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db, nil)
	calculator := brokerage.NewCalculator(brokerage.DefaultSchedule())
	aggregator := analytics.NewAggregator(calculator)
	return service.NewAnalyticsService(tradeRepo, aggregator)
}

// NewTestSnapshotService builds a SnapshotService wired to the given test
// database.
func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	materializedRepo := repository.NewMaterializedRepository(db)
	return service.NewSnapshotService(materializedRepo, NewTestAnalyticsService(t, db))
}
