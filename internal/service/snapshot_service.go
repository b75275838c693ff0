package service

import (
	"context"
	"log"

	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
)

// SnapshotService maintains the persisted monthly performance snapshot.
// The snapshot is refreshed after trade mutations and on a cron schedule,
// so the stored rollups track the live computation.
type SnapshotService struct {
	materializedRepo *repository.MaterializedRepository
	analyticsService *AnalyticsService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	materializedRepo *repository.MaterializedRepository,
	analyticsService *AnalyticsService,
) *SnapshotService {
	return &SnapshotService{
		materializedRepo: materializedRepo,
		analyticsService: analyticsService,
	}
}

// RefreshMonthlyPerformance recomputes the monthly rollups from the trade
// table and replaces the snapshot contents.
func (s *SnapshotService) RefreshMonthlyPerformance(ctx context.Context) error {
	rows, err := s.analyticsService.GetMonthlyPerformance()
	if err != nil {
		return err
	}

	return s.materializedRepo.ReplaceMonthlyPerformance(ctx, rows)
}

// RefreshMonthlyPerformanceJob is the cron entry point. Errors are logged
// rather than returned because the scheduler has no caller to report to;
// the next scheduled run retries.
func (s *SnapshotService) RefreshMonthlyPerformanceJob() {
	if err := s.RefreshMonthlyPerformance(context.Background()); err != nil {
		log.Printf("Monthly snapshot refresh failed: %v", err)
	}
}

// GetMonthlyPerformanceSnapshot retrieves the persisted monthly rollups.
func (s *SnapshotService) GetMonthlyPerformanceSnapshot() ([]model.MonthlyPerformanceMaterialized, error) {
	return s.materializedRepo.GetMonthlyPerformance()
}
