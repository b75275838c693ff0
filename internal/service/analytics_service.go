package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tradejournal/Trade-Journal-Backend/internal/analytics"
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
)

// AnalyticsService bridges the persistence layer and the pure analytics
// aggregator: it loads the trade collection once and hands it to the
// aggregator's reductions.
type AnalyticsService struct {
	tradeRepo  *repository.TradeRepository
	aggregator *analytics.Aggregator
}

// NewAnalyticsService creates a new AnalyticsService with the provided dependencies.
func NewAnalyticsService(tradeRepo *repository.TradeRepository, aggregator *analytics.Aggregator) *AnalyticsService {
	return &AnalyticsService{
		tradeRepo:  tradeRepo,
		aggregator: aggregator,
	}
}

// GetSummary computes the portfolio-level summary over all journal entries.
func (s *AnalyticsService) GetSummary() (model.AnalyticsSummary, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return model.AnalyticsSummary{}, err
	}

	return s.aggregator.Summary(trades), nil
}

// GetCumulativePnL computes the cumulative P&L chart series over all
// journal entries.
func (s *AnalyticsService) GetCumulativePnL() ([]model.CumulativePnlPoint, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return nil, err
	}

	return s.aggregator.CumulativePnL(trades), nil
}

// GetMonthlyPerformance computes the live monthly rollups over all
// journal entries.
func (s *AnalyticsService) GetMonthlyPerformance() ([]model.MonthlyPerformance, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return nil, err
	}

	return s.aggregator.MonthlyPerformance(trades), nil
}

// DashboardResponse bundles everything the dashboard renders in one payload.
type DashboardResponse struct {
	Summary       model.AnalyticsSummary     `json:"summary"`
	CumulativePnL []model.CumulativePnlPoint `json:"cumulativePnl"`
	Monthly       []model.MonthlyPerformance `json:"monthlyPerformance"`
}

// GetDashboard loads the trade collection once and computes the summary,
// cumulative series and monthly rollups concurrently. The aggregator is
// pure and never mutates its input, so the goroutines can share the slice.
func (s *AnalyticsService) GetDashboard(ctx context.Context) (DashboardResponse, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return DashboardResponse{}, err
	}

	var response DashboardResponse
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		response.Summary = s.aggregator.Summary(trades)
		return nil
	})
	g.Go(func() error {
		response.CumulativePnL = s.aggregator.CumulativePnL(trades)
		return nil
	})
	g.Go(func() error {
		response.Monthly = s.aggregator.MonthlyPerformance(trades)
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardResponse{}, err
	}

	return response, nil
}
