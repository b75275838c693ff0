// Package analytics reduces trade collections into portfolio statistics,
// cumulative P&L chart series and monthly rollups. All figures are based on
// net P&L from the brokerage calculator. Functions are pure: inputs are
// never mutated and no state is kept between calls.
package analytics

import (
	"math"
	"sort"

	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
)

// Aggregator computes portfolio-level statistics over trade collections
// using a brokerage calculator for per-trade net P&L.
type Aggregator struct {
	calc *brokerage.Calculator
}

// NewAggregator creates an Aggregator backed by the provided calculator.
func NewAggregator(calc *brokerage.Calculator) *Aggregator {
	return &Aggregator{calc: calc}
}

// Summary reduces a trade collection into an AnalyticsSummary.
//
// Classification uses net P&L: positive is a win, negative a loss, exactly
// zero a breakeven. Breakeven trades contribute to totals but are excluded
// from the win-rate denominator. An empty input yields the zero summary with
// a nil profit factor, never NaN. The result does not depend on input order.
func (a *Aggregator) Summary(trades []model.Trade) model.AnalyticsSummary {
	summary := model.AnalyticsSummary{TotalTrades: len(trades)}
	if len(trades) == 0 {
		return summary
	}

	for _, trade := range trades {
		pnl := a.calc.NetPnL(trade)
		summary.TotalPnL += pnl

		switch {
		case pnl > 0:
			summary.WinningTrades++
			summary.GrossProfit += pnl
			if pnl > summary.LargestWin {
				summary.LargestWin = pnl
			}
		case pnl < 0:
			summary.LosingTrades++
			summary.GrossLoss += pnl
			if -pnl > summary.LargestLoss {
				summary.LargestLoss = -pnl
			}
		default:
			summary.BreakevenTrades++
		}
	}

	summary.WinRate = winRate(summary.WinningTrades, summary.LosingTrades)
	if summary.GrossLoss != 0 {
		profitFactor := math.Abs(summary.GrossProfit / summary.GrossLoss)
		summary.ProfitFactor = &profitFactor
	}
	if summary.WinningTrades > 0 {
		summary.AverageWin = summary.GrossProfit / float64(summary.WinningTrades)
	}
	if summary.LosingTrades > 0 {
		summary.AverageLoss = math.Abs(summary.GrossLoss / float64(summary.LosingTrades))
	}
	summary.AveragePnL = summary.TotalPnL / float64(summary.TotalTrades)

	return summary
}

// CumulativePnL produces the cumulative net P&L series for charting.
//
// Trades are sorted by date ascending with a stable sort, so trades sharing
// a date keep their relative input order. The running total accumulates
// unrounded; only the emitted value is rounded to 2 decimal places, so the
// last point always equals the rounded summary total. An empty input yields
// an empty series.
func (a *Aggregator) CumulativePnL(trades []model.Trade) []model.CumulativePnlPoint {
	if len(trades) == 0 {
		return []model.CumulativePnlPoint{}
	}

	sorted := make([]model.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]model.CumulativePnlPoint, len(sorted))
	var cumulative float64
	for i, trade := range sorted {
		cumulative += a.calc.NetPnL(trade)
		points[i] = model.CumulativePnlPoint{
			TradeNumber:   i + 1,
			CumulativePnL: round2(cumulative),
			TradeDate:     trade.Date.Format("2006-01-02"),
			Ticker:        trade.Ticker,
		}
	}

	return points
}

// MonthlyPerformance buckets trades by calendar month (YYYY-MM) and computes
// per-month trade count, net P&L and win rate. Win rate follows the same
// breakeven-exclusion rule as Summary. Rows are ordered most recent month
// first, matching the dashboard display convention.
func (a *Aggregator) MonthlyPerformance(trades []model.Trade) []model.MonthlyPerformance {
	if len(trades) == 0 {
		return []model.MonthlyPerformance{}
	}

	byMonth := make(map[string][]model.Trade)
	for _, trade := range trades {
		month := trade.Date.Format("2006-01")
		byMonth[month] = append(byMonth[month], trade)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	rows := make([]model.MonthlyPerformance, len(months))
	for i, month := range months {
		var netPnL float64
		var winners, losers int
		for _, trade := range byMonth[month] {
			pnl := a.calc.NetPnL(trade)
			netPnL += pnl
			if pnl > 0 {
				winners++
			} else if pnl < 0 {
				losers++
			}
		}

		rows[i] = model.MonthlyPerformance{
			Month:       month,
			TotalTrades: len(byMonth[month]),
			NetPnL:      netPnL,
			WinRate:     winRate(winners, losers),
		}
	}

	return rows
}

// winRate returns winners over decided trades as a percentage, normalized
// to 0 when no trades are decided.
func winRate(winners, losers int) float64 {
	decided := winners + losers
	if decided == 0 {
		return 0
	}
	return float64(winners) / float64(decided) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
