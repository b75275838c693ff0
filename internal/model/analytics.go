package model

import "time"

// BrokerageDetails is the per-trade fee breakdown produced by the brokerage
// calculator. All amounts are non-negative and TotalCharges is the sum of
// the four components.
type BrokerageDetails struct {
	Brokerage      float64 `json:"brokerage"`
	TransactionTax float64 `json:"transactionTax"`
	ExchangeCharge float64 `json:"exchangeCharge"`
	Tax            float64 `json:"tax"`
	TotalCharges   float64 `json:"totalCharges"`
}

// AnalyticsSummary holds portfolio-level statistics reduced over a trade
// collection. All figures are based on net P&L (after charges).
//
// ProfitFactor is nil when there are no losing trades: the ratio is
// undefined, which is distinct from the win-rate case where a zero
// denominator is normalized to 0.
type AnalyticsSummary struct {
	TotalTrades     int      `json:"totalTrades"`
	WinningTrades   int      `json:"winningTrades"`
	LosingTrades    int      `json:"losingTrades"`
	BreakevenTrades int      `json:"breakevenTrades"`
	WinRate         float64  `json:"winRate"`
	TotalPnL        float64  `json:"totalPnL"`
	GrossProfit     float64  `json:"grossProfit"`
	GrossLoss       float64  `json:"grossLoss"`
	ProfitFactor    *float64 `json:"profitFactor"`
	AverageWin      float64  `json:"averageWin"`
	AverageLoss     float64  `json:"averageLoss"`
	AveragePnL      float64  `json:"averagePnL"`
	LargestWin      float64  `json:"largestWin"`
	LargestLoss     float64  `json:"largestLoss"`
}

// CumulativePnlPoint is one point of the cumulative P&L chart series.
// TradeNumber is the 1-based position in date-ascending order and
// CumulativePnL is the running total rounded to 2 decimal places.
type CumulativePnlPoint struct {
	TradeNumber   int     `json:"tradeNumber"`
	CumulativePnL float64 `json:"cumulativePnl"`
	TradeDate     string  `json:"tradeDate"`
	Ticker        string  `json:"ticker"`
}

// MonthlyPerformance is one row of the monthly rollup table.
// Month is a YYYY-MM key; rows are ordered most recent month first.
type MonthlyPerformance struct {
	Month       string  `json:"month"`
	TotalTrades int     `json:"totalTrades"`
	NetPnL      float64 `json:"netPnl"`
	WinRate     float64 `json:"winRate"`
}

// MonthlyPerformanceMaterialized is a persisted monthly rollup row from the
// monthly_performance_materialized table, refreshed by the snapshot service.
type MonthlyPerformanceMaterialized struct {
	ID           string    `json:"id"`
	Month        string    `json:"month"`
	TotalTrades  int       `json:"totalTrades"`
	NetPnL       float64   `json:"netPnl"`
	WinRate      float64   `json:"winRate"`
	CalculatedAt time.Time `json:"calculatedAt"`
}
