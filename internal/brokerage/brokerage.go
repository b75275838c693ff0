// Package brokerage models discount-broker transaction costs and computes
// net P&L per trade. All functions are pure: they read only their inputs,
// never mutate them, and are safe for concurrent use.
package brokerage

import (
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
)

// Schedule is a broker rate card. Rates are fractions (0.00025 = 0.025%),
// the flat fee is an absolute currency amount per order. Keeping the rates
// in a struct allows swapping broker schedules without touching the
// calculation logic.
type Schedule struct {
	FlatFeePerOrder    float64 // fixed fee charged once per order (entry and exit)
	IntradayEquityRate float64 // transaction tax on exit turnover, stock cash segment
	OptionsRate        float64 // transaction tax on exit turnover (premium), option segment
	FuturesRate        float64 // transaction tax on exit turnover, futures segment
	ExchangeChargeRate float64 // exchange charge on total turnover (entry + exit)
	ConsumptionTaxRate float64 // GST-style tax on (flat fees + exchange charge)
}

// DefaultSchedule returns a rate card modeled on a typical Indian discount
// broker: flat ₹20 per order, STT 0.025% intraday / 0.0625% options /
// 0.0125% futures on the sell side, NSE transaction charge 0.00325% on
// turnover, 18% GST on brokerage and exchange charges.
func DefaultSchedule() Schedule {
	return Schedule{
		FlatFeePerOrder:    20,
		IntradayEquityRate: 0.00025,
		OptionsRate:        0.000625,
		FuturesRate:        0.000125,
		ExchangeChargeRate: 0.0000325,
		ConsumptionTaxRate: 0.18,
	}
}

// TransactionTaxRate selects the transaction-tax rate for an
// instrument/category pair. Precedence, checked in order:
//
//  1. Crypto instruments are unregulated by this tax: rate 0, regardless
//     of category.
//  2. Option category: options rate (applied to exit turnover, i.e. premium).
//  3. Future category: futures rate.
//  4. Stock in the cash segment: intraday equity rate.
//
// Any other combination is untaxed.
func (s Schedule) TransactionTaxRate(instrument model.InstrumentType, category model.TradeCategory) float64 {
	if instrument == model.InstrumentCrypto {
		return 0
	}

	switch category {
	case model.CategoryOption:
		return s.OptionsRate
	case model.CategoryFuture:
		return s.FuturesRate
	case model.CategoryCash:
		if instrument == model.InstrumentStock {
			return s.IntradayEquityRate
		}
	}

	return 0
}

// Calculator computes fee breakdowns and P&L figures against a fixed Schedule.
type Calculator struct {
	schedule Schedule
}

// NewCalculator creates a Calculator using the provided rate schedule.
func NewCalculator(schedule Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Schedule returns the rate card the calculator was built with.
func (c *Calculator) Schedule() Schedule {
	return c.schedule
}

// Breakdown computes the detailed fee breakdown for a single trade.
//
// Charges:
//   - Brokerage: flat fee times two (one entry order, one exit order).
//   - Transaction tax: rate from TransactionTaxRate applied to exit turnover only.
//   - Exchange charge: flat rate on total turnover (entry + exit).
//   - Tax: consumption tax on (brokerage + exchange charge); transaction tax
//     is excluded from the base.
//
// Preconditions: size and prices are non-negative and enums are valid; the
// caller validates. Zero-size or zero-price trades yield zero-cost
// quantities, never an error.
func (c *Calculator) Breakdown(trade model.Trade) model.BrokerageDetails {
	s := c.schedule

	entryTurnover := trade.EntryPrice * trade.Size
	exitTurnover := trade.ExitPrice * trade.Size
	totalTurnover := entryTurnover + exitTurnover

	fees := s.FlatFeePerOrder * 2

	transactionTax := exitTurnover * s.TransactionTaxRate(trade.Instrument, trade.TradeCategory)
	exchangeCharge := totalTurnover * s.ExchangeChargeRate
	tax := (fees + exchangeCharge) * s.ConsumptionTaxRate

	return model.BrokerageDetails{
		Brokerage:      fees,
		TransactionTax: transactionTax,
		ExchangeCharge: exchangeCharge,
		Tax:            tax,
		TotalCharges:   fees + transactionTax + exchangeCharge + tax,
	}
}

// GrossPnL computes profit or loss from price movement alone, before charges.
// Long trades gain when price rises, short trades when it falls.
func (c *Calculator) GrossPnL(trade model.Trade) float64 {
	return (trade.ExitPrice - trade.EntryPrice) * trade.Size * trade.Direction.Sign()
}

// NetPnL computes gross P&L minus total charges. No rounding is applied;
// presentation decides how to format the figure.
func (c *Calculator) NetPnL(trade model.Trade) float64 {
	return c.GrossPnL(trade) - c.Breakdown(trade).TotalCharges
}
