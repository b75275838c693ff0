package brokerage_test

import (
	"math"
	"testing"

	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestSchedule_TransactionTaxRate tests the instrument/category decision table.
//
// WHY: The tax selection has an explicit precedence (crypto exemption beats
// the category rules, option/future category beats the stock cash rule) and
// getting it wrong silently skews every net P&L figure downstream.
func TestSchedule_TransactionTaxRate(t *testing.T) {
	schedule := brokerage.DefaultSchedule()

	tests := []struct {
		name       string
		instrument model.InstrumentType
		category   model.TradeCategory
		want       float64
	}{
		{"stock cash uses intraday equity rate", model.InstrumentStock, model.CategoryCash, schedule.IntradayEquityRate},
		{"stock option uses options rate", model.InstrumentStock, model.CategoryOption, schedule.OptionsRate},
		{"index option uses options rate", model.InstrumentIndex, model.CategoryOption, schedule.OptionsRate},
		{"commodity option uses options rate", model.InstrumentCommodity, model.CategoryOption, schedule.OptionsRate},
		{"stock future uses futures rate", model.InstrumentStock, model.CategoryFuture, schedule.FuturesRate},
		{"index future uses futures rate", model.InstrumentIndex, model.CategoryFuture, schedule.FuturesRate},
		{"commodity cash is untaxed", model.InstrumentCommodity, model.CategoryCash, 0},
		{"index cash is untaxed", model.InstrumentIndex, model.CategoryCash, 0},
		{"crypto cash is exempt", model.InstrumentCrypto, model.CategoryCash, 0},
		{"crypto option is exempt despite category", model.InstrumentCrypto, model.CategoryOption, 0},
		{"crypto future is exempt despite category", model.InstrumentCrypto, model.CategoryFuture, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.TransactionTaxRate(tt.instrument, tt.category)
			if got != tt.want {
				t.Errorf("TransactionTaxRate(%s, %s) = %v, want %v", tt.instrument, tt.category, got, tt.want)
			}
		})
	}
}

func TestCalculator_Breakdown(t *testing.T) {
	calc := brokerage.NewCalculator(brokerage.DefaultSchedule())

	t.Run("total charges equal sum of components", func(t *testing.T) {
		trades := []model.Trade{
			{Instrument: model.InstrumentStock, TradeCategory: model.CategoryCash, Direction: model.DirectionLong, Size: 10, EntryPrice: 2300.50, ExitPrice: 2325.00},
			{Instrument: model.InstrumentIndex, TradeCategory: model.CategoryOption, Direction: model.DirectionShort, Size: 50, EntryPrice: 150.50, ExitPrice: 120.00},
			{Instrument: model.InstrumentCommodity, TradeCategory: model.CategoryFuture, Direction: model.DirectionLong, Size: 3, EntryPrice: 5000, ExitPrice: 5100},
			{Instrument: model.InstrumentCrypto, TradeCategory: model.CategoryCash, Direction: model.DirectionLong, Size: 0.5, EntryPrice: 40000, ExitPrice: 41000},
		}

		for _, trade := range trades {
			details := calc.Breakdown(trade)
			sum := details.Brokerage + details.TransactionTax + details.ExchangeCharge + details.Tax
			if !almostEqual(details.TotalCharges, sum) {
				t.Errorf("TotalCharges = %v, want component sum %v", details.TotalCharges, sum)
			}
		}
	})

	t.Run("stock cash trade has all components positive", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          10,
			EntryPrice:    2300.50,
			ExitPrice:     2325.00,
		}

		details := calc.Breakdown(trade)

		if details.Brokerage <= 0 {
			t.Errorf("Expected positive brokerage, got %v", details.Brokerage)
		}
		if details.TransactionTax <= 0 {
			t.Errorf("Expected positive transaction tax, got %v", details.TransactionTax)
		}
		if details.ExchangeCharge <= 0 {
			t.Errorf("Expected positive exchange charge, got %v", details.ExchangeCharge)
		}
		if details.Tax <= 0 {
			t.Errorf("Expected positive consumption tax, got %v", details.Tax)
		}
	})

	t.Run("flat fee covers entry and exit orders", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          1,
			EntryPrice:    100,
			ExitPrice:     110,
		}

		details := calc.Breakdown(trade)

		want := calc.Schedule().FlatFeePerOrder * 2
		if details.Brokerage != want {
			t.Errorf("Brokerage = %v, want %v", details.Brokerage, want)
		}
	})

	t.Run("transaction tax applies to exit turnover only", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          10,
			EntryPrice:    200,
			ExitPrice:     100,
		}

		details := calc.Breakdown(trade)

		want := 100.0 * 10 * calc.Schedule().IntradayEquityRate
		if !almostEqual(details.TransactionTax, want) {
			t.Errorf("TransactionTax = %v, want %v (exit turnover * rate)", details.TransactionTax, want)
		}
	})

	t.Run("exchange charge applies to total turnover", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentIndex,
			TradeCategory: model.CategoryFuture,
			Direction:     model.DirectionLong,
			Size:          10,
			EntryPrice:    200,
			ExitPrice:     100,
		}

		details := calc.Breakdown(trade)

		want := (200.0*10 + 100.0*10) * calc.Schedule().ExchangeChargeRate
		if !almostEqual(details.ExchangeCharge, want) {
			t.Errorf("ExchangeCharge = %v, want %v (total turnover * rate)", details.ExchangeCharge, want)
		}
	})

	t.Run("consumption tax base excludes transaction tax", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          100,
			EntryPrice:    500,
			ExitPrice:     510,
		}

		details := calc.Breakdown(trade)

		want := (details.Brokerage + details.ExchangeCharge) * calc.Schedule().ConsumptionTaxRate
		if !almostEqual(details.Tax, want) {
			t.Errorf("Tax = %v, want %v (18%% of brokerage + exchange charge)", details.Tax, want)
		}
	})

	t.Run("crypto trades pay no transaction tax regardless of category", func(t *testing.T) {
		for _, category := range []model.TradeCategory{model.CategoryCash, model.CategoryOption, model.CategoryFuture} {
			trade := model.Trade{
				Instrument:    model.InstrumentCrypto,
				TradeCategory: category,
				Direction:     model.DirectionLong,
				Size:          2,
				EntryPrice:    30000,
				ExitPrice:     31000,
			}

			details := calc.Breakdown(trade)
			if details.TransactionTax != 0 {
				t.Errorf("Expected zero transaction tax for crypto %s trade, got %v", category, details.TransactionTax)
			}
		}
	})

	t.Run("zero size trade yields zero turnover charges without error", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          0,
			EntryPrice:    100,
			ExitPrice:     110,
		}

		details := calc.Breakdown(trade)

		if details.TransactionTax != 0 {
			t.Errorf("Expected zero transaction tax for zero-size trade, got %v", details.TransactionTax)
		}
		if details.ExchangeCharge != 0 {
			t.Errorf("Expected zero exchange charge for zero-size trade, got %v", details.ExchangeCharge)
		}
	})
}

func TestCalculator_PnL(t *testing.T) {
	calc := brokerage.NewCalculator(brokerage.DefaultSchedule())

	t.Run("long stock trade gross and net", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          10,
			EntryPrice:    2300.50,
			ExitPrice:     2325.00,
		}

		gross := calc.GrossPnL(trade)
		if !almostEqual(gross, 245.00) {
			t.Errorf("GrossPnL = %v, want 245.00", gross)
		}

		net := calc.NetPnL(trade)
		if net >= gross {
			t.Errorf("Expected net P&L %v to be strictly less than gross %v", net, gross)
		}
	})

	t.Run("losing option trade is more negative net of charges", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentIndex,
			TradeCategory: model.CategoryOption,
			Direction:     model.DirectionLong,
			Size:          50,
			EntryPrice:    150.50,
			ExitPrice:     120.00,
		}

		gross := calc.GrossPnL(trade)
		if !almostEqual(gross, -1525.00) {
			t.Errorf("GrossPnL = %v, want -1525.00", gross)
		}

		net := calc.NetPnL(trade)
		if net >= gross {
			t.Errorf("Expected net P&L %v below gross %v for a losing trade", net, gross)
		}
	})

	t.Run("short direction flips the sign", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionShort,
			Size:          10,
			EntryPrice:    100,
			ExitPrice:     90,
		}

		gross := calc.GrossPnL(trade)
		if !almostEqual(gross, 100) {
			t.Errorf("GrossPnL = %v, want 100 for a profitable short", gross)
		}
	})

	t.Run("net equals gross minus total charges", func(t *testing.T) {
		trade := model.Trade{
			Instrument:    model.InstrumentCommodity,
			TradeCategory: model.CategoryFuture,
			Direction:     model.DirectionLong,
			Size:          5,
			EntryPrice:    4000,
			ExitPrice:     4050,
		}

		want := calc.GrossPnL(trade) - calc.Breakdown(trade).TotalCharges
		if got := calc.NetPnL(trade); !almostEqual(got, want) {
			t.Errorf("NetPnL = %v, want %v", got, want)
		}
	})
}
