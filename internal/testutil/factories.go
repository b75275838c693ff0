package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
)

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	// Simple creation with defaults (a winning long stock trade)
//	trade := testutil.NewTrade().Build(t, db)
//
//	// Customized trade
//	trade := testutil.NewTrade().
//	    WithDate("2023-10-24").
//	    WithPrices(150.50, 120.00).
//	    Short().
//	    Build(t, db)
type TradeBuilder struct {
	trade model.Trade
}

// NewTrade creates a TradeBuilder with sensible defaults.
func NewTrade() *TradeBuilder {
	return &TradeBuilder{
		trade: model.Trade{
			ID:            uuid.New().String(),
			Date:          time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC),
			Ticker:        "RELIANCE",
			Instrument:    model.InstrumentStock,
			TradeCategory: model.CategoryCash,
			Direction:     model.DirectionLong,
			Size:          10,
			EntryPrice:    2300.50,
			ExitPrice:     2325.00,
			Setup:         "Breakout",
			CreatedAt:     time.Now().UTC(),
		},
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.trade.ID = id
	return b
}

// WithDate sets the trade date from a YYYY-MM-DD string.
func (b *TradeBuilder) WithDate(date string) *TradeBuilder {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: invalid trade date " + date)
	}
	b.trade.Date = parsed
	return b
}

// WithTicker sets a custom ticker.
func (b *TradeBuilder) WithTicker(ticker string) *TradeBuilder {
	b.trade.Ticker = ticker
	return b
}

// WithInstrument sets the instrument type.
func (b *TradeBuilder) WithInstrument(instrument model.InstrumentType) *TradeBuilder {
	b.trade.Instrument = instrument
	return b
}

// WithCategory sets the trade category.
func (b *TradeBuilder) WithCategory(category model.TradeCategory) *TradeBuilder {
	b.trade.TradeCategory = category
	return b
}

// WithPrices sets entry and exit prices.
func (b *TradeBuilder) WithPrices(entry, exit float64) *TradeBuilder {
	b.trade.EntryPrice = entry
	b.trade.ExitPrice = exit
	return b
}

// WithSize sets the trade size.
func (b *TradeBuilder) WithSize(size float64) *TradeBuilder {
	b.trade.Size = size
	return b
}

// WithNotes sets the trade notes.
func (b *TradeBuilder) WithNotes(notes string) *TradeBuilder {
	b.trade.Notes = notes
	return b
}

// Short marks the trade as a short.
func (b *TradeBuilder) Short() *TradeBuilder {
	b.trade.Direction = model.DirectionShort
	return b
}

// Build creates the trade in the database and returns it.
// Notes are stored as plaintext; repository-level encryption is covered
// by the secure package tests.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	query := `
		INSERT INTO trade (
			id, date, ticker, instrument, trade_category, option_type, strike_price,
			direction, size, entry_price, exit_price, stop_loss, target, setup, notes, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	trade := b.trade
	_, err := db.Exec(query,
		trade.ID,
		trade.Date.Format("2006-01-02"),
		trade.Ticker,
		string(trade.Instrument),
		string(trade.TradeCategory),
		nullable(string(trade.OptionType)),
		nullableFloat(trade.StrikePrice),
		string(trade.Direction),
		trade.Size,
		trade.EntryPrice,
		trade.ExitPrice,
		nullableFloat(trade.StopLoss),
		nullableFloat(trade.Target),
		trade.Setup,
		nullable(trade.Notes),
		trade.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	return trade
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableFloat(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}
