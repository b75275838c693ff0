package model

import "time"

// TradeDirection indicates whether a trade profits from rising or falling prices.
type TradeDirection string

// Valid trade directions.
const (
	DirectionLong  TradeDirection = "Long"
	DirectionShort TradeDirection = "Short"
)

// Sign returns the P&L multiplier for the direction: +1 for long, -1 for short.
func (d TradeDirection) Sign() float64 {
	if d == DirectionShort {
		return -1
	}
	return 1
}

// InstrumentType identifies the kind of instrument traded.
// It determines which transaction tax applies to the trade.
type InstrumentType string

// Valid instrument types.
const (
	InstrumentStock     InstrumentType = "Stock"
	InstrumentCommodity InstrumentType = "Commodity"
	InstrumentIndex     InstrumentType = "Index"
	InstrumentCrypto    InstrumentType = "Crypto"
)

// TradeCategory identifies the market segment of the trade.
// It selects the transaction-tax rate together with the instrument type.
type TradeCategory string

// Valid trade categories.
const (
	CategoryCash   TradeCategory = "Cash"
	CategoryOption TradeCategory = "Option"
	CategoryFuture TradeCategory = "Future"
)

// OptionType distinguishes call and put option trades.
type OptionType string

// Valid option types.
const (
	OptionCall OptionType = "Call"
	OptionPut  OptionType = "Put"
)

// Trade represents a single journal entry: one completed round trip
// (entry and exit) in an instrument. Prices and size are assumed valid;
// validation happens at the API boundary.
type Trade struct {
	ID            string         `json:"id"`
	Date          time.Time      `json:"date"`
	Ticker        string         `json:"ticker"`
	Instrument    InstrumentType `json:"instrument"`
	TradeCategory TradeCategory  `json:"tradeCategory"`
	OptionType    OptionType     `json:"optionType,omitempty"`
	StrikePrice   float64        `json:"strikePrice,omitempty"`
	Direction     TradeDirection `json:"direction"`
	Size          float64        `json:"size"`
	EntryPrice    float64        `json:"entryPrice"`
	ExitPrice     float64        `json:"exitPrice"`
	StopLoss      float64        `json:"stopLoss,omitempty"`
	Target        float64        `json:"target,omitempty"`
	Setup         string         `json:"setup"`
	Notes         string         `json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`
}

// TradeResponse represents a trade enriched with its computed net P&L
// for API responses. The trade table renders one P&L column per row.
type TradeResponse struct {
	Trade
	NetPnL float64 `json:"netPnl"`
}
