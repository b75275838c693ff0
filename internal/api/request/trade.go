package request

// CreateTradeRequest is the request body for creating a journal entry.
type CreateTradeRequest struct {
	Date          string  `json:"date"`
	Ticker        string  `json:"ticker"`
	Instrument    string  `json:"instrument"`
	TradeCategory string  `json:"tradeCategory"`
	OptionType    string  `json:"optionType,omitempty"`
	StrikePrice   float64 `json:"strikePrice,omitempty"`
	Direction     string  `json:"direction"`
	Size          float64 `json:"size"`
	EntryPrice    float64 `json:"entryPrice"`
	ExitPrice     float64 `json:"exitPrice"`
	StopLoss      float64 `json:"stopLoss,omitempty"`
	Target        float64 `json:"target,omitempty"`
	Setup         string  `json:"setup"`
	Notes         string  `json:"notes,omitempty"`
}

// UpdateTradeRequest is the request body for updating a journal entry.
// All fields are optional; absent fields keep their current values.
type UpdateTradeRequest struct {
	Date          *string  `json:"date,omitempty"`
	Ticker        *string  `json:"ticker,omitempty"`
	Instrument    *string  `json:"instrument,omitempty"`
	TradeCategory *string  `json:"tradeCategory,omitempty"`
	OptionType    *string  `json:"optionType,omitempty"`
	StrikePrice   *float64 `json:"strikePrice,omitempty"`
	Direction     *string  `json:"direction,omitempty"`
	Size          *float64 `json:"size,omitempty"`
	EntryPrice    *float64 `json:"entryPrice,omitempty"`
	ExitPrice     *float64 `json:"exitPrice,omitempty"`
	StopLoss      *float64 `json:"stopLoss,omitempty"`
	Target        *float64 `json:"target,omitempty"`
	Setup         *string  `json:"setup,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}
