package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/request"
)

// ValidTradeDirection contains the allowed trade direction values.
var ValidTradeDirection = map[string]bool{
	"Long": true, "Short": true,
}

// ValidInstrumentType contains the allowed instrument type values.
var ValidInstrumentType = map[string]bool{
	"Stock": true, "Commodity": true, "Index": true, "Crypto": true,
}

// ValidTradeCategory contains the allowed trade category values.
var ValidTradeCategory = map[string]bool{
	"Cash": true, "Option": true, "Future": true,
}

// ValidOptionType contains the allowed option type values.
var ValidOptionType = map[string]bool{
	"Call": true, "Put": true,
}

// ValidateCreateTrade validates a trade creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - date: Must be in YYYY-MM-DD format
//   - ticker: Must be non-empty
//   - instrument: Must be one of: Stock, Commodity, Index, Crypto
//   - tradeCategory: Must be one of: Cash, Option, Future
//   - direction: Must be one of: Long, Short
//   - size: Must be positive (fractional sizes are allowed for crypto)
//   - entryPrice, exitPrice: Must be non-negative
//   - optionType, strikePrice: Required when tradeCategory is Option
//
// The computation core assumes well-formed trades, so the closed enums are
// enforced here at the boundary rather than in the calculator.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}

	validateEnums(errors, req.Instrument, req.TradeCategory, req.Direction, req.OptionType)

	if req.TradeCategory == "Option" {
		if strings.TrimSpace(req.OptionType) == "" {
			errors["optionType"] = "optionType is required for option trades"
		}
		if req.StrikePrice <= 0 {
			errors["strikePrice"] = "strikePrice must be positive for option trades"
		}
	}

	if req.Size <= 0 {
		errors["size"] = "size must be positive"
	}
	if req.EntryPrice < 0 {
		errors["entryPrice"] = "entryPrice cannot be negative"
	}
	if req.ExitPrice < 0 {
		errors["exitPrice"] = "exitPrice cannot be negative"
	}

	if strings.TrimSpace(req.Setup) == "" {
		errors["setup"] = "setup is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTrade validates a trade update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Ticker != nil && strings.TrimSpace(*req.Ticker) == "" {
		errors["ticker"] = "ticker is required"
	}
	if req.Instrument != nil && !ValidInstrumentType[*req.Instrument] {
		errors["instrument"] = fmt.Sprintf("invalid instrument: %s", *req.Instrument)
	}
	if req.TradeCategory != nil && !ValidTradeCategory[*req.TradeCategory] {
		errors["tradeCategory"] = fmt.Sprintf("invalid tradeCategory: %s", *req.TradeCategory)
	}
	if req.Direction != nil && !ValidTradeDirection[*req.Direction] {
		errors["direction"] = fmt.Sprintf("invalid direction: %s", *req.Direction)
	}
	if req.OptionType != nil && *req.OptionType != "" && !ValidOptionType[*req.OptionType] {
		errors["optionType"] = fmt.Sprintf("invalid optionType: %s", *req.OptionType)
	}
	if req.Size != nil && *req.Size <= 0 {
		errors["size"] = "size must be positive"
	}
	if req.EntryPrice != nil && *req.EntryPrice < 0 {
		errors["entryPrice"] = "entryPrice cannot be negative"
	}
	if req.ExitPrice != nil && *req.ExitPrice < 0 {
		errors["exitPrice"] = "exitPrice cannot be negative"
	}
	if req.Setup != nil && strings.TrimSpace(*req.Setup) == "" {
		errors["setup"] = "setup is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateEnums(errors map[string]string, instrument, category, direction, optionType string) {
	if strings.TrimSpace(instrument) == "" {
		errors["instrument"] = "instrument is required"
	} else if !ValidInstrumentType[instrument] {
		errors["instrument"] = fmt.Sprintf("invalid instrument: %s", instrument)
	}

	if strings.TrimSpace(category) == "" {
		errors["tradeCategory"] = "tradeCategory is required"
	} else if !ValidTradeCategory[category] {
		errors["tradeCategory"] = fmt.Sprintf("invalid tradeCategory: %s", category)
	}

	if strings.TrimSpace(direction) == "" {
		errors["direction"] = "direction is required"
	} else if !ValidTradeDirection[direction] {
		errors["direction"] = fmt.Sprintf("invalid direction: %s", direction)
	}

	if optionType != "" && !ValidOptionType[optionType] {
		errors["optionType"] = fmt.Sprintf("invalid optionType: %s", optionType)
	}
}
