package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/request"
	"github.com/tradejournal/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradejournal/Trade-Journal-Backend/internal/testutil"
)

// TestTradeService_GetTrades tests journal retrieval with P&L enrichment.
//
// WHY: The trade table renders a net P&L column per row, so every returned
// trade must carry the computed figure, and ordering must be stable for the
// cumulative chart downstream.
func TestTradeService_GetTrades(t *testing.T) {
	t.Run("returns empty slice when no trades exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		trades, err := svc.GetTrades()

		if err != nil {
			t.Fatalf("GetTrades() returned unexpected error: %v", err)
		}
		if len(trades) != 0 {
			t.Errorf("Expected empty slice, got %d trades", len(trades))
		}
	})

	t.Run("returns trades ordered by date with net P&L", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		testutil.NewTrade().WithDate("2023-10-25").WithTicker("TCS").Build(t, db)
		testutil.NewTrade().WithDate("2023-10-24").WithTicker("INFY").Build(t, db)

		trades, err := svc.GetTrades()

		if err != nil {
			t.Fatalf("GetTrades() returned unexpected error: %v", err)
		}
		if len(trades) != 2 {
			t.Fatalf("Expected 2 trades, got %d", len(trades))
		}
		if trades[0].Ticker != "INFY" || trades[1].Ticker != "TCS" {
			t.Errorf("Expected date-ascending order [INFY, TCS], got [%s, %s]", trades[0].Ticker, trades[1].Ticker)
		}

		// Default factory trade is a winning long: gross 245, net below it
		// once charges are subtracted.
		if trades[0].NetPnL <= 0 || trades[0].NetPnL >= 245 {
			t.Errorf("Expected net P&L in (0, 245), got %v", trades[0].NetPnL)
		}
	})
}

func TestTradeService_GetBrokerageDetail(t *testing.T) {
	t.Run("returns full breakdown for an existing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		trade := testutil.NewTrade().Build(t, db)

		detail, err := svc.GetBrokerageDetail(trade.ID)

		if err != nil {
			t.Fatalf("GetBrokerageDetail() returned unexpected error: %v", err)
		}
		if detail.TradeID != trade.ID {
			t.Errorf("TradeID = %s, want %s", detail.TradeID, trade.ID)
		}

		breakdown := detail.Breakdown
		sum := breakdown.Brokerage + breakdown.TransactionTax + breakdown.ExchangeCharge + breakdown.Tax
		if breakdown.TotalCharges != sum {
			t.Errorf("TotalCharges = %v, want component sum %v", breakdown.TotalCharges, sum)
		}
		if detail.NetPnL != detail.GrossPnL-breakdown.TotalCharges {
			t.Errorf("NetPnL = %v, want gross %v minus charges %v", detail.NetPnL, detail.GrossPnL, breakdown.TotalCharges)
		}
	})

	t.Run("returns not found for missing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		_, err := svc.GetBrokerageDetail("11111111-1111-1111-1111-111111111111")

		if !errors.Is(err, apperrors.ErrTradeNotFound) {
			t.Errorf("Expected ErrTradeNotFound, got %v", err)
		}
	})
}

func TestTradeService_CreateTrade(t *testing.T) {
	t.Run("persists a trade and assigns an ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		req := request.CreateTradeRequest{
			Date:          "2023-10-24",
			Ticker:        "NIFTY 50",
			Instrument:    "Index",
			TradeCategory: "Option",
			OptionType:    "Call",
			StrikePrice:   19500,
			Direction:     "Long",
			Size:          50,
			EntryPrice:    150.50,
			ExitPrice:     120.00,
			Setup:         "Trend reversal",
			Notes:         "Exited early on weakness",
		}

		trade, err := svc.CreateTrade(context.Background(), req)

		if err != nil {
			t.Fatalf("CreateTrade() returned unexpected error: %v", err)
		}
		if trade.ID == "" {
			t.Error("Expected generated trade ID, got empty string")
		}
		if count := testutil.CountRows(t, db, "trade"); count != 1 {
			t.Errorf("Expected 1 trade row, got %d", count)
		}

		stored, err := svc.GetTrade(trade.ID)
		if err != nil {
			t.Fatalf("GetTrade() returned unexpected error: %v", err)
		}
		if stored.Ticker != "NIFTY 50" || stored.StrikePrice != 19500 {
			t.Errorf("Stored trade fields do not match request: %+v", stored.Trade)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		req := request.CreateTradeRequest{Date: "24-10-2023"}

		if _, err := svc.CreateTrade(context.Background(), req); err == nil {
			t.Error("Expected error for malformed date, got nil")
		}
	})
}

func TestTradeService_UpdateTrade(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		trade := testutil.NewTrade().WithTicker("RELIANCE").Build(t, db)

		exitPrice := 2350.0
		updated, err := svc.UpdateTrade(context.Background(), trade.ID, request.UpdateTradeRequest{
			ExitPrice: &exitPrice,
		})

		if err != nil {
			t.Fatalf("UpdateTrade() returned unexpected error: %v", err)
		}
		if updated.ExitPrice != 2350.0 {
			t.Errorf("ExitPrice = %v, want 2350.0", updated.ExitPrice)
		}
		if updated.Ticker != "RELIANCE" {
			t.Errorf("Ticker changed unexpectedly to %s", updated.Ticker)
		}
	})

	t.Run("returns not found for missing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		_, err := svc.UpdateTrade(context.Background(), "11111111-1111-1111-1111-111111111111", request.UpdateTradeRequest{})

		if !errors.Is(err, apperrors.ErrTradeNotFound) {
			t.Errorf("Expected ErrTradeNotFound, got %v", err)
		}
	})
}

func TestTradeService_DeleteTrade(t *testing.T) {
	t.Run("removes an existing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		trade := testutil.NewTrade().Build(t, db)

		if err := svc.DeleteTrade(context.Background(), trade.ID); err != nil {
			t.Fatalf("DeleteTrade() returned unexpected error: %v", err)
		}
		if count := testutil.CountRows(t, db, "trade"); count != 0 {
			t.Errorf("Expected 0 trade rows after delete, got %d", count)
		}
	})

	t.Run("returns not found for missing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTradeService(t, db)

		err := svc.DeleteTrade(context.Background(), "11111111-1111-1111-1111-111111111111")

		if !errors.Is(err, apperrors.ErrTradeNotFound) {
			t.Errorf("Expected ErrTradeNotFound, got %v", err)
		}
	})
}
