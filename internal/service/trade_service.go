package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/request"
	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
)

// TradeService handles trade journal business logic operations.
// Retrieval methods enrich trades with their computed net P&L so the trade
// table can render a P&L column without recomputing client-side.
type TradeService struct {
	tradeRepo *repository.TradeRepository
	calc      *brokerage.Calculator
}

// NewTradeService creates a new TradeService with the provided dependencies.
func NewTradeService(tradeRepo *repository.TradeRepository, calc *brokerage.Calculator) *TradeService {
	return &TradeService{
		tradeRepo: tradeRepo,
		calc:      calc,
	}
}

// GetTrades retrieves all journal entries ordered by date ascending,
// each enriched with its net P&L.
func (s *TradeService) GetTrades() ([]model.TradeResponse, error) {
	trades, err := s.tradeRepo.GetTrades()
	if err != nil {
		return nil, err
	}

	responses := make([]model.TradeResponse, len(trades))
	for i, trade := range trades {
		responses[i] = model.TradeResponse{Trade: trade, NetPnL: s.calc.NetPnL(trade)}
	}

	return responses, nil
}

// GetTrade retrieves a single trade by its ID, enriched with its net P&L.
func (s *TradeService) GetTrade(tradeID string) (model.TradeResponse, error) {
	trade, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return model.TradeResponse{}, err
	}

	return model.TradeResponse{Trade: trade, NetPnL: s.calc.NetPnL(trade)}, nil
}

// BrokerageDetailResponse combines the per-trade fee breakdown with gross
// and net P&L for the trade detail view.
type BrokerageDetailResponse struct {
	TradeID   string                 `json:"tradeId"`
	Breakdown model.BrokerageDetails `json:"breakdown"`
	GrossPnL  float64                `json:"grossPnl"`
	NetPnL    float64                `json:"netPnl"`
}

// GetBrokerageDetail computes the full fee breakdown for a single trade.
func (s *TradeService) GetBrokerageDetail(tradeID string) (BrokerageDetailResponse, error) {
	trade, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return BrokerageDetailResponse{}, err
	}

	return BrokerageDetailResponse{
		TradeID:   trade.ID,
		Breakdown: s.calc.Breakdown(trade),
		GrossPnL:  s.calc.GrossPnL(trade),
		NetPnL:    s.calc.NetPnL(trade),
	}, nil
}

// CreateTrade validates nothing itself (the handler does) and persists a new
// journal entry from the request.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (*model.Trade, error) {
	tradeDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	trade := &model.Trade{
		ID:            uuid.New().String(),
		Date:          tradeDate,
		Ticker:        req.Ticker,
		Instrument:    model.InstrumentType(req.Instrument),
		TradeCategory: model.TradeCategory(req.TradeCategory),
		OptionType:    model.OptionType(req.OptionType),
		StrikePrice:   req.StrikePrice,
		Direction:     model.TradeDirection(req.Direction),
		Size:          req.Size,
		EntryPrice:    req.EntryPrice,
		ExitPrice:     req.ExitPrice,
		StopLoss:      req.StopLoss,
		Target:        req.Target,
		Setup:         req.Setup,
		Notes:         req.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.tradeRepo.InsertTrade(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	return trade, nil
}

// UpdateTrade applies the provided fields to an existing trade and persists
// the result. Absent (nil) fields keep their current values.
func (s *TradeService) UpdateTrade(ctx context.Context, tradeID string, req request.UpdateTradeRequest) (*model.Trade, error) {
	trade, err := s.tradeRepo.GetTrade(tradeID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		tradeDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, err
		}
		trade.Date = tradeDate
	}
	if req.Ticker != nil {
		trade.Ticker = *req.Ticker
	}
	if req.Instrument != nil {
		trade.Instrument = model.InstrumentType(*req.Instrument)
	}
	if req.TradeCategory != nil {
		trade.TradeCategory = model.TradeCategory(*req.TradeCategory)
	}
	if req.OptionType != nil {
		trade.OptionType = model.OptionType(*req.OptionType)
	}
	if req.StrikePrice != nil {
		trade.StrikePrice = *req.StrikePrice
	}
	if req.Direction != nil {
		trade.Direction = model.TradeDirection(*req.Direction)
	}
	if req.Size != nil {
		trade.Size = *req.Size
	}
	if req.EntryPrice != nil {
		trade.EntryPrice = *req.EntryPrice
	}
	if req.ExitPrice != nil {
		trade.ExitPrice = *req.ExitPrice
	}
	if req.StopLoss != nil {
		trade.StopLoss = *req.StopLoss
	}
	if req.Target != nil {
		trade.Target = *req.Target
	}
	if req.Setup != nil {
		trade.Setup = *req.Setup
	}
	if req.Notes != nil {
		trade.Notes = *req.Notes
	}

	if err := s.tradeRepo.UpdateTrade(ctx, &trade); err != nil {
		return nil, err
	}

	return &trade, nil
}

// DeleteTrade removes a trade by its ID.
func (s *TradeService) DeleteTrade(ctx context.Context, tradeID string) error {
	return s.tradeRepo.DeleteTrade(ctx, tradeID)
}
