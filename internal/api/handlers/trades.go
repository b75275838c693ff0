package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradejournal/Trade-Journal-Backend/internal/api/request"
	"github.com/tradejournal/Trade-Journal-Backend/internal/api/response"
	"github.com/tradejournal/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradejournal/Trade-Journal-Backend/internal/service"
	"github.com/tradejournal/Trade-Journal-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade journal endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService    *service.TradeService
	snapshotService *service.SnapshotService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependencies.
// The snapshot service keeps the persisted monthly rollups in sync with trade
// mutations and may be nil in tests that do not exercise the snapshot.
func NewTradeHandler(tradeService *service.TradeService, snapshotService *service.SnapshotService) *TradeHandler {
	return &TradeHandler{
		tradeService:    tradeService,
		snapshotService: snapshotService,
	}
}

// AllTrades handles GET requests to retrieve all journal entries.
// Returns trades ordered by date ascending, each with its computed net P&L.
//
// Endpoint: GET /api/trade
// Response: 200 OK with array of TradeResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) AllTrades(w http.ResponseWriter, _ *http.Request) {
	trades, err := h.tradeService.GetTrades()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTrade handles GET requests to retrieve a single trade by ID.
//
// Endpoint: GET /api/trade/{uuid}
// Response: 200 OK with TradeResponse
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	trade, err := h.tradeService.GetTrade(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// GetBrokerageDetail handles GET requests for a trade's fee breakdown.
// Returns the four charge components, their total, and gross/net P&L for
// the trade detail view.
//
// Endpoint: GET /api/trade/{uuid}/brokerage
// Response: 200 OK with BrokerageDetailResponse
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetBrokerageDetail(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	detail, err := h.tradeService.GetBrokerageDetail(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// CreateTrade handles POST requests to create a new journal entry.
// Validates the request body and creates a trade record in the database.
//
// Endpoint: POST /api/trade
// Request Body: CreateTradeRequest
// Response: 201 Created with Trade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create trade", err.Error())
		return
	}

	h.refreshSnapshot(r.Context())

	response.RespondJSON(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to update an existing journal entry.
// Validates the request body and updates the specified trade fields.
//
// Endpoint: PUT /api/trade/{uuid}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with updated Trade
// Error: 400 Bad Request if trade ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if update fails
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(r.Context(), tradeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update trade", err.Error())
		return
	}

	h.refreshSnapshot(r.Context())

	response.RespondJSON(w, http.StatusOK, trade)
}

// DeleteTrade handles DELETE requests to remove a journal entry.
//
// Endpoint: DELETE /api/trade/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	err := h.tradeService.DeleteTrade(r.Context(), tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete trade", err.Error())
		return
	}

	h.refreshSnapshot(r.Context())

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// refreshSnapshot keeps the persisted monthly rollups in sync after a
// mutation. A refresh failure does not fail the mutation; the cron job
// will catch up.
func (h *TradeHandler) refreshSnapshot(ctx context.Context) {
	if h.snapshotService == nil {
		return
	}
	if err := h.snapshotService.RefreshMonthlyPerformance(ctx); err != nil {
		log.Printf("Failed to refresh monthly snapshot after trade mutation: %v", err)
	}
}
