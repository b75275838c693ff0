package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Trade operation errors
	ErrFailedToRetrieveTrades = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade  = errors.New("failed to retrieve trade")

	// Analytics operation errors
	ErrFailedToComputeAnalytics = errors.New("failed to compute analytics")
	ErrFailedToRefreshSnapshot  = errors.New("failed to refresh monthly snapshot")
	ErrFailedToRetrieveSnapshot = errors.New("failed to retrieve monthly snapshot")
)
