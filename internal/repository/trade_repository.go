package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tradejournal/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
	"github.com/tradejournal/Trade-Journal-Backend/internal/secure"
)

// TradeRepository provides data access methods for the trade table.
// Trade notes are encrypted at rest when an encryptor is configured.
type TradeRepository struct {
	db        *sql.DB
	encryptor *secure.Encryptor
}

// NewTradeRepository creates a new TradeRepository with the provided database
// connection. The encryptor may be nil, in which case notes are stored as
// plaintext.
func NewTradeRepository(db *sql.DB, encryptor *secure.Encryptor) *TradeRepository {
	return &TradeRepository{db: db, encryptor: encryptor}
}

const tradeColumns = `
	id, date, ticker, instrument, trade_category, option_type, strike_price,
	direction, size, entry_price, exit_price, stop_loss, target, setup, notes, created_at
`

// GetTrades retrieves all trades ordered by date ascending, then creation
// time ascending so trades sharing a date keep their entry order.
func (r *TradeRepository) GetTrades() ([]model.Trade, error) {
	query := `
		SELECT ` + tradeColumns + `
		FROM trade
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}

	for rows.Next() {
		trade, err := r.scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

// GetTrade retrieves a single trade by its ID.
// Returns apperrors.ErrTradeNotFound if no trade matches.
func (r *TradeRepository) GetTrade(tradeID string) (model.Trade, error) {
	query := `
		SELECT ` + tradeColumns + `
		FROM trade
		WHERE id = ?
	`

	row := r.db.QueryRow(query, tradeID)
	trade, err := r.scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.Trade{}, err
	}

	return trade, nil
}

// InsertTrade creates a new trade record.
func (r *TradeRepository) InsertTrade(ctx context.Context, trade *model.Trade) error {
	notes, err := r.encryptor.Encrypt(trade.Notes)
	if err != nil {
		return fmt.Errorf("failed to encrypt trade notes: %w", err)
	}

	query := `
		INSERT INTO trade (` + tradeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		trade.ID,
		trade.Date.Format("2006-01-02"),
		trade.Ticker,
		string(trade.Instrument),
		string(trade.TradeCategory),
		nullString(string(trade.OptionType)),
		nullFloat(trade.StrikePrice),
		string(trade.Direction),
		trade.Size,
		trade.EntryPrice,
		trade.ExitPrice,
		nullFloat(trade.StopLoss),
		nullFloat(trade.Target),
		trade.Setup,
		nullString(notes),
		trade.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// UpdateTrade replaces all mutable fields of an existing trade.
// Returns apperrors.ErrTradeNotFound if no trade matches.
func (r *TradeRepository) UpdateTrade(ctx context.Context, trade *model.Trade) error {
	notes, err := r.encryptor.Encrypt(trade.Notes)
	if err != nil {
		return fmt.Errorf("failed to encrypt trade notes: %w", err)
	}

	query := `
		UPDATE trade
		SET date = ?, ticker = ?, instrument = ?, trade_category = ?,
		    option_type = ?, strike_price = ?, direction = ?, size = ?,
		    entry_price = ?, exit_price = ?, stop_loss = ?, target = ?,
		    setup = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		trade.Date.Format("2006-01-02"),
		trade.Ticker,
		string(trade.Instrument),
		string(trade.TradeCategory),
		nullString(string(trade.OptionType)),
		nullFloat(trade.StrikePrice),
		string(trade.Direction),
		trade.Size,
		trade.EntryPrice,
		trade.ExitPrice,
		nullFloat(trade.StopLoss),
		nullFloat(trade.Target),
		trade.Setup,
		nullString(notes),
		trade.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// DeleteTrade removes a trade by its ID.
// Returns apperrors.ErrTradeNotFound if no trade matches.
func (r *TradeRepository) DeleteTrade(ctx context.Context, tradeID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM trade WHERE id = ?", tradeID)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *TradeRepository) scanTrade(row scanner) (model.Trade, error) {
	var trade model.Trade
	var dateStr, createdAtStr string
	var optionType, notes sql.NullString
	var strikePrice, stopLoss, target sql.NullFloat64
	var instrument, category, direction string

	err := row.Scan(
		&trade.ID,
		&dateStr,
		&trade.Ticker,
		&instrument,
		&category,
		&optionType,
		&strikePrice,
		&direction,
		&trade.Size,
		&trade.EntryPrice,
		&trade.ExitPrice,
		&stopLoss,
		&target,
		&trade.Setup,
		&notes,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trade{}, err
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to scan trade table results: %w", err)
	}

	trade.Date, err = ParseTime(dateStr)
	if err != nil || trade.Date.IsZero() {
		return model.Trade{}, fmt.Errorf("failed to parse date: %w", err)
	}

	trade.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || trade.CreatedAt.IsZero() {
		return model.Trade{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	trade.Instrument = model.InstrumentType(instrument)
	trade.TradeCategory = model.TradeCategory(category)
	trade.Direction = model.TradeDirection(direction)
	if optionType.Valid {
		trade.OptionType = model.OptionType(optionType.String)
	}
	if strikePrice.Valid {
		trade.StrikePrice = strikePrice.Float64
	}
	if stopLoss.Valid {
		trade.StopLoss = stopLoss.Float64
	}
	if target.Valid {
		trade.Target = target.Float64
	}
	if notes.Valid {
		trade.Notes = r.encryptor.Decrypt(notes.String)
	}

	return trade, nil
}

// nullString maps "" to NULL for optional text columns.
func nullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

// nullFloat maps 0 to NULL for optional numeric columns. Optional trade
// fields (strike, stop-loss, target) treat zero as unset.
func nullFloat(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}
