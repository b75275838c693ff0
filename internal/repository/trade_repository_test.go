package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/tradejournal/Trade-Journal-Backend/internal/model"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
	"github.com/tradejournal/Trade-Journal-Backend/internal/secure"
	"github.com/tradejournal/Trade-Journal-Backend/internal/testutil"
)

// TestTradeRepository_NotesEncryption tests at-rest encryption of the
// notes column.
//
// WHY: Notes can hold personal commentary. With a key configured, the
// stored column must be ciphertext while reads keep returning plaintext,
// and rows written before the key was introduced must stay readable.
func TestTradeRepository_NotesEncryption(t *testing.T) {
	newEncryptedRepo := func(t *testing.T) (*repository.TradeRepository, func(id string) string) {
		t.Helper()
		db := testutil.SetupTestDB(t)

		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		encryptor, err := secure.NewEncryptor(key.Encode())
		if err != nil {
			t.Fatalf("Failed to create encryptor: %v", err)
		}

		rawNotes := func(id string) string {
			var stored string
			if err := db.QueryRow("SELECT notes FROM trade WHERE id = ?", id).Scan(&stored); err != nil {
				t.Fatalf("Failed to read stored notes: %v", err)
			}
			return stored
		}

		return repository.NewTradeRepository(db, encryptor), rawNotes
	}

	newTrade := func(notes string) *model.Trade {
		return &model.Trade{
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
			Notes:         notes,
			CreatedAt:     time.Now().UTC(),
		}
	}

	t.Run("stores ciphertext and reads back plaintext", func(t *testing.T) {
		repo, rawNotes := newEncryptedRepo(t)

		trade := newTrade("entered too early")
		if err := repo.InsertTrade(context.Background(), trade); err != nil {
			t.Fatalf("InsertTrade() returned unexpected error: %v", err)
		}

		if stored := rawNotes(trade.ID); stored == "entered too early" {
			t.Error("Expected stored notes to be ciphertext")
		}

		got, err := repo.GetTrade(trade.ID)
		if err != nil {
			t.Fatalf("GetTrade() returned unexpected error: %v", err)
		}
		if got.Notes != "entered too early" {
			t.Errorf("Notes = %q, want plaintext round-trip", got.Notes)
		}
	})

	t.Run("reads pre-encryption plaintext rows after a key is introduced", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		plainRepo := repository.NewTradeRepository(db, nil)
		trade := newTrade("written before the key existed")
		if err := plainRepo.InsertTrade(context.Background(), trade); err != nil {
			t.Fatalf("InsertTrade() returned unexpected error: %v", err)
		}

		var key fernet.Key
		if err := key.Generate(); err != nil {
			t.Fatalf("Failed to generate key: %v", err)
		}
		encryptor, err := secure.NewEncryptor(key.Encode())
		if err != nil {
			t.Fatalf("Failed to create encryptor: %v", err)
		}

		keyedRepo := repository.NewTradeRepository(db, encryptor)
		got, err := keyedRepo.GetTrade(trade.ID)
		if err != nil {
			t.Fatalf("GetTrade() returned unexpected error: %v", err)
		}
		if got.Notes != "written before the key existed" {
			t.Errorf("Notes = %q, want plaintext unchanged", got.Notes)
		}
	})

	t.Run("empty notes stay null", func(t *testing.T) {
		repo, _ := newEncryptedRepo(t)

		trade := newTrade("")
		if err := repo.InsertTrade(context.Background(), trade); err != nil {
			t.Fatalf("InsertTrade() returned unexpected error: %v", err)
		}

		got, err := repo.GetTrade(trade.ID)
		if err != nil {
			t.Fatalf("GetTrade() returned unexpected error: %v", err)
		}
		if got.Notes != "" {
			t.Errorf("Notes = %q, want empty", got.Notes)
		}
	})
}
