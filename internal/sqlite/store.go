// Package sqlite implements the SQLite Store backend. The database is
// in-memory by default so nothing survives a restart; setting a data
// directory writes a throwaway database file for ad-hoc inspection.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

var _ types.Store = (*Store)(nil)

// Store implements types.Store over an SQLite database. Read errors cannot
// travel through the Store read contract, so they are logged and yield empty
// results; the catalog treats that like any other empty state.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open creates a fresh database with the schema and the given dataset.
// If cfg.DataDir is empty the database lives in memory. An existing database
// file in DataDir is discarded; every session starts from the seed.
func Open(cfg types.Config, data seed.Data, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dsn := ":memory:"
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		path := filepath.Join(cfg.DataDir, "exchange.db")
		_ = os.Remove(path)
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps the in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.load(data); err != nil {
		db.Close()
		return nil, fmt.Errorf("load seed data: %w", err)
	}

	log.Debug("sqlite store opened", zap.String("dsn", dsn))
	return s, nil
}

// load inserts the dataset in one transaction.
func (s *Store) load(data seed.Data) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range data.Users {
		isCurrent := 0
		if u.ID == data.CurrentUser.ID {
			isCurrent = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO users (user_id, name, email, verified, rating, avatar, is_current) VALUES (?, ?, ?, ?, ?, ?, ?)",
			u.ID, u.Name, u.Email, boolToInt(u.Verified), u.Rating, u.Avatar, isCurrent,
		); err != nil {
			return fmt.Errorf("insert user %d: %w", u.ID, err)
		}
	}
	for _, it := range data.Items {
		if err := insertItem(tx, it); err != nil {
			return err
		}
	}
	for _, r := range data.Requests {
		if err := insertRequest(tx, r); err != nil {
			return err
		}
	}
	for _, chat := range data.Chats {
		if _, err := tx.Exec(
			"INSERT INTO chats (booking_id, item_id) VALUES (?, ?)",
			chat.BookingID, chat.ItemID,
		); err != nil {
			return fmt.Errorf("insert chat %d: %w", chat.BookingID, err)
		}
		for seq, m := range chat.Messages {
			if _, err := tx.Exec(
				"INSERT INTO messages (booking_id, seq, msg_id, sender, body, sent_at) VALUES (?, ?, ?, ?, ?, ?)",
				chat.BookingID, seq, m.ID, m.From, m.Text, m.Timestamp,
			); err != nil {
				return fmt.Errorf("insert message %d/%d: %w", chat.BookingID, seq, err)
			}
		}
	}

	return tx.Commit()
}

// Close releases the database. Idempotent: closing a closed store succeeds.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return nil
}

// readError logs a query failure that cannot be surfaced through the Store
// read contract.
func (s *Store) readError(what string, err error) {
	s.log.Error("sqlite read failed", zap.String("query", what), zap.Error(err))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
