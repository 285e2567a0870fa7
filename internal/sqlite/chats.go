// Chat and message table access for the SQLite backend. Transcripts are
// append-only; messages are never updated or removed.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/nitj-exchange/hub/pkg/types"
)

// Chats returns all chats with their transcripts in append order.
func (s *Store) Chats() []types.Chat {
	rows, err := s.db.Query("SELECT booking_id, item_id FROM chats ORDER BY pos")
	if err != nil {
		s.readError("chats", err)
		return nil
	}
	defer rows.Close()

	var out []types.Chat
	for rows.Next() {
		var c types.Chat
		if err := rows.Scan(&c.BookingID, &c.ItemID); err != nil {
			s.readError("chats", err)
			return nil
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		s.readError("chats", err)
		return nil
	}

	for i := range out {
		msgs, err := s.messages(out[i].BookingID)
		if err != nil {
			s.readError("messages", err)
			return nil
		}
		out[i].Messages = msgs
	}
	return out
}

// AppendMessage appends msg to the transcript of the chat with the given
// booking id.
func (s *Store) AppendMessage(bookingID int, msg types.Message) error {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM chats WHERE booking_id = ?", bookingID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check chat %d: %w", bookingID, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO messages (booking_id, seq, msg_id, sender, body, sent_at)
		 SELECT ?, COALESCE(MAX(seq), -1) + 1, ?, ?, ?, ? FROM messages WHERE booking_id = ?`,
		bookingID, msg.ID, msg.From, msg.Text, msg.Timestamp, bookingID,
	)
	if err != nil {
		return fmt.Errorf("append message to chat %d: %w", bookingID, err)
	}
	return nil
}

func (s *Store) messages(bookingID int) ([]types.Message, error) {
	rows, err := s.db.Query(
		"SELECT msg_id, sender, body, sent_at FROM messages WHERE booking_id = ? ORDER BY seq",
		bookingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Message
	for rows.Next() {
		var m types.Message
		if err := rows.Scan(&m.ID, &m.From, &m.Text, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
