package types

// SenderYou is the sender label for messages written by the current user.
const SenderYou = "You"

// Message is a single entry in a chat transcript.
// ID is a UUID v7 minted when the message is appended; seeded transcripts
// may carry an empty ID. Timestamp is an opaque display label.
type Message struct {
	ID        string `json:"id,omitempty"`
	From      string `json:"from"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Chat is the conversation attached to a booking for an item.
// The transcript is append-only: messages are never reordered or removed.
type Chat struct {
	BookingID int       `json:"bookingId"`
	ItemID    int       `json:"itemId"`
	Messages  []Message `json:"messages"`
}
