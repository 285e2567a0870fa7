package types

import "errors"

// Store is the single source of truth for the catalog collections and the
// current-user identity. Reads return copies in insertion order; callers must
// re-read after any mutation rather than hold a stale slice.
//
// Mutators do not validate record semantics. Drafts reach a Store only through
// the validation pipeline; the Store accepts any record matching the struct
// shape.
type Store interface {
	// Items returns all items in insertion order.
	Items() []Item

	// Requests returns all requests in insertion order.
	Requests() []Request

	// Users returns all users, including the current user.
	Users() []User

	// Chats returns all chats with their transcripts.
	Chats() []Chat

	// CurrentUser returns the injected current-user identity.
	CurrentUser() User

	// UpsertItem creates or updates an item. When item.ID is zero a new id
	// is allocated. Returns the stored record.
	UpsertItem(item Item) (Item, error)

	// UpsertRequest creates or updates a request. When request.ID is zero a
	// new id is allocated. Returns the stored record.
	UpsertRequest(request Request) (Request, error)

	// DeleteItem removes the item with the given id.
	// Returns ErrNotFound if no item exists with that id.
	DeleteItem(id int) error

	// DeleteRequest removes the request with the given id.
	// Returns ErrNotFound if no request exists with that id.
	DeleteRequest(id int) error

	// AppendMessage appends msg to the transcript of the chat with the given
	// booking id. Returns ErrNotFound if no such chat exists.
	AppendMessage(bookingID int, msg Message) error

	// Close releases backend resources. Idempotent: multiple calls succeed.
	Close() error
}

// Store operation errors.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrInvalidID = errors.New("invalid entity id")
)
