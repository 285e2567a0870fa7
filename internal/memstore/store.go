// Package memstore implements the in-memory Store backend. It is the
// authoritative backend for the catalog core: all data lives for the life of
// the process and is reset on restart.
package memstore

import (
	"slices"

	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store holds the catalog collections in insertion order. It performs no
// semantic validation; drafts reach it only through the validation pipeline.
// The catalog core is single-threaded, so no locking is done here.
type Store struct {
	items    []types.Item
	requests []types.Request
	users    []types.User
	chats    []types.Chat
	current  types.User
}

// New creates a Store loaded with the given dataset.
func New(data seed.Data) *Store {
	return &Store{
		items:    data.Items,
		requests: data.Requests,
		users:    data.Users,
		chats:    data.Chats,
		current:  data.CurrentUser,
	}
}

// NewBuiltin creates a Store loaded with the built-in demo dataset.
func NewBuiltin() *Store {
	return New(seed.Builtin())
}

// Items returns a copy of all items in insertion order.
func (s *Store) Items() []types.Item {
	return slices.Clone(s.items)
}

// Requests returns a copy of all requests in insertion order.
func (s *Store) Requests() []types.Request {
	return slices.Clone(s.requests)
}

// Users returns a copy of all users.
func (s *Store) Users() []types.User {
	return slices.Clone(s.users)
}

// Chats returns a deep copy of all chats, transcripts included.
func (s *Store) Chats() []types.Chat {
	out := make([]types.Chat, len(s.chats))
	for i, c := range s.chats {
		out[i] = c
		out[i].Messages = slices.Clone(c.Messages)
	}
	return out
}

// CurrentUser returns the injected current-user identity.
func (s *Store) CurrentUser() types.User {
	return s.current
}

// UpsertItem creates or updates an item. When item.ID is zero the next free
// id is allocated. Updates replace the record in place, preserving insertion
// order.
func (s *Store) UpsertItem(item types.Item) (types.Item, error) {
	if item.ID < 0 {
		return types.Item{}, types.ErrInvalidID
	}
	if item.ID == 0 {
		item.ID = nextID(s.items, func(it types.Item) int { return it.ID })
		s.items = append(s.items, item)
		return item, nil
	}
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return item, nil
		}
	}
	s.items = append(s.items, item)
	return item, nil
}

// UpsertRequest creates or updates a request, allocating an id when zero.
func (s *Store) UpsertRequest(request types.Request) (types.Request, error) {
	if request.ID < 0 {
		return types.Request{}, types.ErrInvalidID
	}
	if request.ID == 0 {
		request.ID = nextID(s.requests, func(r types.Request) int { return r.ID })
		s.requests = append(s.requests, request)
		return request, nil
	}
	for i := range s.requests {
		if s.requests[i].ID == request.ID {
			s.requests[i] = request
			return request, nil
		}
	}
	s.requests = append(s.requests, request)
	return request, nil
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(id int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = slices.Delete(s.items, i, i+1)
			return nil
		}
	}
	return types.ErrNotFound
}

// DeleteRequest removes the request with the given id.
func (s *Store) DeleteRequest(id int) error {
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = slices.Delete(s.requests, i, i+1)
			return nil
		}
	}
	return types.ErrNotFound
}

// AppendMessage appends msg to the chat with the given booking id.
func (s *Store) AppendMessage(bookingID int, msg types.Message) error {
	for i := range s.chats {
		if s.chats[i].BookingID == bookingID {
			s.chats[i].Messages = append(s.chats[i].Messages, msg)
			return nil
		}
	}
	return types.ErrNotFound
}

// Close releases nothing; the in-memory backend has no resources. Idempotent.
func (s *Store) Close() error {
	return nil
}

// nextID returns one past the highest id in use, starting at 1.
func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if id(r) > max {
			max = id(r)
		}
	}
	return max + 1
}
