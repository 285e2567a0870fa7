// Relationship resolver: maps foreign-key references to their entities.
// A failed lookup is a normal outcome, not an error to surface; callers
// render nothing instead.
package catalog

import (
	"go.uber.org/zap"

	"github.com/nitj-exchange/hub/pkg/types"
)

// Owner resolves the user who owns item. Returns types.ErrNotFound when the
// owner id matches no user; since every stored item should reference an
// existing user, a miss here is a data-integrity fault and is logged for
// operators before being reported as a plain miss.
func (c *Catalog) Owner(item types.Item) (types.User, error) {
	for _, u := range c.store.Users() {
		if u.ID == item.OwnerID {
			return u, nil
		}
	}
	c.log.Warn("item owner does not resolve",
		zap.Int("item_id", item.ID),
		zap.Int("owner_id", item.OwnerID))
	return types.User{}, types.ErrNotFound
}

// Requester resolves the user who posted request. Same miss handling as
// Owner.
func (c *Catalog) Requester(request types.Request) (types.User, error) {
	for _, u := range c.store.Users() {
		if u.ID == request.RequesterID {
			return u, nil
		}
	}
	c.log.Warn("requester does not resolve",
		zap.Int("request_id", request.ID),
		zap.Int("requester_id", request.RequesterID))
	return types.User{}, types.ErrNotFound
}

// ChatForItem resolves the chat thread for item: the first chat in store
// order whose ItemID matches. An item with no chat yet is a normal
// types.ErrNotFound; no substitute chat is ever returned.
func (c *Catalog) ChatForItem(item types.Item) (types.Chat, error) {
	for _, chat := range c.store.Chats() {
		if chat.ItemID == item.ID {
			return chat, nil
		}
	}
	return types.Chat{}, types.ErrNotFound
}

// itemByID finds a stored item by id.
func (c *Catalog) itemByID(id int) (types.Item, error) {
	for _, it := range c.store.Items() {
		if it.ID == id {
			return it, nil
		}
	}
	return types.Item{}, types.ErrNotFound
}

// requestByID finds a stored request by id.
func (c *Catalog) requestByID(id int) (types.Request, error) {
	for _, r := range c.store.Requests() {
		if r.ID == id {
			return r, nil
		}
	}
	return types.Request{}, types.ErrNotFound
}

// chatByBookingID finds a stored chat by booking id.
func (c *Catalog) chatByBookingID(id int) (types.Chat, error) {
	for _, chat := range c.store.Chats() {
		if chat.BookingID == id {
			return chat, nil
		}
	}
	return types.Chat{}, types.ErrNotFound
}
