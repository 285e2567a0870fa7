package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/pkg/types"
)

func TestNewBuiltin(t *testing.T) {
	s := NewBuiltin()

	assert.Len(t, s.Items(), 9)
	assert.Len(t, s.Requests(), 4)
	assert.Len(t, s.Users(), 4)
	assert.Len(t, s.Chats(), 1)
	assert.Equal(t, 4, s.CurrentUser().ID)
}

func TestUpsertItemAllocatesID(t *testing.T) {
	s := NewBuiltin()

	stored, err := s.UpsertItem(types.Item{
		Title:       "Desk Fan",
		ListingType: types.ListingSell,
		Category:    types.CategoryMisc,
		Price:       300,
		OwnerID:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, stored.ID, "new id should be one past the highest seeded id")

	items := s.Items()
	assert.Equal(t, stored, items[len(items)-1], "new item appended in insertion order")
}

func TestUpsertItemUpdatesInPlace(t *testing.T) {
	s := NewBuiltin()

	updated, err := s.UpsertItem(types.Item{
		ID:          3,
		Title:       "Cricket Kit (Full)",
		ListingType: types.ListingRent,
		Category:    types.CategorySports,
		Price:       120,
		OwnerID:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)

	items := s.Items()
	assert.Equal(t, "Cricket Kit (Full)", items[2].Title, "update preserves position")
	assert.Len(t, items, 9)
}

func TestUpsertItemNegativeID(t *testing.T) {
	s := NewBuiltin()
	_, err := s.UpsertItem(types.Item{ID: -1, Title: "Bad"})
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestDeleteItem(t *testing.T) {
	s := NewBuiltin()

	require.NoError(t, s.DeleteItem(2))
	assert.Len(t, s.Items(), 8)
	for _, it := range s.Items() {
		assert.NotEqual(t, 2, it.ID)
	}

	assert.ErrorIs(t, s.DeleteItem(2), types.ErrNotFound)
	assert.ErrorIs(t, s.DeleteItem(999), types.ErrNotFound)
}

func TestDeleteRequest(t *testing.T) {
	s := NewBuiltin()

	require.NoError(t, s.DeleteRequest(4))
	assert.Len(t, s.Requests(), 3)
	assert.ErrorIs(t, s.DeleteRequest(4), types.ErrNotFound)
}

func TestUpsertRequestAllocatesID(t *testing.T) {
	s := New(seed.Data{CurrentUser: types.User{ID: 1}})

	first, err := s.UpsertRequest(types.Request{Title: "Need a bike pump"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := s.UpsertRequest(types.Request{Title: "Need a tent"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestAppendMessage(t *testing.T) {
	s := NewBuiltin()

	msg := types.Message{From: types.SenderYou, Text: "Still on for today?", Timestamp: "2:00 PM"}
	require.NoError(t, s.AppendMessage(101, msg))

	chats := s.Chats()
	require.Len(t, chats, 1)
	assert.Len(t, chats[0].Messages, 4)
	assert.Equal(t, msg, chats[0].Messages[3])

	assert.ErrorIs(t, s.AppendMessage(999, msg), types.ErrNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewBuiltin()

	items := s.Items()
	items[0].Title = "mutated"
	assert.Equal(t, "DSLR Camera", s.Items()[0].Title)

	chats := s.Chats()
	chats[0].Messages[0].Text = "mutated"
	assert.Equal(t, "Hi Priya, is the DSLR still available?", s.Chats()[0].Messages[0].Text)
}

func TestClose(t *testing.T) {
	s := NewBuiltin()
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "close is idempotent")
}
