package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.DefaultConfig(), seed.Builtin(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenInMemory(t *testing.T) {
	s := openTestStore(t)

	assert.Len(t, s.Items(), 9)
	assert.Len(t, s.Requests(), 4)
	assert.Len(t, s.Users(), 4)
	assert.Len(t, s.Chats(), 1)
	assert.Equal(t, 4, s.CurrentUser().ID)
}

func TestOpenWithDataDir(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.DataDir = t.TempDir()

	s, err := Open(cfg, seed.Builtin(), nil)
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, filepath.Join(cfg.DataDir, "exchange.db"))
	assert.Len(t, s.Items(), 9)
}

func TestItemsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	items := s.Items()
	require.Len(t, items, 9)
	assert.Equal(t, "DSLR Camera", items[0].Title)
	assert.Equal(t, types.ListingRent, items[0].ListingType)
	assert.Equal(t, float64(200), items[0].Price)
	assert.True(t, items[0].Verified)
	assert.Equal(t, "Python Programming Book", items[8].Title)
}

func TestUpsertItemAllocatesID(t *testing.T) {
	s := openTestStore(t)

	stored, err := s.UpsertItem(types.Item{
		Title:       "Desk Fan",
		ListingType: types.ListingSell,
		Category:    types.CategoryMisc,
		Price:       300,
		OwnerID:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, stored.ID)

	items := s.Items()
	assert.Equal(t, "Desk Fan", items[len(items)-1].Title)
}

func TestUpsertItemUpdatePreservesOrder(t *testing.T) {
	s := openTestStore(t)

	_, err := s.UpsertItem(types.Item{
		ID:          3,
		Title:       "Cricket Kit (Full)",
		ListingType: types.ListingRent,
		Category:    types.CategorySports,
		Price:       120,
		OwnerID:     3,
	})
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 9)
	assert.Equal(t, "Cricket Kit (Full)", items[2].Title)
}

func TestUpsertItemNegativeID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.UpsertItem(types.Item{ID: -1})
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestDeleteItem(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.DeleteItem(2))
	assert.Len(t, s.Items(), 8)
	assert.ErrorIs(t, s.DeleteItem(2), types.ErrNotFound)
}

func TestUpsertAndDeleteRequest(t *testing.T) {
	s := openTestStore(t)

	stored, err := s.UpsertRequest(types.Request{
		Title:       "Need a bike pump",
		RequestType: types.RequestRent,
		Category:    types.CategorySports,
		MaxPrice:    100,
		RequesterID: 4,
		CreatedAt:   "Just now",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, stored.ID)

	require.NoError(t, s.DeleteRequest(5))
	assert.ErrorIs(t, s.DeleteRequest(5), types.ErrNotFound)
}

func TestAppendMessage(t *testing.T) {
	s := openTestStore(t)

	msg := types.Message{ID: "m-1", From: types.SenderYou, Text: "Still on for today?", Timestamp: "2:00 PM"}
	require.NoError(t, s.AppendMessage(101, msg))

	chats := s.Chats()
	require.Len(t, chats, 1)
	require.Len(t, chats[0].Messages, 4)
	assert.Equal(t, msg, chats[0].Messages[3])

	assert.ErrorIs(t, s.AppendMessage(999, msg), types.ErrNotFound)
}

func TestTranscriptOrder(t *testing.T) {
	s := openTestStore(t)

	chats := s.Chats()
	require.Len(t, chats, 1)
	msgs := chats[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "Hi Priya, is the DSLR still available?", msgs[0].Text)
	assert.Equal(t, "Perfect, I'll pick it up from the library desk.", msgs[2].Text)
}

func TestCloseIdempotent(t *testing.T) {
	s, err := Open(types.DefaultConfig(), seed.Builtin(), nil)
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
