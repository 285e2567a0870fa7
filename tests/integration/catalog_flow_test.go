// End-to-end catalog flows over the seeded dataset, against both backends.
package integration

import (
	"errors"
	"testing"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

func TestBrowseAndFilter(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, _ := setupCatalog(t, bc)

			all := mustItems(t, cat, types.CategoryAll, "")
			if len(all) != 9 {
				t.Fatalf("expected 9 seeded items, got %d", len(all))
			}
			if all[0].Title != "DSLR Camera" {
				t.Fatalf("expected insertion order, first item is %q", all[0].Title)
			}

			electronics := mustItems(t, cat, types.CategoryElectronics, "")
			for _, it := range electronics {
				if it.Category != types.CategoryElectronics {
					t.Fatalf("category filter leaked %q", it.Title)
				}
			}

			// Search is case-insensitive over title and description.
			hits := mustItems(t, cat, types.CategoryAll, "CAMERA")
			if len(hits) == 0 {
				t.Fatal("expected a hit for CAMERA")
			}
			for _, it := range hits {
				if it.ID == 1 {
					return
				}
			}
			t.Fatal("expected DSLR Camera among search hits")
		})
	}
}

func TestMineListsOnlyCurrentUser(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, _ := setupCatalog(t, bc)
			me := cat.CurrentUser()

			result, err := cat.Mine(catalog.KindItem)
			if err != nil {
				t.Fatalf("Mine items: %v", err)
			}
			mine := result.([]types.Item)
			if len(mine) != 3 {
				t.Fatalf("expected 3 own listings, got %d", len(mine))
			}
			for _, it := range mine {
				if it.OwnerID != me.ID {
					t.Fatalf("item %d not owned by current user", it.ID)
				}
			}

			result, err = cat.Mine(catalog.KindRequest)
			if err != nil {
				t.Fatalf("Mine requests: %v", err)
			}
			requests := result.([]types.Request)
			if len(requests) != 1 {
				t.Fatalf("expected 1 own request, got %d", len(requests))
			}
		})
	}
}

func TestSubmitLifecycle(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, sink := setupCatalog(t, bc)

			created, err := cat.SubmitItem(validItemDraft())
			if err != nil {
				t.Fatalf("SubmitItem: %v", err)
			}
			if created.ID != 10 {
				t.Fatalf("expected allocated id 10, got %d", created.ID)
			}
			if created.OwnerID != cat.CurrentUser().ID {
				t.Fatalf("new listing owner = %d, want current user", created.OwnerID)
			}
			if created.Image != types.DefaultImageURL {
				t.Fatalf("expected placeholder image, got %q", created.Image)
			}
			if got := sink.last(t); got != "success: Listing added successfully!" {
				t.Fatalf("unexpected notification %q", got)
			}

			// Editing keeps identity and owner.
			draft := catalog.DraftFromItem(created)
			draft.Price = "1800"
			updated, err := cat.SubmitItem(draft)
			if err != nil {
				t.Fatalf("SubmitItem update: %v", err)
			}
			if updated.ID != created.ID || updated.OwnerID != created.OwnerID {
				t.Fatalf("update changed identity: %+v", updated)
			}
			if updated.Price != 1800 {
				t.Fatalf("price not updated, got %g", updated.Price)
			}
			if got := sink.last(t); got != "success: Listing updated successfully!" {
				t.Fatalf("unexpected notification %q", got)
			}

			// The update must not change its position in the listing order.
			all := mustItems(t, cat, types.CategoryAll, "")
			if all[len(all)-1].ID != created.ID {
				t.Fatalf("updated listing moved, last id = %d", all[len(all)-1].ID)
			}

			if err := cat.Delete(catalog.KindItem, created.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if got := len(mustItems(t, cat, types.CategoryAll, "")); got != 9 {
				t.Fatalf("expected 9 items after delete, got %d", got)
			}
		})
	}
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, sink := setupCatalog(t, bc)

			draft := validItemDraft()
			draft.Title = "ab"
			_, err := cat.SubmitItem(draft)

			var verr *catalog.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Message != "Title must be at least 3 characters" {
				t.Fatalf("unexpected message %q", verr.Message)
			}
			if got := sink.last(t); got != "error: Title must be at least 3 characters" {
				t.Fatalf("unexpected notification %q", got)
			}
			if got := len(mustItems(t, cat, types.CategoryAll, "")); got != 9 {
				t.Fatalf("rejected draft must not be stored, have %d items", got)
			}
		})
	}
}

func TestRequestLifecycle(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, _ := setupCatalog(t, bc)

			created, err := cat.SubmitRequest(validRequestDraft())
			if err != nil {
				t.Fatalf("SubmitRequest: %v", err)
			}
			if created.ID != 5 {
				t.Fatalf("expected allocated id 5, got %d", created.ID)
			}
			if created.RequesterID != cat.CurrentUser().ID {
				t.Fatalf("new request requester = %d, want current user", created.RequesterID)
			}
			if created.CreatedAt != "Just now" {
				t.Fatalf("expected fresh age label, got %q", created.CreatedAt)
			}

			if err := cat.Delete(catalog.KindRequest, created.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if got := len(mustRequests(t, cat, types.CategoryAll, "")); got != 4 {
				t.Fatalf("expected 4 requests after delete, got %d", got)
			}
		})
	}
}

func TestDeleteUnknownID(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, _ := setupCatalog(t, bc)
			if err := cat.Delete(catalog.KindItem, 404); !errors.Is(err, types.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestResolveRelations(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			cat, _ := setupCatalog(t, bc)

			owner, err := cat.Resolve(catalog.RelationOwner, 1)
			if err != nil {
				t.Fatalf("Resolve owner: %v", err)
			}
			if owner.(types.User).Name != "Priya Sharma" {
				t.Fatalf("unexpected owner %+v", owner)
			}

			chat, err := cat.Resolve(catalog.RelationChat, 1)
			if err != nil {
				t.Fatalf("Resolve chat: %v", err)
			}
			if chat.(types.Chat).BookingID != 101 {
				t.Fatalf("unexpected chat %+v", chat)
			}

			// Items without a booking have no chat.
			if _, err := cat.Resolve(catalog.RelationChat, 2); !errors.Is(err, types.ErrNotFound) {
				t.Fatalf("expected ErrNotFound for item 2 chat, got %v", err)
			}
		})
	}
}
