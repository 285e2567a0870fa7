// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"go.uber.org/zap"

	"github.com/nitj-exchange/hub/internal/memstore"
	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/internal/sqlite"
	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

// backendCase names one store backend under test. Every flow test runs
// against both so the backends stay behaviorally interchangeable.
type backendCase struct {
	name string
	open func(t *testing.T) types.Store
}

func backends() []backendCase {
	return []backendCase{
		{
			name: "memory",
			open: func(t *testing.T) types.Store {
				t.Helper()
				return memstore.NewBuiltin()
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) types.Store {
				t.Helper()
				cfg := types.DefaultConfig()
				cfg.Backend = types.BackendSQLite
				cfg.DataDir = t.TempDir()
				store, err := sqlite.Open(cfg, seed.Builtin(), zap.NewNop())
				if err != nil {
					t.Fatalf("open sqlite store: %v", err)
				}
				return store
			},
		},
	}
}

// notifications records catalog signals for assertion.
type notifications struct {
	messages []string
}

func (n *notifications) Notify(severity types.Severity, message string) {
	n.messages = append(n.messages, string(severity)+": "+message)
}

func (n *notifications) last(t *testing.T) string {
	t.Helper()
	if len(n.messages) == 0 {
		t.Fatal("expected at least one notification")
	}
	return n.messages[len(n.messages)-1]
}

// setupCatalog opens the given backend seeded with the builtin dataset and
// wraps it in a Catalog. The store is closed via t.Cleanup.
func setupCatalog(t *testing.T, bc backendCase) (*catalog.Catalog, *notifications) {
	t.Helper()
	store := bc.open(t)
	t.Cleanup(func() { store.Close() })

	sink := &notifications{}
	cat, err := catalog.New(store, types.DefaultConfig(), catalog.WithNotifier(sink))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat, sink
}

// mustItems queries items or fails the test.
func mustItems(t *testing.T, cat *catalog.Catalog, category, query string) []types.Item {
	t.Helper()
	result, err := cat.Query(catalog.KindItem, category, query)
	if err != nil {
		t.Fatalf("Query items: %v", err)
	}
	return result.([]types.Item)
}

// mustRequests queries requests or fails the test.
func mustRequests(t *testing.T, cat *catalog.Catalog, category, query string) []types.Request {
	t.Helper()
	result, err := cat.Query(catalog.KindRequest, category, query)
	if err != nil {
		t.Fatalf("Query requests: %v", err)
	}
	return result.([]types.Request)
}

// validItemDraft returns a draft that passes every form constraint.
func validItemDraft() catalog.ItemDraft {
	return catalog.ItemDraft{
		Title:       "Study Table",
		ListingType: types.ListingSell,
		Category:    types.CategoryMisc,
		Price:       "1500",
		Condition:   "Good",
		Description: "Sturdy wooden study table, fits hostel rooms.",
	}
}

// validRequestDraft returns a request draft that passes validation.
func validRequestDraft() catalog.RequestDraft {
	return catalog.RequestDraft{
		Title:       "Drafting board",
		RequestType: types.RequestBuy,
		Category:    types.CategoryMisc,
		MaxPrice:    "700",
		Description: "Needed for the engineering drawing course.",
	}
}
