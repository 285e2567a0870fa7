// Filter engine: computes the visible subset of items or requests for a
// category selector and a free-text query.
package catalog

import (
	"strings"

	"github.com/nitj-exchange/hub/pkg/types"
)

// FilterItems returns the items passing the category selector and query.
// types.CategoryAll matches every category; an empty query matches every
// item. Matching is case-insensitive substring search over title and
// description. The result preserves input order and is recomputed on every
// call; callers must re-filter after any store mutation.
func FilterItems(items []types.Item, category, query string) []types.Item {
	q := strings.ToLower(query)
	out := make([]types.Item, 0, len(items))
	for _, it := range items {
		if !matchesCategory(it.Category, category) {
			continue
		}
		if !matchesQuery(q, it.Title, it.Description) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterRequests is the request-side counterpart of FilterItems.
func FilterRequests(requests []types.Request, category, query string) []types.Request {
	q := strings.ToLower(query)
	out := make([]types.Request, 0, len(requests))
	for _, r := range requests {
		if !matchesCategory(r.Category, category) {
			continue
		}
		if !matchesQuery(q, r.Title, r.Description) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ItemsOwnedBy returns the items whose owner is the given user, in order.
func ItemsOwnedBy(items []types.Item, userID int) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, it := range items {
		if it.OwnerID == userID {
			out = append(out, it)
		}
	}
	return out
}

// RequestsBy returns the requests posted by the given user, in order.
func RequestsBy(requests []types.Request, userID int) []types.Request {
	out := make([]types.Request, 0, len(requests))
	for _, r := range requests {
		if r.RequesterID == userID {
			out = append(out, r)
		}
	}
	return out
}

func matchesCategory(have, want string) bool {
	return want == types.CategoryAll || want == "" || have == want
}

// matchesQuery expects q already lowercased.
func matchesQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
