// Validation pipeline: checks a submitted draft against its field constraints
// in declared order and produces a normalized record, or the first violated
// constraint. One violation is reported at a time so error messages stay
// deterministic.
package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nitj-exchange/hub/pkg/types"
)

// ItemDraft is an unvalidated listing form payload. Every user-typed field
// arrives as a raw string.
type ItemDraft struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	ListingType string `json:"type"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Image       string `json:"image"`
	OwnerID     int    `json:"ownerId,omitempty"`
}

// RequestDraft is an unvalidated request form payload.
type RequestDraft struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	RequestType string `json:"type"`
	Category    string `json:"category"`
	MaxPrice    string `json:"maxPrice"`
	Description string `json:"description"`
	RequesterID int    `json:"requesterId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// ValidationError reports the first violated constraint of a draft. The
// message is user-correctable and surfaced verbatim; it is never a system
// fault.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

func violation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateItemDraft checks d against the listing constraints in declared
// order and returns a normalized Item ready for Store.UpsertItem. Validation
// is idempotent: re-validating a normalized record yields the same record.
func ValidateItemDraft(d ItemDraft, cfg types.Config) (types.Item, error) {
	title, err := checkLength("title", d.Title, 3, 100, "Title")
	if err != nil {
		return types.Item{}, err
	}
	if !types.ValidListingType(d.ListingType) {
		return types.Item{}, violation("type", "Please select a type")
	}
	if !types.ValidCategory(d.Category) {
		return types.Item{}, violation("category", "Please select a category")
	}
	price, err := checkPrice("price", d.Price, cfg.PriceCeiling)
	if err != nil {
		return types.Item{}, err
	}
	condition, err := checkLength("condition", d.Condition, 3, 100, "Condition")
	if err != nil {
		return types.Item{}, err
	}
	description, err := checkLength("description", d.Description, 10, 500, "Description")
	if err != nil {
		return types.Item{}, err
	}
	image := strings.TrimSpace(d.Image)
	if image == "" {
		image = cfg.DefaultImage
	} else if !absoluteURL(image) {
		return types.Item{}, violation("image", "Image must be a valid URL")
	}

	return types.Item{
		ID:          d.ID,
		Title:       title,
		ListingType: d.ListingType,
		Category:    d.Category,
		Price:       price,
		OwnerID:     d.OwnerID,
		Image:       image,
		Condition:   condition,
		Description: description,
	}, nil
}

// ValidateRequestDraft checks d against the request constraints in declared
// order and returns a normalized Request ready for Store.UpsertRequest.
func ValidateRequestDraft(d RequestDraft, cfg types.Config) (types.Request, error) {
	title, err := checkLength("title", d.Title, 3, 100, "Title")
	if err != nil {
		return types.Request{}, err
	}
	if !types.ValidRequestType(d.RequestType) {
		return types.Request{}, violation("type", "Please select a type")
	}
	if !types.ValidCategory(d.Category) {
		return types.Request{}, violation("category", "Please select a category")
	}
	maxPrice, err := checkPrice("maxPrice", d.MaxPrice, cfg.PriceCeiling)
	if err != nil {
		return types.Request{}, err
	}
	description, err := checkLength("description", d.Description, 10, 500, "Description")
	if err != nil {
		return types.Request{}, err
	}

	return types.Request{
		ID:          d.ID,
		Title:       title,
		RequestType: d.RequestType,
		Category:    d.Category,
		MaxPrice:    maxPrice,
		RequesterID: d.RequesterID,
		Description: description,
		CreatedAt:   strings.TrimSpace(d.CreatedAt),
	}, nil
}

// DraftFromItem turns a stored item back into a draft, for edit forms and
// round-trip validation.
func DraftFromItem(item types.Item) ItemDraft {
	return ItemDraft{
		ID:          item.ID,
		Title:       item.Title,
		ListingType: item.ListingType,
		Category:    item.Category,
		Price:       formatPrice(item.Price),
		Condition:   item.Condition,
		Description: item.Description,
		Image:       item.Image,
		OwnerID:     item.OwnerID,
	}
}

// DraftFromRequest turns a stored request back into a draft.
func DraftFromRequest(request types.Request) RequestDraft {
	return RequestDraft{
		ID:          request.ID,
		Title:       request.Title,
		RequestType: request.RequestType,
		Category:    request.Category,
		MaxPrice:    formatPrice(request.MaxPrice),
		Description: request.Description,
		RequesterID: request.RequesterID,
		CreatedAt:   request.CreatedAt,
	}
}

// checkLength trims s and enforces min and max rune counts. The label is the
// field name as shown to the user ("Title", "Description", ...).
func checkLength(field, s string, min, max int, label string) (string, *ValidationError) {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	if n < min {
		return "", violation(field, label+" must be at least "+strconv.Itoa(min)+" characters")
	}
	if n > max {
		return "", violation(field, label+" must be less than "+strconv.Itoa(max)+" characters")
	}
	return trimmed, nil
}

// checkPrice parses s and enforces a strictly positive finite value bounded
// by the ceiling.
func checkPrice(field, s string, ceiling float64) (float64, *ValidationError) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, violation(field, "Price must be a number")
	}
	if v <= 0 {
		return 0, violation(field, "Price must be positive")
	}
	if v > ceiling {
		return 0, violation(field, "Price seems too high")
	}
	return v, nil
}

// absoluteURL reports whether s parses as a well-formed absolute URL.
func absoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

// formatPrice renders a price the way a form field would carry it.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
