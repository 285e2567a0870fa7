package types

// Item categories. The category set is closed; no other value is ever stored.
const (
	CategoryElectronics = "Electronics"
	CategoryBooks       = "Books"
	CategorySports      = "Sports"
	CategoryMisc        = "Misc"
)

// CategoryAll is the filter selector that matches every category.
// It is a query value only and is never stored on a record.
const CategoryAll = "All"

// Listing types for items.
const (
	ListingRent = "Rent"
	ListingSell = "Sell"
)

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryElectronics: true,
	CategoryBooks:       true,
	CategorySports:      true,
	CategoryMisc:        true,
}

// validListingTypes is the set of recognized listing type values.
var validListingTypes = map[string]bool{
	ListingRent: true,
	ListingSell: true,
}

// ValidCategory reports whether s is one of the declared category literals.
// CategoryAll is not a storable category and is rejected.
func ValidCategory(s string) bool {
	return validCategories[s]
}

// ValidListingType reports whether s is one of the declared listing types.
func ValidListingType(s string) bool {
	return validListingTypes[s]
}

// Item is a catalog listing offered for rent or sale.
// Price is a per-day rate when ListingType is ListingRent.
type Item struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ListingType string  `json:"type"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	OwnerID     int     `json:"ownerId"`
	Image       string  `json:"image"`
	Condition   string  `json:"condition"`
	Verified    bool    `json:"verified"`
	Description string  `json:"description"`
}
