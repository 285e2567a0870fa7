package types

// Request types. A request expresses what the requester wants to do.
const (
	RequestBuy  = "Buy"
	RequestRent = "Rent"
)

// validRequestTypes is the set of recognized request type values.
var validRequestTypes = map[string]bool{
	RequestBuy:  true,
	RequestRent: true,
}

// ValidRequestType reports whether s is one of the declared request types.
func ValidRequestType(s string) bool {
	return validRequestTypes[s]
}

// Request is a posted wish for an item another student might have.
// MaxPrice is the upper bound the requester is willing to pay.
// CreatedAt is an opaque display label, not a parseable timestamp.
type Request struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	RequestType string  `json:"type"`
	Category    string  `json:"category"`
	MaxPrice    float64 `json:"maxPrice"`
	RequesterID int     `json:"requesterId"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}
