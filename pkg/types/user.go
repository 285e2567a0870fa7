package types

// User is a registered member of the campus exchange.
// Rating is on a 0-5 scale.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Verified bool    `json:"verified"`
	Rating   float64 `json:"rating"`
	Avatar   string  `json:"avatar"`
}
