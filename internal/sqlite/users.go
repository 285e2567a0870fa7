// User table access for the SQLite backend. Users are read-only for this
// core except for the distinguished current-user row.
package sqlite

import (
	"database/sql"
	"errors"

	"github.com/nitj-exchange/hub/pkg/types"
)

const userColumns = "user_id, name, email, verified, rating, avatar"

// Users returns all users, including the current user.
func (s *Store) Users() []types.User {
	rows, err := s.db.Query("SELECT " + userColumns + " FROM users ORDER BY user_id")
	if err != nil {
		s.readError("users", err)
		return nil
	}
	defer rows.Close()

	var out []types.User
	for rows.Next() {
		var u types.User
		var verified int
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &verified, &u.Rating, &u.Avatar); err != nil {
			s.readError("users", err)
			return nil
		}
		u.Verified = verified != 0
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		s.readError("users", err)
		return nil
	}
	return out
}

// CurrentUser returns the row flagged as the injected identity.
func (s *Store) CurrentUser() types.User {
	var u types.User
	var verified int
	err := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE is_current = 1 LIMIT 1").
		Scan(&u.ID, &u.Name, &u.Email, &verified, &u.Rating, &u.Avatar)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.readError("current user", err)
		}
		return types.User{}
	}
	u.Verified = verified != 0
	return u
}
