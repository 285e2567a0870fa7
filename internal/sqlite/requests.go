// Request table access for the SQLite backend.
package sqlite

import (
	"fmt"

	"github.com/nitj-exchange/hub/pkg/types"
)

const requestColumns = "request_id, title, request_type, category, max_price, requester_id, description, created_at"

// Requests returns all requests in insertion order.
func (s *Store) Requests() []types.Request {
	rows, err := s.db.Query("SELECT " + requestColumns + " FROM requests ORDER BY pos")
	if err != nil {
		s.readError("requests", err)
		return nil
	}
	defer rows.Close()

	var out []types.Request
	for rows.Next() {
		var r types.Request
		if err := rows.Scan(
			&r.ID, &r.Title, &r.RequestType, &r.Category, &r.MaxPrice,
			&r.RequesterID, &r.Description, &r.CreatedAt,
		); err != nil {
			s.readError("requests", err)
			return nil
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		s.readError("requests", err)
		return nil
	}
	return out
}

// UpsertRequest creates or updates a request, allocating the next free id
// when request.ID is zero.
func (s *Store) UpsertRequest(request types.Request) (types.Request, error) {
	if request.ID < 0 {
		return types.Request{}, types.ErrInvalidID
	}

	if request.ID == 0 {
		if err := s.db.QueryRow("SELECT COALESCE(MAX(request_id), 0) + 1 FROM requests").Scan(&request.ID); err != nil {
			return types.Request{}, fmt.Errorf("allocate request id: %w", err)
		}
		if err := insertRequest(s.db, request); err != nil {
			return types.Request{}, err
		}
		return request, nil
	}

	res, err := s.db.Exec(
		`UPDATE requests SET title = ?, request_type = ?, category = ?, max_price = ?,
		 requester_id = ?, description = ?, created_at = ?
		 WHERE request_id = ?`,
		request.Title, request.RequestType, request.Category, request.MaxPrice,
		request.RequesterID, request.Description, request.CreatedAt,
		request.ID,
	)
	if err != nil {
		return types.Request{}, fmt.Errorf("update request %d: %w", request.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.Request{}, fmt.Errorf("update request %d: %w", request.ID, err)
	}
	if n == 0 {
		if err := insertRequest(s.db, request); err != nil {
			return types.Request{}, err
		}
	}
	return request, nil
}

// DeleteRequest removes the request with the given id.
func (s *Store) DeleteRequest(id int) error {
	res, err := s.db.Exec("DELETE FROM requests WHERE request_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func insertRequest(db execer, request types.Request) error {
	_, err := db.Exec(
		`INSERT INTO requests (request_id, title, request_type, category, max_price, requester_id, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		request.ID, request.Title, request.RequestType, request.Category, request.MaxPrice,
		request.RequesterID, request.Description, request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request %d: %w", request.ID, err)
	}
	return nil
}
