// Item table access for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/nitj-exchange/hub/pkg/types"
)

const itemColumns = "item_id, title, listing_type, category, price, owner_id, image, condition, verified, description"

// Items returns all items in insertion order.
func (s *Store) Items() []types.Item {
	rows, err := s.db.Query("SELECT " + itemColumns + " FROM items ORDER BY pos")
	if err != nil {
		s.readError("items", err)
		return nil
	}
	defer rows.Close()

	var out []types.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			s.readError("items", err)
			return nil
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		s.readError("items", err)
		return nil
	}
	return out
}

// UpsertItem creates or updates an item, allocating the next free id when
// item.ID is zero. Updates keep the row's position.
func (s *Store) UpsertItem(item types.Item) (types.Item, error) {
	if item.ID < 0 {
		return types.Item{}, types.ErrInvalidID
	}

	if item.ID == 0 {
		if err := s.db.QueryRow("SELECT COALESCE(MAX(item_id), 0) + 1 FROM items").Scan(&item.ID); err != nil {
			return types.Item{}, fmt.Errorf("allocate item id: %w", err)
		}
		if err := insertItem(s.db, item); err != nil {
			return types.Item{}, err
		}
		return item, nil
	}

	res, err := s.db.Exec(
		`UPDATE items SET title = ?, listing_type = ?, category = ?, price = ?,
		 owner_id = ?, image = ?, condition = ?, verified = ?, description = ?
		 WHERE item_id = ?`,
		item.Title, item.ListingType, item.Category, item.Price,
		item.OwnerID, item.Image, item.Condition, boolToInt(item.Verified), item.Description,
		item.ID,
	)
	if err != nil {
		return types.Item{}, fmt.Errorf("update item %d: %w", item.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return types.Item{}, fmt.Errorf("update item %d: %w", item.ID, err)
	}
	if n == 0 {
		if err := insertItem(s.db, item); err != nil {
			return types.Item{}, err
		}
	}
	return item, nil
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(id int) error {
	res, err := s.db.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx for the insert helpers.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertItem(db execer, item types.Item) error {
	_, err := db.Exec(
		`INSERT INTO items (item_id, title, listing_type, category, price, owner_id, image, condition, verified, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.ListingType, item.Category, item.Price,
		item.OwnerID, item.Image, item.Condition, boolToInt(item.Verified), item.Description,
	)
	if err != nil {
		return fmt.Errorf("insert item %d: %w", item.ID, err)
	}
	return nil
}

func scanItem(rows *sql.Rows) (types.Item, error) {
	var it types.Item
	var verified int
	if err := rows.Scan(
		&it.ID, &it.Title, &it.ListingType, &it.Category, &it.Price,
		&it.OwnerID, &it.Image, &it.Condition, &verified, &it.Description,
	); err != nil {
		return types.Item{}, err
	}
	it.Verified = verified != 0
	return it, nil
}
