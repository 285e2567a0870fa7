// Book command runs the rent/buy confirmation on a listing.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var bookCmd = &cobra.Command{
	Use:   "book <item-id>",
	Short: "Request to rent or buy a listing",
	Long: `Book opens the listing's detail view and confirms a rent or buy
request, which notifies the owner and returns to the idle view.

Example:
  exchange book 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func runBook(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	sel := cat.SelectItem(id)
	if sel.State != catalog.StateViewingItem {
		return fmt.Errorf("item %d: %w", id, types.ErrNotFound)
	}

	if _, err := cat.Advance(catalog.ActionConfirm); err != nil {
		return err
	}
	return nil
}
