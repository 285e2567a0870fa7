// Items command lists and searches catalog listings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var (
	itemsCategory string
	itemsSearch   string
	itemsMine     bool
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List catalog listings",
	Long: `Items lists the catalog listings, optionally narrowed by category and a
free-text search over title and description.

Example:
  exchange items
  exchange items --category Sports
  exchange items --search camera
  exchange items --mine`,
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemsCategory, "category", types.CategoryAll, "category filter (All, Electronics, Books, Sports, Misc)")
	itemsCmd.Flags().StringVar(&itemsSearch, "search", "", "free-text search over title and description")
	itemsCmd.Flags().BoolVar(&itemsMine, "mine", false, "only listings owned by the current user")
}

func runItems(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	var result any
	if itemsMine {
		result, err = cat.Mine(catalog.KindItem)
	} else {
		result, err = cat.Query(catalog.KindItem, itemsCategory, itemsSearch)
	}
	if err != nil {
		return fmt.Errorf("query items: %w", err)
	}

	items := result.([]types.Item)
	if flagJSON {
		return printJSON(items)
	}
	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}
	for _, it := range items {
		printItem(it)
	}
	return nil
}
