// Requests command lists and searches student requests.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var (
	requestsCategory string
	requestsSearch   string
	requestsMine     bool
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List student requests",
	Long: `Requests lists what other students are looking for, optionally narrowed
by category and a free-text search.

Example:
  exchange requests
  exchange requests --category Books
  exchange requests --mine`,
	RunE: runRequests,
}

func init() {
	requestsCmd.Flags().StringVar(&requestsCategory, "category", types.CategoryAll, "category filter (All, Electronics, Books, Sports, Misc)")
	requestsCmd.Flags().StringVar(&requestsSearch, "search", "", "free-text search over title and description")
	requestsCmd.Flags().BoolVar(&requestsMine, "mine", false, "only requests posted by the current user")
}

func runRequests(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	var result any
	if requestsMine {
		result, err = cat.Mine(catalog.KindRequest)
	} else {
		result, err = cat.Query(catalog.KindRequest, requestsCategory, requestsSearch)
	}
	if err != nil {
		return fmt.Errorf("query requests: %w", err)
	}

	requests := result.([]types.Request)
	if flagJSON {
		return printJSON(requests)
	}
	if len(requests) == 0 {
		fmt.Println("No requests found")
		return nil
	}
	for _, r := range requests {
		printRequest(r)
	}
	return nil
}
