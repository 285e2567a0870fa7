// Show command opens the detail view for one item or request.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show (item|request) <id>",
	Short: "Show the detail view for an item or request",
	Long: `Show resolves the record and its counterpart (the item's owner or the
request's poster) and prints the full detail view.

Example:
  exchange show item 3
  exchange show request 2`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	sel, err := cat.Select(kind, id)
	if err != nil {
		return err
	}
	if sel.State == catalog.StateIdle {
		return fmt.Errorf("%s %d: %w", args[0], id, types.ErrNotFound)
	}
	defer cat.Dismiss()

	if flagJSON {
		return printJSON(sel)
	}
	printSelection(sel)
	return nil
}

// printSelection renders the detail view for whichever entity is selected.
func printSelection(sel catalog.Selection) {
	switch sel.State {
	case catalog.StateViewingItem:
		it := sel.Item
		fmt.Printf("Listing #%d: %s\n", it.ID, it.Title)
		fmt.Printf("  %s / %s, ₹%g", it.Category, it.ListingType, it.Price)
		if it.ListingType == types.ListingRent {
			fmt.Print("/day")
		}
		fmt.Println()
		fmt.Printf("  Condition: %s\n", it.Condition)
		if it.Verified {
			fmt.Println("  Verified listing")
		}
		fmt.Printf("  %s\n", it.Description)
	case catalog.StateViewingRequest:
		r := sel.Request
		fmt.Printf("Request #%d: %s\n", r.ID, r.Title)
		fmt.Printf("  %s / %s, budget ₹%g\n", r.Category, r.RequestType, r.MaxPrice)
		fmt.Printf("  Posted: %s\n", r.CreatedAt)
		fmt.Printf("  %s\n", r.Description)
	}
	if sel.Counterpart != nil {
		u := sel.Counterpart
		verified := ""
		if u.Verified {
			verified = ", verified"
		}
		fmt.Printf("  Contact: %s <%s> (rating %.1f%s)\n", u.Name, u.Email, u.Rating, verified)
	}
}
