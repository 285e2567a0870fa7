// Respond command runs the respond-with-offer confirmation on a request.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var respondCmd = &cobra.Command{
	Use:   "respond <request-id>",
	Short: "Respond to a request with an offer",
	Long: `Respond opens the request's detail view and confirms an offer, which
notifies that the response was sent and returns to the idle view.

Example:
  exchange respond 2`,
	Args: cobra.ExactArgs(1),
	RunE: runRespond,
}

func runRespond(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	sel := cat.SelectRequest(id)
	if sel.State != catalog.StateViewingRequest {
		return fmt.Errorf("request %d: %w", id, types.ErrNotFound)
	}

	if _, err := cat.Advance(catalog.ActionConfirm); err != nil {
		return err
	}
	return nil
}
