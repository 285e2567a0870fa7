// Contact command opens the chat flow for an item or request.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

var contactCmd = &cobra.Command{
	Use:   "contact (item|request) <id>",
	Short: "Open the chat view for an item's seller or a request's poster",
	Long: `Contact selects the record and advances into the chat view. For an
item this requires a booking chat to already exist; for a request the
conversation starts empty.

Example:
  exchange contact item 1
  exchange contact request 2`,
	Args: cobra.ExactArgs(2),
	RunE: runContact,
}

func runContact(cmd *cobra.Command, args []string) error {
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

	action := catalog.ActionContactSeller
	if kind == catalog.KindRequest {
		action = catalog.ActionContact
	}
	sel, err = cat.Advance(action)
	if err != nil {
		return err
	}
	if sel.State != catalog.StateChatting {
		return fmt.Errorf("no chat available for %s %d", args[0], id)
	}
	defer cat.Dismiss()

	if flagJSON {
		return printJSON(sel.Chat)
	}
	if sel.Counterpart != nil {
		fmt.Printf("Chatting with %s\n", sel.Counterpart.Name)
	}
	printTranscript(*sel.Chat)
	return nil
}
