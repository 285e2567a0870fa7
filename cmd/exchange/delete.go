// Delete command removes a listing or request.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete (item|request) <id>",
	Short: "Delete a listing or request",
	Long: `Delete removes the record with the given id.

Example:
  exchange delete item 7
  exchange delete request 4`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cat.Delete(kind, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", args[0], id, err)
	}
	return nil
}
