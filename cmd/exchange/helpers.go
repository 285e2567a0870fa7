// Shared helpers for exchange CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/nitj-exchange/hub/internal/memstore"
	"github.com/nitj-exchange/hub/internal/seed"
	"github.com/nitj-exchange/hub/internal/sqlite"
	"github.com/nitj-exchange/hub/pkg/catalog"
	"github.com/nitj-exchange/hub/pkg/types"
)

// openCatalog builds the configured store backend, seeds it, and wraps it in
// a Catalog with a stdout notifier. The caller must defer store.Close().
func openCatalog() (*catalog.Catalog, types.Store, error) {
	log := newLogger()

	var (
		store types.Store
		err   error
	)
	switch appConfig.Backend {
	case types.BackendSQLite:
		store, err = sqlite.Open(appConfig, seed.Builtin(), log)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
	default:
		store = memstore.NewBuiltin()
	}

	cat, err := catalog.New(store, appConfig,
		catalog.WithLogger(log),
		catalog.WithNotifier(types.NotifierFunc(printNotification)),
	)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return cat, store, nil
}

// newLogger returns a development logger when --verbose is set, otherwise a
// nop logger.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// printNotification renders a catalog signal the way the app shows toasts:
// successes to stdout, failures to stderr.
func printNotification(severity types.Severity, message string) {
	if severity == types.SeverityError {
		fmt.Fprintln(os.Stderr, message)
		return
	}
	fmt.Println(message)
}

// parseKind maps a command argument to an entity kind.
func parseKind(arg string) (catalog.EntityKind, error) {
	switch arg {
	case "item", "items", "listing":
		return catalog.KindItem, nil
	case "request", "requests":
		return catalog.KindRequest, nil
	default:
		return "", fmt.Errorf("unknown kind %q (valid: item, request)", arg)
	}
}

// parseID parses a positive integer id argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printItem renders one listing line.
func printItem(it types.Item) {
	label := ""
	if it.ListingType == types.ListingRent {
		label = "/day"
	}
	fmt.Printf("#%d  %-28s %-11s %-7s ₹%g%s\n", it.ID, it.Title, it.Category, it.ListingType, it.Price, label)
}

// printRequest renders one request line.
func printRequest(r types.Request) {
	fmt.Printf("#%d  %-28s %-11s %-5s up to ₹%g  (%s)\n", r.ID, r.Title, r.Category, r.RequestType, r.MaxPrice, r.CreatedAt)
}

// printTranscript renders a chat transcript.
func printTranscript(chat types.Chat) {
	if len(chat.Messages) == 0 {
		fmt.Println("No messages yet.")
		return
	}
	for _, m := range chat.Messages {
		fmt.Printf("[%s] %s: %s\n", m.Timestamp, m.From, m.Text)
	}
}
