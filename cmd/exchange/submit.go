// Submit command creates or updates listings and requests from form flags.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nitj-exchange/hub/pkg/catalog"
)

var (
	submitID          int
	submitTitle       string
	submitType        string
	submitCategory    string
	submitPrice       string
	submitCondition   string
	submitDescription string
	submitImage       string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Create or update a listing or request",
}

var submitItemCmd = &cobra.Command{
	Use:   "item",
	Short: "Submit a listing form",
	Long: `Submit item validates the form fields and writes the listing. Pass
--id to update an existing listing; omit it to create a new one owned by the
current user.

Example:
  exchange submit item --title "Desk Lamp" --type Sell --category Misc \
    --price 350 --condition "Like New" --description "Warm LED desk lamp, barely used."`,
	RunE: runSubmitItem,
}

var submitRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Submit a request form",
	Long: `Submit request validates the form fields and posts the request as the
current user. Pass --id to update an existing request.

Example:
  exchange submit request --title "Casio FX-991 calculator" --type Buy \
    --category Electronics --price 800 --description "Needed before the sessional exams."`,
	RunE: runSubmitRequest,
}

func init() {
	for _, cmd := range []*cobra.Command{submitItemCmd, submitRequestCmd} {
		cmd.Flags().IntVar(&submitID, "id", 0, "existing record id to update (0 creates)")
		cmd.Flags().StringVar(&submitTitle, "title", "", "title")
		cmd.Flags().StringVar(&submitType, "type", "", "listing type (Sell, Rent) or request type (Buy, Rent)")
		cmd.Flags().StringVar(&submitCategory, "category", "", "category (Electronics, Books, Sports, Misc)")
		cmd.Flags().StringVar(&submitPrice, "price", "", "price or budget in rupees")
		cmd.Flags().StringVar(&submitDescription, "description", "", "description")
	}
	submitItemCmd.Flags().StringVar(&submitCondition, "condition", "", "condition (New, Like New, Good, Fair)")
	submitItemCmd.Flags().StringVar(&submitImage, "image", "", "image URL (defaults to a placeholder)")

	submitCmd.AddCommand(submitItemCmd)
	submitCmd.AddCommand(submitRequestCmd)
}

func runSubmitItem(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	item, err := cat.SubmitItem(catalog.ItemDraft{
		ID:          submitID,
		Title:       submitTitle,
		ListingType: submitType,
		Category:    submitCategory,
		Price:       submitPrice,
		Condition:   submitCondition,
		Description: submitDescription,
		Image:       submitImage,
	})
	if err != nil {
		return submitError(err)
	}
	if flagJSON {
		return printJSON(item)
	}
	return nil
}

func runSubmitRequest(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	request, err := cat.SubmitRequest(catalog.RequestDraft{
		ID:          submitID,
		Title:       submitTitle,
		RequestType: submitType,
		Category:    submitCategory,
		MaxPrice:    submitPrice,
		Description: submitDescription,
	})
	if err != nil {
		return submitError(err)
	}
	if flagJSON {
		return printJSON(request)
	}
	return nil
}

// submitError collapses validation failures to a short exit error; the
// notifier has already printed the field message.
func submitError(err error) error {
	var verr *catalog.ValidationError
	if errors.As(err, &verr) {
		return errors.New("submission rejected")
	}
	return err
}
