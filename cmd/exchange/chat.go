// Chat command reads and appends to booking chats.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [booking-id]",
	Short: "List chats or show one transcript",
	Long: `Chat with no arguments lists every conversation. With a booking id it
prints that chat's transcript.

Example:
  exchange chat
  exchange chat 101`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

var chatSendCmd = &cobra.Command{
	Use:   "send <booking-id> <text>...",
	Short: "Send a message in a chat",
	Long: `Send appends a message from the current user to the chat with the
given booking id. Remaining arguments are joined into the message text.

Example:
  exchange chat send 101 Is the cycle still available?`,
	Args: cobra.MinimumNArgs(2),
	RunE: runChatSend,
}

func init() {
	chatCmd.AddCommand(chatSendCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		chats := cat.Chats()
		if flagJSON {
			return printJSON(chats)
		}
		if len(chats) == 0 {
			fmt.Println("No chats yet")
			return nil
		}
		for _, chat := range chats {
			fmt.Printf("booking #%d (item #%d): %d messages\n", chat.BookingID, chat.ItemID, len(chat.Messages))
		}
		return nil
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	chat, err := cat.ChatByBookingID(id)
	if err != nil {
		return fmt.Errorf("chat %d: %w", id, err)
	}
	if flagJSON {
		return printJSON(chat)
	}
	printTranscript(chat)
	return nil
}

func runChatSend(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	cat, store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	msg, err := cat.SendMessage(id, text)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if flagJSON {
		return printJSON(msg)
	}
	return nil
}
