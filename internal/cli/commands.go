package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newSendCmd creates the send subcommand for text messages
func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text message to a Telegram chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolvedSender()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := client.SendMessage(flagMessage); err != nil {
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("message delivered")

			fmt.Fprintln(cmd.OutOrStdout(), "Message sent successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&flagMessage, "message", "", "Message text to send (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// newSendFileCmd creates the send-file-cmd subcommand for documents
func newSendFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-file-cmd",
		Short: "Send a file to a Telegram chat (up to 50 MB)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolvedSender()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := client.SendDocument(flagFile, flagCaption); err != nil {
				return err
			}
			log.Debug().Str("file", flagFile).Dur("elapsed", time.Since(start)).Msg("document delivered")

			fmt.Fprintf(cmd.OutOrStdout(), "File '%s' sent successfully!\n", flagFile)
			return nil
		},
	}

	addAttachmentFlags(cmd)

	return cmd
}

// newSendPhotoCmd creates the send-photo-cmd subcommand for photos
func newSendPhotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-photo-cmd",
		Short: "Send a photo to a Telegram chat (up to 10 MB)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := resolvedSender()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := client.SendPhoto(flagFile, flagCaption); err != nil {
				return err
			}
			log.Debug().Str("file", flagFile).Dur("elapsed", time.Since(start)).Msg("photo delivered")

			fmt.Fprintf(cmd.OutOrStdout(), "Photo '%s' sent successfully!\n", flagFile)
			return nil
		},
	}

	addAttachmentFlags(cmd)

	return cmd
}

// addAttachmentFlags registers the flags shared by the attachment commands
func addAttachmentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFile, "file", "", "Path of the file to send (required)")
	cmd.Flags().StringVar(&flagCaption, "caption", "", "Optional caption for the attachment")
	_ = cmd.MarkFlagRequired("file")
}

// resolvedSender resolves credentials and constructs the client in one step;
// every subcommand starts here so the precedence chain is applied uniformly.
func resolvedSender() (sender, error) {
	botToken, chatID, err := resolveCredentials()
	if err != nil {
		return nil, err
	}
	return newSender(botToken, chatID)
}
