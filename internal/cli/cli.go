package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sangmank/telegram-notifier/internal/logger"
	"github.com/sangmank/telegram-notifier/internal/telegram"
)

// Exit codes, one per failure kind so scripts can branch on the outcome.
const (
	ExitSuccess            = 0
	ExitError              = 1
	ExitMissingCredentials = 2
	ExitEmptyMessage       = 3
	ExitFileNotFound       = 4
	ExitFileTooLarge       = 5
	ExitAPIError           = 6
	ExitNetworkError       = 7
)

// Environment variables consulted when the credential flags are not set.
const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"
)

var (
	flagToken   string
	flagChatID  string
	flagMessage string
	flagFile    string
	flagCaption string
	flagVerbose bool
)

// log is replaced in PersistentPreRun once --verbose is known.
var log = logger.New(false)

// sender is the slice of the telegram client the commands use.
type sender interface {
	SendMessage(text string) error
	SendDocument(path, caption string) error
	SendPhoto(path, caption string) error
}

// newSender is a hook so command tests can substitute a fake client.
var newSender = func(botToken, chatID string) (sender, error) {
	return telegram.NewClient(botToken, chatID)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram-notifier",
		Short: "Send messages to Telegram chats from the command line",
		Long: `Telegram Notifier - Send messages, files, and photos to a Telegram chat.
Intended for shell scripts and automation pipelines: each invocation performs
one send and exits with a code describing the outcome.`,
		Version:       "1.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(flagVerbose)
		},
	}

	cmd.PersistentFlags().StringVar(&flagToken, "token", "", "Telegram bot token (or env: TELEGRAM_BOT_TOKEN)")
	cmd.PersistentFlags().StringVar(&flagChatID, "chat-id", "", "Target chat ID (or env: TELEGRAM_CHAT_ID)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSendCmd())
	cmd.AddCommand(newSendFileCmd())
	cmd.AddCommand(newSendPhotoCmd())

	return cmd
}

// resolveCredentials applies the flag-then-environment precedence chain.
// A missing value fails here, before any client is constructed.
func resolveCredentials() (botToken, chatID string, err error) {
	botToken = flagToken
	tokenSource := "flag"
	if botToken == "" {
		botToken = os.Getenv(EnvBotToken)
		tokenSource = "env"
	}
	if botToken == "" {
		return "", "", fmt.Errorf("%w (use --token or set %s)", telegram.ErrMissingToken, EnvBotToken)
	}

	chatID = flagChatID
	chatSource := "flag"
	if chatID == "" {
		chatID = os.Getenv(EnvChatID)
		chatSource = "env"
	}
	if chatID == "" {
		return "", "", fmt.Errorf("%w (use --chat-id or set %s)", telegram.ErrMissingChatID, EnvChatID)
	}

	log.Debug().
		Str("token", logger.RedactToken(botToken)).
		Str("token_source", tokenSource).
		Str("chat_id", chatID).
		Str("chat_id_source", chatSource).
		Msg("credentials resolved")

	return botToken, chatID, nil
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var apiErr *telegram.APIError
	var netErr *telegram.NetworkError

	switch {
	case errors.Is(err, telegram.ErrMissingToken), errors.Is(err, telegram.ErrMissingChatID):
		return ExitMissingCredentials
	case errors.Is(err, telegram.ErrEmptyMessage):
		return ExitEmptyMessage
	case errors.Is(err, telegram.ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, telegram.ErrFileTooLarge):
		return ExitFileTooLarge
	case errors.As(err, &apiErr):
		return ExitAPIError
	case errors.As(err, &netErr):
		return ExitNetworkError
	default:
		return ExitError
	}
}
