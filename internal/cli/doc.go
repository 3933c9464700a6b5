// Package cli implements the command-line interface for telegram-notifier.
//
// The cli package provides the Cobra-based CLI with the send, send-file-cmd,
// and send-photo-cmd subcommands. It resolves credentials (flags first, then
// the TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID environment variables), hands each
// invocation to the telegram client, and maps the outcome to an exit code
// and a human-readable line.
package cli
