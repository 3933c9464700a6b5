// Package telegram provides a Telegram Bot API client for delivering
// notifications from the command line.
//
// The package supports sending text messages, documents, and photos via
// simple HTTP requests. Attachments are validated locally (existence and
// size ceiling) before any upload is attempted, so a bad path or an
// oversized file never costs a network round trip.
//
// Authentication requires a bot token (from @BotFather) and chat ID.
package telegram
