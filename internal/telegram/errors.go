package telegram

import (
	"errors"
	"fmt"
)

// Precondition failures detected before any network call.
var (
	ErrMissingToken  = errors.New("bot token is required")
	ErrMissingChatID = errors.New("chat ID is required")
	ErrEmptyMessage  = errors.New("message text is required")
	ErrFileNotFound  = errors.New("file not found")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
)

// APIError reports that Telegram answered the request but rejected it
// (ok:false or an unexpected status), or that the response body could not
// be interpreted. Description carries the API's own explanation when one
// was returned.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("telegram API error: %s", e.Description)
	}
	return fmt.Sprintf("telegram API error (status %d)", e.StatusCode)
}

// NetworkError reports that the request never produced a Telegram response:
// DNS failure, refused connection, timeout. Method is the Bot API method
// name; the request URL is deliberately omitted because it embeds the bot
// token.
type NetworkError struct {
	Method string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("sending %s request: %v", e.Method, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
