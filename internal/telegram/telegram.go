package telegram

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// apiBaseURL is a var so tests can point the client at a local server.
var apiBaseURL = "https://api.telegram.org/bot"

// requestTimeout bounds every API call. Uploads can be up to 50 MB, so this
// is deliberately more generous than a text send needs.
const requestTimeout = 30 * time.Second

// Client represents a Telegram Bot API client
type Client struct {
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string) (*Client, error) {
	if strings.TrimSpace(botToken) == "" {
		return nil, ErrMissingToken
	}
	if strings.TrimSpace(chatID) == "" {
		return nil, ErrMissingChatID
	}

	return &Client{
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// endpoint builds the full URL for a Bot API method
func (c *Client) endpoint(method string) string {
	return apiBaseURL + c.botToken + "/" + method
}

// SendMessage sends a text message to the configured chat
func (c *Client) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	form := url.Values{
		"chat_id": {c.chatID},
		"text":    {text},
	}

	resp, err := c.httpClient.PostForm(c.endpoint("sendMessage"), form)
	if err != nil {
		return networkError("sendMessage", err)
	}
	defer resp.Body.Close()

	return checkResponse("sendMessage", resp)
}

// networkError wraps a transport failure. *url.Error is peeled off first so
// the message does not echo the request URL (which embeds the bot token).
func networkError(method string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return &NetworkError{Method: method, Err: err}
}

// checkResponse reads a Bot API response body and reports any failure.
// Success is a 2xx status with a well-formed body carrying ok:true.
func checkResponse(method string, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(method, err)
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}

	if !result.OK {
		return &APIError{StatusCode: resp.StatusCode, Description: result.Description}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode}
	}

	return nil
}
