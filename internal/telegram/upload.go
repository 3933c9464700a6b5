package telegram

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// Size ceilings the Bot API imposes on uploads, enforced locally so an
// oversized file fails before any bytes leave the machine. A file of
// exactly the ceiling is still sent.
const (
	MaxDocumentSize int64 = 50 * 1024 * 1024
	MaxPhotoSize    int64 = 10 * 1024 * 1024
)

// SendDocument uploads a file to the configured chat as a document.
// The caption is optional; pass "" to omit it.
func (c *Client) SendDocument(path, caption string) error {
	return c.sendAttachment("sendDocument", "document", path, caption, MaxDocumentSize)
}

// SendPhoto uploads an image to the configured chat as a photo.
// The caption is optional; pass "" to omit it.
func (c *Client) SendPhoto(path, caption string) error {
	return c.sendAttachment("sendPhoto", "photo", path, caption, MaxPhotoSize)
}

// sendAttachment validates the local file, then uploads it as a multipart
// form under the given field name. The multipart body is assembled in
// memory; the size ceiling keeps the buffer bounded.
func (c *Client) sendAttachment(method, field, path, caption string, sizeLimit int64) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if info.Size() > sizeLimit {
		return fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, info.Size(), sizeLimit)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("writing chat_id field: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("writing caption field: %w", err)
		}
	}

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint(method), &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(method, err)
	}
	defer resp.Body.Close()

	return checkResponse(method, resp)
}
