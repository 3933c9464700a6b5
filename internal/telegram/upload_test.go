package telegram

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// uploadRecorder captures the multipart fields the server received.
type uploadRecorder struct {
	requests int
	chatID   string
	caption  string
	hasPart  bool
	filename string
}

// newUploadServer returns a server that parses multipart uploads for the
// given field name and answers ok:true.
func newUploadServer(t *testing.T, field string, rec *uploadRecorder) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.requests++

		if err := r.ParseMultipartForm(64 << 20); err != nil {
			t.Errorf("ParseMultipartForm() error: %v", err)
			return
		}
		rec.chatID = r.FormValue("chat_id")
		rec.caption = r.FormValue("caption")

		if files := r.MultipartForm.File[field]; len(files) > 0 {
			rec.hasPart = true
			rec.filename = files[0].Filename
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
}

// writeTempFile creates a file with the given content under t.TempDir()
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

// writeSizedFile creates a sparse file of exactly size bytes
func writeSizedFile(t *testing.T, name string, size int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating sized file: %v", err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		t.Fatalf("sizing file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing sized file: %v", err)
	}
	return path
}

// TestSendDocument_Success tests a document upload with a caption
func TestSendDocument_Success(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "document", rec)
	defer server.Close()

	client := newTestClient(t, server)
	path := writeTempFile(t, "report.pdf", "test content")

	if err := client.SendDocument(path, "Test file"); err != nil {
		t.Fatalf("SendDocument() unexpected error: %v", err)
	}

	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1", rec.requests)
	}
	if !rec.hasPart {
		t.Error("server did not receive a 'document' part")
	}
	if rec.filename != "report.pdf" {
		t.Errorf("filename = %q, want %q", rec.filename, "report.pdf")
	}
	if rec.chatID != "12345" {
		t.Errorf("chat_id = %q, want %q", rec.chatID, "12345")
	}
	if rec.caption != "Test file" {
		t.Errorf("caption = %q, want %q", rec.caption, "Test file")
	}
}

// TestSendPhoto_Success tests a photo upload without a caption
func TestSendPhoto_Success(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "photo", rec)
	defer server.Close()

	client := newTestClient(t, server)
	path := writeTempFile(t, "shot.png", "not really a png")

	if err := client.SendPhoto(path, ""); err != nil {
		t.Fatalf("SendPhoto() unexpected error: %v", err)
	}

	if !rec.hasPart {
		t.Error("server did not receive a 'photo' part")
	}
	if rec.caption != "" {
		t.Errorf("caption = %q, want empty", rec.caption)
	}
}

// TestSendDocument_FileNotFound tests that a missing path fails before any
// network call
func TestSendDocument_FileNotFound(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "document", rec)
	defer server.Close()

	client := newTestClient(t, server)

	err := client.SendDocument(filepath.Join(t.TempDir(), "missing.pdf"), "")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("SendDocument() error = %v, want ErrFileNotFound", err)
	}
	if rec.requests != 0 {
		t.Errorf("requests = %d, want 0", rec.requests)
	}
}

// TestSendDocument_Directory tests that a directory path is not a sendable
// file
func TestSendDocument_Directory(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "document", rec)
	defer server.Close()

	client := newTestClient(t, server)

	err := client.SendDocument(t.TempDir(), "")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("SendDocument() error = %v, want ErrFileNotFound", err)
	}
	if rec.requests != 0 {
		t.Errorf("requests = %d, want 0", rec.requests)
	}
}

// TestSendDocument_SizeCeiling tests the 50 MB boundary: exactly at the
// limit is sent, one byte over is rejected locally
func TestSendDocument_SizeCeiling(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "document", rec)
	defer server.Close()

	client := newTestClient(t, server)

	atLimit := writeSizedFile(t, "at-limit.bin", MaxDocumentSize)
	if err := client.SendDocument(atLimit, ""); err != nil {
		t.Errorf("SendDocument() at limit: unexpected error: %v", err)
	}
	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1", rec.requests)
	}

	overLimit := writeSizedFile(t, "over-limit.bin", MaxDocumentSize+1)
	err := client.SendDocument(overLimit, "")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("SendDocument() over limit: error = %v, want ErrFileTooLarge", err)
	}
	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1 (oversized file must not be uploaded)", rec.requests)
	}
}

// TestSendPhoto_SizeCeiling tests the 10 MB boundary for photos
func TestSendPhoto_SizeCeiling(t *testing.T) {
	rec := &uploadRecorder{}
	server := newUploadServer(t, "photo", rec)
	defer server.Close()

	client := newTestClient(t, server)

	atLimit := writeSizedFile(t, "at-limit.jpg", MaxPhotoSize)
	if err := client.SendPhoto(atLimit, ""); err != nil {
		t.Errorf("SendPhoto() at limit: unexpected error: %v", err)
	}

	overLimit := writeSizedFile(t, "over-limit.jpg", MaxPhotoSize+1)
	err := client.SendPhoto(overLimit, "")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("SendPhoto() over limit: error = %v, want ErrFileTooLarge", err)
	}
	if rec.requests != 1 {
		t.Errorf("requests = %d, want 1 (oversized photo must not be uploaded)", rec.requests)
	}
}

// TestSendDocument_APIError tests that an upload rejection carries the API
// description
func TestSendDocument_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: file must be non-empty",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	path := writeTempFile(t, "doc.txt", "content")

	err := client.SendDocument(path, "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("SendDocument() error = %T, want *APIError", err)
	}
	if apiErr.Description != "Bad Request: file must be non-empty" {
		t.Errorf("Description = %q, want %q", apiErr.Description, "Bad Request: file must be non-empty")
	}
}
