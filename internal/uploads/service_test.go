package uploads

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// MockDriver implements StorageDriver for testing
type MockDriver struct {
	SavedKey       string
	SavedBody      []byte
	GenerateURLErr error
	DeleteCalled   bool
	DeleteKey      string
}

func (m *MockDriver) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	m.SavedKey = key
	content, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.SavedBody = content
	return nil
}

func (m *MockDriver) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return io.NopCloser(bytes.NewReader(m.SavedBody)), "application/test", nil
}

func (m *MockDriver) Delete(ctx context.Context, key string) error {
	m.DeleteCalled = true
	m.DeleteKey = key
	return nil
}

func (m *MockDriver) GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if m.GenerateURLErr != nil {
		return "", m.GenerateURLErr
	}
	return "/test/" + key, nil
}

func TestStoreBinary(t *testing.T) {
	mock := &MockDriver{}
	service := NewDocumentService(nil, mock)

	ctx := context.Background()
	content := []byte("certificate scan")

	key, url, err := service.storeBinary(ctx, "pse-certificate.pdf", bytes.NewReader(content), "application/pdf")
	if err != nil {
		t.Fatalf("storeBinary failed: %v", err)
	}

	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("expected key to keep the file extension, got %s", key)
	}
	if key != mock.SavedKey {
		t.Errorf("expected key %s to be saved, driver got %s", key, mock.SavedKey)
	}
	if !bytes.Equal(mock.SavedBody, content) {
		t.Error("saved body does not match input")
	}
	if url != "/test/"+key {
		t.Errorf("unexpected URL: %s", url)
	}
}

func TestStoreBinary_GenerateURLFailure(t *testing.T) {
	mock := &MockDriver{
		GenerateURLErr: io.ErrUnexpectedEOF,
	}
	service := NewDocumentService(nil, mock)

	ctx := context.Background()
	content := []byte("certificate scan")

	_, _, err := service.storeBinary(ctx, "pse-certificate.pdf", bytes.NewReader(content), "application/pdf")
	if err == nil {
		t.Fatal("expected storeBinary to fail when GenerateURL fails")
	}

	if !mock.DeleteCalled {
		t.Error("expected Delete to be called to cleanup orphaned file")
	}
	if mock.DeleteKey != mock.SavedKey {
		t.Errorf("expected Delete to be called with key %s, got %s", mock.SavedKey, mock.DeleteKey)
	}
}

func TestStoreBinary_DefaultMimeType(t *testing.T) {
	mock := &MockDriver{}
	service := NewDocumentService(nil, mock)

	_, _, err := service.storeBinary(context.Background(), "scan", bytes.NewReader([]byte("x")), "")
	if err != nil {
		t.Fatalf("storeBinary failed: %v", err)
	}
}

func TestDownload(t *testing.T) {
	mock := &MockDriver{
		SavedBody: []byte("test content"),
	}
	service := NewDocumentService(nil, mock)

	ctx := context.Background()
	reader, contentType, err := service.Download(ctx, "test-key")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer reader.Close()

	if contentType != "application/test" {
		t.Errorf("expected content type application/test, got %s", contentType)
	}

	content, _ := io.ReadAll(reader)
	if !bytes.Equal(content, mock.SavedBody) {
		t.Error("downloaded content does not match saved body")
	}
}
