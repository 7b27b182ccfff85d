// internal/api/client_test.go
package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	c := New("http://localhost:5000", "secret123")

	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.baseURL != "http://localhost:5000" {
		t.Errorf("expected baseURL=http://localhost:5000, got %s", c.baseURL)
	}
	if c.apiKey != "secret123" {
		t.Errorf("expected apiKey=secret123, got %s", c.apiKey)
	}
	if c.httpClient == nil {
		t.Error("httpClient is nil")
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:5000/", "secret")
	if c.baseURL != "http://localhost:5000" {
		t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
	}
}

func TestHealthcheck_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthcheck" {
			t.Errorf("expected path /healthcheck, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(server.URL, "")
	err := c.Healthcheck()
	if err != nil {
		t.Errorf("Healthcheck failed: %v", err)
	}
}

func TestHealthcheck_ServerDown(t *testing.T) {
	c := New("http://localhost:59999", "") // unlikely to be listening
	err := c.Healthcheck()
	if err == nil {
		t.Error("expected error for unreachable server")
	}
}

func TestHealthcheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, "")
	err := c.Healthcheck()
	if err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestUpload_Success(t *testing.T) {
	var receivedSecret, receivedFilename, receivedDesign, receivedSeed string
	var receivedFileContent []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/hypercubes/add" {
			t.Errorf("expected path /api/v1/hypercubes/add, got %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		receivedSecret = r.FormValue("secret")
		receivedFilename = r.FormValue("filename")
		receivedDesign = r.FormValue("design")
		receivedSeed = r.FormValue("seed")

		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("failed to read form file: %v", err)
		}
		defer file.Close()
		receivedFileContent, _ = io.ReadAll(file)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "container_abc.json.gz")
	if err := os.WriteFile(path, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(server.URL, "secret123")
	err := c.Upload(path, UploadMetadata{
		HypercubeID: "abc",
		Design:      "container",
		Seed:        42,
		SceneCount:  4,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if receivedSecret != "secret123" {
		t.Errorf("expected secret=secret123, got %s", receivedSecret)
	}
	if receivedFilename != "container_abc.json.gz" {
		t.Errorf("unexpected filename %s", receivedFilename)
	}
	if receivedDesign != "container" {
		t.Errorf("expected design=container, got %s", receivedDesign)
	}
	if receivedSeed != "42" {
		t.Errorf("expected seed=42, got %s", receivedSeed)
	}
	if string(receivedFileContent) != "payload" {
		t.Errorf("unexpected file content %q", receivedFileContent)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	c := New("http://localhost:5000", "")
	err := c.Upload("/nonexistent/file.json.gz", UploadMetadata{})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestUpload_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "x.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(server.URL, "wrong")
	err := c.Upload(path, UploadMetadata{})
	if err == nil {
		t.Error("expected error for 403 response")
	}
}
