package apiclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

func TestClient_UploadFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="),
			"JSON content type is replaced so the multipart boundary survives")
		assert.Equal(t, "sid1", r.Header.Get("X-Session-ID"), "auth headers still attached")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "media-kit.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://cdn.influmatch.io/media-kit.pdf"}`))
	}))
	defer server.Close()

	client := apiclient.New(server.URL, apiclient.WithCredentialSource(authedStore(t, "sid1", "")))
	resp, err := client.UploadFile(context.Background(), "/creators/me/media-kit", "media-kit.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.influmatch.io/media-kit.pdf", data["url"])
}

func TestClient_DownloadFile(t *testing.T) {
	t.Parallel()

	payload := []byte{0x25, 0x50, 0x44, 0x46, 0x2d}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		if r.URL.Path == "/with-disposition" {
			w.Header().Set("Content-Disposition", `attachment; filename="campaign-report.pdf"`)
		}
		w.Write(payload)
	}))
	t.Cleanup(server.Close)

	client := apiclient.New(server.URL)
	ctx := context.Background()

	t.Run("suggested filename wins", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := client.DownloadFile(ctx, "/with-disposition", dir, "my-report.pdf")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "my-report.pdf"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, content)
	})

	t.Run("content disposition fallback", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := client.DownloadFile(ctx, "/with-disposition", dir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "campaign-report.pdf"), path)
	})

	t.Run("generated default", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := client.DownloadFile(ctx, "/plain", dir, "")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filepath.Base(path), "download-"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, payload, content)
	})
}

func TestClient_DownloadFileErrorDoesNotWrite(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	dir := t.TempDir()
	_, err := client.DownloadFile(context.Background(), "/missing", dir, "report.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiclient.ErrRequestFailed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
