package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadFile POSTs content as a multipart form under the "file" field. The
// JSON content type is replaced by the multipart one so the boundary set by
// the writer survives; auth headers are attached as usual.
func (c *Client) UploadFile(ctx context.Context, endpoint, filename string, content io.Reader, opts ...CallOption) (*Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("apiclient: read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("apiclient: finalize multipart form: %w", err)
	}

	return c.do(ctx, http.MethodPost, c.resolveURL(endpoint, nil), buf.Bytes(), writer.FormDataContentType(), opts)
}

// DownloadFile GETs a binary payload and writes it into destDir, returning
// the written path. The filename is the caller's suggestion when given,
// then the response's Content-Disposition, then a generated default. The
// body is not returned.
func (c *Client) DownloadFile(ctx context.Context, endpoint, destDir, suggestedFilename string, opts ...CallOption) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, endpoint, nil, nil, opts)
	if err != nil {
		return "", err
	}

	filename := suggestedFilename
	if filename == "" {
		filename = filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	}
	if filename == "" {
		filename = "download-" + uuid.NewString()[:8]
	}

	if destDir == "" {
		destDir = "."
	}
	path := filepath.Join(destDir, filepath.Base(filename))
	if err := os.WriteFile(path, resp.Body, 0o644); err != nil {
		return "", fmt.Errorf("apiclient: write downloaded file: %w", err)
	}
	return path, nil
}

func filenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
