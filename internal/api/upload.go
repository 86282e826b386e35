package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"foodieframe_client/internal/util"
)

// FileArg is a local file destined for a multipart field.
type FileArg struct {
	Field string
	Path  string
}

// doMultipart posts form fields plus files against the upload host. Uploads
// get their own base URL and content type because the JSON client's default
// headers cannot be shared with multipart bodies.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, files []FileArg, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}

	for _, file := range files {
		if err := appendFile(writer, file); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadBase()+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.send(req, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func appendFile(writer *multipart.Writer, file FileArg) error {
	f, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Path, err)
	}
	defer f.Close()

	// Sniff before streaming; only image and video payloads are accepted
	// server-side, reject locally to save the round trip.
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return err
	}
	if _, err := util.ValidateMimeType(bytes.NewReader(head[:n]), []string{util.MimeImage, util.MimeVideo}); err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	part, err := writer.CreateFormFile(file.Field, filepath.Base(file.Path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", file.Path, err)
	}
	return nil
}
