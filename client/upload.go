package client

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"vidsense/config"
	"vidsense/types"
)

// UploadVideo streams the file at path to the service as multipart form data.
// The file is sniffed first; anything that is not a recognizable video is
// rejected locally before a byte goes on the wire.
func (c *AnalysisClient) UploadVideo(ctx context.Context, path string) (*types.UploadResponse, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &types.InvalidArgumentError{Reason: "video file path is required"}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &types.InvalidArgumentError{Reason: "cannot open video file: " + err.Error()}
	}
	defer f.Close()

	if err := checkVideoFile(f); err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile(config.UploadFieldName, filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-video/", pr)
	if err != nil {
		return nil, &types.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return nil, &types.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp)
	}

	var out types.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &types.ParseError{Err: err}
	}
	return &out, nil
}

// checkVideoFile sniffs the file header and rewinds the reader. filetype
// needs at most 261 bytes to match a container format.
func checkVideoFile(f *os.File) error {
	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return &types.InvalidArgumentError{Reason: "cannot read video file: " + err.Error()}
	}
	if !filetype.IsVideo(head[:n]) {
		return &types.InvalidArgumentError{Reason: "file does not look like a video"}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return &types.InvalidArgumentError{Reason: "cannot rewind video file: " + err.Error()}
	}
	return nil
}
