package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// CloudUploadService proxies multipart image uploads to the external
// cloud-upload service. Used when Cloudinary is not configured.
type CloudUploadService struct {
	baseURL string
	client  *http.Client
}

func NewCloudUploadService(baseURL string, client *http.Client) *CloudUploadService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CloudUploadService{baseURL: baseURL, client: client}
}

type CloudUploadResult struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// UploadMultiple forwards the given files to the cloud upload endpoint
// and returns the stored URLs.
func (s *CloudUploadService) UploadMultiple(ctx context.Context, files []*multipart.FileHeader, uploaderID int64) ([]CloudUploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("cloud upload: open %s: %w", fh.Filename, err)
		}
		part, err := writer.CreateFormFile("files", fh.Filename)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("cloud upload: form part for %s: %w", fh.Filename, err)
		}
		if _, err := io.Copy(part, src); err != nil {
			src.Close()
			return nil, fmt.Errorf("cloud upload: copy %s: %w", fh.Filename, err)
		}
		src.Close()
	}
	if err := writer.WriteField("uploaderId", strconv.FormatInt(uploaderID, 10)); err != nil {
		return nil, fmt.Errorf("cloud upload: write uploaderId: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("cloud upload: finalize body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/cloud/upload-multiple", &buf)
	if err != nil {
		return nil, fmt.Errorf("cloud upload: build request: %w", err)
	}
	// Let the writer supply the boundary'd content type.
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloud upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cloud upload: status %d: %s", resp.StatusCode, string(raw))
	}

	var results []CloudUploadResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("cloud upload: decode response: %w", err)
	}
	return results, nil
}
