// Package storage is a thin client for a Supabase-compatible object store.
// Uploads overwrite on path collision (x-upsert) and public URLs are derived
// locally from the bucket layout, no request needed.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"olradar.se/Olradar/configs"
)

const (
	uploadTimeout    = 15 * time.Second
	maxErrorBodySize = 512
)

type Client struct {
	baseURL    string
	key        string
	bucket     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(conf *configs.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(conf.Storage.URL, "/"),
		key:        conf.Storage.Key,
		bucket:     conf.Storage.Bucket,
		httpClient: &http.Client{Timeout: uploadTimeout},
		logger:     logger,
	}
}

// Upload stores data at the given bucket path. Any non-2xx response is an
// error; callers decide whether that is fatal.
func (c *Client) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}

	request.Header.Set("Authorization", "Bearer "+c.key)
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("x-upsert", "true")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close() //nolint:errcheck // nothing useful to do with a close error

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))

		return fmt.Errorf("upload of %q failed: %s: %s", path, response.Status, body)
	}

	c.logger.Info("uploaded object", zap.String("bucket", c.bucket), zap.String("path", path), zap.Int("size", len(data)))

	return nil
}

// PublicURL returns the public address of an uploaded object.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}
