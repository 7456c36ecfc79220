package cataas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultBaseURL = "https://cataas.com"
	userAgent      = "JustInCat (https://github.com/latoulicious/justincat)"

	// Upper bound on a single image download.
	maxImageSize = 20 << 20
)

// Client talks to the Cat as a Service API. Every call performs exactly one GET request and is never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new cataas client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TagsURL is the public listing of the tags known to the API.
func (c *Client) TagsURL() string {
	return c.baseURL + "/api/tags"
}

// Image is a picture returned by the /cat endpoint. Data is passed through untouched.
type Image struct {
	Data      []byte
	MimeType  string
	Extension string
}

// Filename is the attachment name used when uploading the image to Discord.
func (i *Image) Filename() string {
	return "cat" + i.Extension
}

type countResponse struct {
	Count int `json:"count"`
}

// Count returns the number of cat pictures available upstream.
func (c *Client) Count(ctx context.Context) (int, error) {
	resp, err := c.get(ctx, "/api/count", "", "application/json")
	if err != nil {
		return 0, err
	}
	defer closeBody(resp.Body)

	var count countResponse
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return count.Count, nil
}

// RandomCat fetches a random cat picture without any transformation.
func (c *Client) RandomCat(ctx context.Context) (*Image, error) {
	return c.Cat(ctx, PictureRequest{})
}

// Cat fetches a cat picture rendered with the given parameters. The request is expected to be validated already.
func (c *Client) Cat(ctx context.Context, req PictureRequest) (*Image, error) {
	values, err := req.Values()
	if err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, "/cat", values.Encode(), "image/*")
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	// One byte past the limit tells a full-size image apart from a truncated one.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	if len(data) > maxImageSize {
		return nil, fmt.Errorf("%w: more than %s", ErrImageTooLarge, humanize.IBytes(maxImageSize))
	}

	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	mType := mimetype.Detect(data)

	ext := mType.Extension()
	if ext == "" {
		// Discord only renders inline images with a known extension.
		ext = ".jpg"
	}

	slog.Debug("Fetched cat picture",
		slog.String("query", values.Encode()),
		slog.String("mime", mType.String()),
		slog.String("size", humanize.Bytes(uint64(len(data)))))

	return &Image{
		Data:      data,
		MimeType:  mType.String(),
		Extension: ext,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, rawQuery string, accept string) (*http.Response, error) {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		closeBody(resp.Body)

		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	return resp, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		slog.Warn("Failed to close response body", slog.String("error", err.Error()))
	}
}
