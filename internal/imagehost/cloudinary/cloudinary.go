// Package cloudinary deletes hosted images through Cloudinary's destroy API.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL   string // e.g. https://api.cloudinary.com/v1_1/<cloud-name>
	apiKey    string
	apiSecret string
	client    *http.Client
	now       func() time.Time
}

func NewClient(baseURL, apiKey, apiSecret string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{Timeout: 15 * time.Second},
		now:       time.Now,
	}
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Destroy removes the image with the given public ID. Cloudinary reports
// "not found" as a successful call with result "not found"; that is treated
// as success since the image is gone either way.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	// Signature: sha1 over the sorted parameter string plus the API secret.
	toSign := "public_id=" + publicID + "&timestamp=" + timestamp + c.apiSecret
	digest := sha1.Sum([]byte(toSign))

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.apiKey)
	form.Set("signature", hex.EncodeToString(digest[:]))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/image/destroy", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to destroy image: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read destroy response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("destroy failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed destroyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to decode destroy response: %w", err)
	}
	if parsed.Result != "ok" && parsed.Result != "not found" {
		return fmt.Errorf("destroy rejected: %s", parsed.Result)
	}
	return nil
}
