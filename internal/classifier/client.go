// Package classifier talks to the image inference service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// maxResponseBytes bounds the decoded inference response.
const maxResponseBytes = 1 << 16

// Client posts raw image bytes to an inference endpoint and decodes
// {"class_name": ..., "confidence": ...}.
type Client struct {
	url        string
	httpClient *http.Client
}

var _ model.Classifier = (*Client)(nil)

// NewClient creates a classifier client. A non-positive timeout leaves the
// request bounded only by its context.
func NewClient(url string, timeout time.Duration) *Client {
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{url: url, httpClient: hc}
}

// Classify sends image to the inference service.
func (c *Client) Classify(ctx context.Context, image []byte, contentType string) (model.Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(image))
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to build classifier request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(body, 256))
		return model.Prediction{}, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var p model.Prediction
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		return model.Prediction{}, fmt.Errorf("failed to decode classifier response: %w", err)
	}
	if p.ClassName == "" {
		return model.Prediction{}, errors.New("classifier response has no class_name")
	}

	return p, nil
}
