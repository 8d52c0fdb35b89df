package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// QRClient talks to the external QR-encoding service. Each table gets a
// code pointing customers at the ordering page for its number; how the
// image is rendered is entirely the encoder's business.
type QRClient struct {
	baseURL     string
	orderingURL string
	httpClient  *http.Client
}

type qrResponse struct {
	URL string `json:"url"`
}

func NewQRClient(baseURL, orderingURL string, timeout time.Duration) *QRClient {
	return &QRClient{
		baseURL:     baseURL,
		orderingURL: orderingURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// GenerateTableCode asks the encoder for a QR image of the table's
// ordering link and returns the image URL.
func (c *QRClient) GenerateTableCode(ctx context.Context, tableNumber int) (string, error) {
	content := fmt.Sprintf("%s/table/%d", c.orderingURL, tableNumber)
	endpoint := fmt.Sprintf("%s/encode?content=%s", c.baseURL, url.QueryEscape(content))

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("qr service returned status %d", resp.StatusCode)
	}

	var body qrResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.URL, nil
}
