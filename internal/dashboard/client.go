// Package dashboard is the terminal presentation client for the customer API.
//
// It fetches one page of customers once and filters it locally as the search text changes.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/customer-dashboard/pkg/errors"
)

const maxErrorBody = 4 << 10

// Client calls the customer API over HTTP
type Client struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// FetchCustomers loads the first page of customers with the server's default page size.
// A non-2xx status is returned as an *errors.AppError carrying the server's message.
func (c *Client) FetchCustomers(ctx context.Context) ([]*entity.Customer, error) {
	url := c.baseURL + "/customers"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Customer request failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Customer request completed",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp)
	}

	var body entity.CustomerListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	if body.Customers == nil {
		return nil, fmt.Errorf("failed to decode customers: missing customers field")
	}

	return body.Customers, nil
}

func (c *Client) statusError(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		message = body.Error
	}

	return apperrors.NewAppError(
		apperrors.FromHTTPStatus(resp.StatusCode),
		message,
		fmt.Errorf("unexpected status %d", resp.StatusCode),
	)
}
