package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"khidma/models"

	gojson "github.com/goccy/go-json"
)

// MarketplaceClient talks to the marketplace backend REST API. Retries and
// backoff are the backend gateway's responsibility, not ours.
type MarketplaceClient struct {
	baseURL string
	client  *http.Client
}

// NewMarketplaceClient creates a client for the given base URL.
func NewMarketplaceClient(baseURL string) *MarketplaceClient {
	return &MarketplaceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *MarketplaceClient) fetch(ctx context.Context, path string, from, to *time.Time, target interface{}) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", path, err)
	}

	query := endpoint.Query()
	if from != nil {
		query.Set("startDate", from.Format("2006-01-02"))
	}
	if to != nil {
		query.Set("endDate", to.Format("2006-01-02"))
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := gojson.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// FetchInvoices loads the invoice records for a date range.
func (c *MarketplaceClient) FetchInvoices(ctx context.Context, from, to *time.Time) ([]models.RawInvoice, error) {
	var envelope struct {
		Data []models.RawInvoice `json:"data"`
	}
	if err := c.fetch(ctx, "/invoices", from, to, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// FetchOrders loads the order records for a date range.
func (c *MarketplaceClient) FetchOrders(ctx context.Context, from, to *time.Time) ([]models.RawOrder, error) {
	var envelope struct {
		Data []models.RawOrder `json:"data"`
	}
	if err := c.fetch(ctx, "/orders", from, to, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// FetchOffers loads the offer records for a date range.
func (c *MarketplaceClient) FetchOffers(ctx context.Context, from, to *time.Time) ([]models.RawOffer, error) {
	var envelope struct {
		Data []models.RawOffer `json:"data"`
	}
	if err := c.fetch(ctx, "/offers", from, to, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
