package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"steam-notion-sync/core/retry"

	"go.uber.org/zap"
)

// ErrMalformedResponse is returned when a response lacks a member the caller
// depends on, such as the results of a query.
var ErrMalformedResponse = errors.New("malformed notion response")

// Client is a Notion API client bound to one database.
type Client struct {
	cfg    Config
	http   *retry.Client
	logger *zap.Logger
}

// NewClient creates a Notion client.
func NewClient(cfg Config, httpClient *retry.Client, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// Properties returns the configured column names.
func (c *Client) Properties() PropertyNames {
	return c.cfg.Properties
}

func (c *Client) request(method, path string, body any) retry.Request {
	return retry.Request{
		Method: method,
		URL:    c.cfg.BaseURL + path,
		Header: http.Header{
			"Authorization":  {"Bearer " + c.cfg.APIKey},
			"Notion-Version": {c.cfg.Version},
		},
		Body: body,
	}
}

// GetDatabase reads the database schema.
func (c *Client) GetDatabase(ctx context.Context) (*Database, error) {
	resp, err := c.http.Send(ctx, c.request(http.MethodGet, "/v1/databases/"+c.cfg.DatabaseID, nil))
	if err != nil {
		return nil, fmt.Errorf("fetching database: %w", err)
	}

	var db Database
	if err := resp.Decode(&db); err != nil {
		return nil, fmt.Errorf("fetching database: %w", err)
	}
	if db.Properties == nil {
		return nil, fmt.Errorf("fetching database: %w: no properties", ErrMalformedResponse)
	}
	return &db, nil
}

// QueryDatabase returns the first page of rows matching the query.
func (c *Client) QueryDatabase(ctx context.Context, q Query) ([]Page, error) {
	resp, err := c.http.Send(ctx, c.request(http.MethodPost, "/v1/databases/"+c.cfg.DatabaseID+"/query", q))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	var payload queryResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("querying database: %w: no results", ErrMalformedResponse)
	}
	return *payload.Results, nil
}

// CreatePage adds a row to the database.
func (c *Client) CreatePage(ctx context.Context, page PageWrite) (*Page, error) {
	body := createPageRequest{
		Parent:    Parent{Type: "database_id", DatabaseID: c.cfg.DatabaseID},
		PageWrite: page,
	}
	resp, err := c.http.Send(ctx, c.request(http.MethodPost, "/v1/pages", body))
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	var created Page
	if err := resp.Decode(&created); err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	return &created, nil
}

// UpdatePage overwrites the given properties, cover and icon of a row.
func (c *Client) UpdatePage(ctx context.Context, pageID string, page PageWrite) (*Page, error) {
	resp, err := c.http.Send(ctx, c.request(http.MethodPatch, "/v1/pages/"+pageID, page))
	if err != nil {
		return nil, fmt.Errorf("updating page %s: %w", pageID, err)
	}

	var updated Page
	if err := resp.Decode(&updated); err != nil {
		return nil, fmt.Errorf("updating page %s: %w", pageID, err)
	}
	return &updated, nil
}
