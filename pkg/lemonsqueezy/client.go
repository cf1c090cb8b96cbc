package lemonsqueezy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config holds LemonSqueezy API configuration.
type Config struct {
	APIKey        string        `env:"LEMONSQUEEZY_API_KEY,required"`
	SigningSecret string        `env:"LEMONSQUEEZY_SIGNING_SECRET,required"`
	StoreID       string        `env:"LEMONSQUEEZY_STORE_ID,required"`
	BaseURL       string        `env:"LEMONSQUEEZY_BASE_URL" envDefault:"https://api.lemonsqueezy.com/v1"`
	HTTPTimeout   time.Duration `env:"LEMONSQUEEZY_HTTP_TIMEOUT" envDefault:"30s"`
	PageSize      int           `env:"LEMONSQUEEZY_PAGE_SIZE" envDefault:"100"`
}

// Client talks to the LemonSqueezy REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	storeID    string
	pageSize   int
}

// New creates a LemonSqueezy API client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.StoreID == "" {
		return nil, ErrMissingStoreID
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.lemonsqueezy.com/v1"
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		storeID:    cfg.StoreID,
		pageSize:   pageSize,
	}, nil
}

// StoreID returns the configured store identifier.
func (c *Client) StoreID() string { return c.storeID }

// apiError mirrors a single JSON:API error object.
type apiError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type apiErrorResponse struct {
	Errors []apiError `json:"errors"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("Content-Type", "application/vnd.api+json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
		}
		var errResp apiErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && len(errResp.Errors) > 0 {
			e := errResp.Errors[0]
			return fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatus, resp.StatusCode, e.Title, e.Detail)
		}
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
	}
	return nil
}

// pageQuery builds page[number]/page[size] query parameters.
func (c *Client) pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page[number]", strconv.Itoa(page))
	q.Set("page[size]", strconv.Itoa(c.pageSize))
	return q
}
