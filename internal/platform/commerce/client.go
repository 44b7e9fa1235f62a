package commerce

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

// Client talks to the commerce platform's REST API. It owns auth headers,
// JSON codecs, cursor pagination parameters and status-code mapping; it does
// not retry. Callers decide what a failure means.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL string, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		APIKey:     strings.TrimSpace(apiKey),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource state conflict")
	ErrUnauthorized = errors.New("platform authentication failed")
)

// APIError is a non-2xx platform response that is none of the sentinel cases.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform api status %d: %s %s", e.StatusCode, e.Code, e.Message)
}

// Entry is the platform's term for a submission.
type Entry struct {
	ID               string     `json:"id"`
	CampaignID       string     `json:"campaign_id"`
	UserID           string     `json:"user_id"`
	ContentURL       string     `json:"content_url"`
	Platform         string     `json:"platform"`
	ViewCount        int64      `json:"view_count"`
	Status           string     `json:"status"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	StatusReason     string     `json:"status_reason,omitempty"`
	CalculatedPayout float64    `json:"calculated_payout"`
	ActualPayout     float64    `json:"actual_payout"`
	TransferID       string     `json:"transfer_id,omitempty"`
}

type EntryPage struct {
	Data       []Entry `json:"data"`
	NextCursor string  `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

type EntryListParams struct {
	CampaignID string
	UserID     string
	Status     string
	Cursor     string
	Limit      int
}

func (c *Client) ListEntries(ctx context.Context, params EntryListParams) (EntryPage, error) {
	query := url.Values{}
	if params.CampaignID != "" {
		query.Set("campaign_id", params.CampaignID)
	}
	if params.UserID != "" {
		query.Set("user_id", params.UserID)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var page EntryPage
	if err := c.do(ctx, http.MethodGet, "/v1/entries", query, nil, &page); err != nil {
		return EntryPage{}, err
	}
	return page, nil
}

func (c *Client) GetEntry(ctx context.Context, entryID string) (Entry, error) {
	var entry Entry
	if err := c.do(ctx, http.MethodGet, "/v1/entries/"+url.PathEscape(entryID), nil, nil, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (c *Client) ApproveEntry(ctx context.Context, entryID string, payoutAmount float64, metadata map[string]any) (Entry, error) {
	body := map[string]any{
		"payout_amount": payoutAmount,
		"metadata":      metadata,
	}
	var entry Entry
	if err := c.do(ctx, http.MethodPost, "/v1/entries/"+url.PathEscape(entryID)+"/approve", nil, body, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (c *Client) DenyEntry(ctx context.Context, entryID string, reason string) (Entry, error) {
	body := map[string]any{"reason": reason}
	var entry Entry
	if err := c.do(ctx, http.MethodPost, "/v1/entries/"+url.PathEscape(entryID)+"/deny", nil, body, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
