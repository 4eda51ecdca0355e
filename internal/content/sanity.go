package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

const (
	defaultAPIVersion = "2023-05-03"
	defaultDataset    = "production"
	maxErrorBody      = 4 << 10
)

var (
	// ErrProjectIDRequired is returned when the client is built without a project id.
	ErrProjectIDRequired = errors.New("content: sanity project id required")
	// ErrTokenRequired is returned when a mutation is attempted without a token.
	ErrTokenRequired = errors.New("content: sanity api token required for mutations")
)

// SanityConfig configures the Sanity HTTP client.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	Token      string
	APIVersion string
	UseCDN     bool
	// BaseURL overrides the project host, e.g. for tests. Both query and
	// mutate calls use it when set.
	BaseURL string
}

// SanityOption customises a SanityClient.
type SanityOption func(*SanityClient)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) SanityOption {
	return func(c *SanityClient) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger sets the logger used to report fetch failures.
func WithLogger(logger interfaces.Logger) SanityOption {
	return func(c *SanityClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// SanityClient talks to the Sanity HTTP API. It implements Fetcher and
// interfaces.DocumentCreator.
type SanityClient struct {
	cfg    SanityConfig
	http   *http.Client
	logger interfaces.Logger
}

var (
	_ Fetcher                    = (*SanityClient)(nil)
	_ interfaces.DocumentCreator = (*SanityClient)(nil)
)

// NewSanityClient validates cfg and returns a client.
func NewSanityClient(cfg SanityConfig, opts ...SanityOption) (*SanityClient, error) {
	cfg.ProjectID = strings.TrimSpace(cfg.ProjectID)
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, ErrProjectIDRequired
	}
	if strings.TrimSpace(cfg.Dataset) == "" {
		cfg.Dataset = defaultDataset
	}
	cfg.APIVersion = strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	client := &SanityClient{
		cfg:    cfg,
		http:   http.DefaultClient,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Fetch runs query and decodes the result into out.
func (c *SanityClient) Fetch(ctx context.Context, query Query, params Params, out any) error {
	err := c.fetch(ctx, query, params, out)
	if err == nil {
		return nil
	}
	fetchErr := newFetchError(query.Name, err)
	c.logger.Error("content.fetch.failed", "query", query.Name, "error", err)
	return fetchErr
}

func (c *SanityClient) fetch(ctx context.Context, query Query, params Params, out any) error {
	endpoint, err := c.queryURL(query, params)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("sanity query: unexpected status %d", resp.StatusCode)
		}
		return fmt.Errorf("sanity query: decode response: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("sanity query: %s", strings.TrimSpace(envelope.Error.Description))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sanity query: unexpected status %d", resp.StatusCode)
	}
	if isNullJSON(envelope.Result) || out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("sanity query: decode result: %w", err)
	}
	return nil
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
	Error *apiError `json:"error,omitempty"`
}

// CreateDocument creates doc through the mutate API and returns its id. It
// always uses the API host, never the CDN.
func (c *SanityClient) CreateDocument(ctx context.Context, doc map[string]any) (string, error) {
	if docType, _ := doc["_type"].(string); strings.TrimSpace(docType) == "" {
		return "", ErrDocumentInvalid
	}
	if c.cfg.Token == "" && c.cfg.BaseURL == "" {
		return "", ErrTokenRequired
	}
	payload, err := json.Marshal(map[string]any{
		"mutations": []map[string]any{{"create": doc}},
	})
	if err != nil {
		return "", fmt.Errorf("sanity mutate: encode: %w", err)
	}

	endpoint := c.host(false) + "/v" + c.cfg.APIVersion + "/data/mutate/" + url.PathEscape(c.cfg.Dataset) + "?returnIds=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sanity mutate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("sanity mutate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var decoded mutateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("sanity mutate: decode response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("sanity mutate: %s", decoded.Error.Description)
	}
	if len(decoded.Results) > 0 && decoded.Results[0].ID != "" {
		return decoded.Results[0].ID, nil
	}
	if id, _ := doc["_id"].(string); id != "" {
		return id, nil
	}
	return decoded.TransactionID, nil
}

func (c *SanityClient) queryURL(query Query, params Params) (string, error) {
	values := url.Values{}
	values.Set("query", query.GROQ)
	for key, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("sanity query: encode param %s: %w", key, err)
		}
		values.Set("$"+strings.TrimPrefix(key, "$"), string(encoded))
	}
	return c.host(c.cfg.UseCDN) + "/v" + c.cfg.APIVersion + "/data/query/" + url.PathEscape(c.cfg.Dataset) + "?" + values.Encode(), nil
}

func (c *SanityClient) host(cdn bool) string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	api := "api"
	if cdn {
		api = "apicdn"
	}
	return "https://" + c.cfg.ProjectID + "." + api + ".sanity.io"
}

func (c *SanityClient) authorize(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
