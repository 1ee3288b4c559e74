package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gatewayops/gwshift/internal/transform"
	gwerrors "github.com/gatewayops/gwshift/pkg/errors"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultRetryMax = 2
)

// Options configures the management-API client.
type Options struct {
	BaseURL   string
	AuthToken string
	Timeout   time.Duration
	RetryMax  int
}

// Client talks to the target gateway's management API. It covers the two
// operations the import needs: an existence check keyed by listen path and
// definition creation.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	token   string
}

// NewClient creates a management-API client with a bounded per-request
// timeout. Transient transport errors are retried a small number of times
// before being surfaced as a TransportError.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retryMax := opts.RetryMax
	if retryMax < 0 {
		retryMax = 0
	} else if retryMax == 0 {
		retryMax = defaultRetryMax
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil
	// Retry only connection-level failures. HTTP statuses are classified by
	// the caller: non-2xx on create is a per-unit rejection, not something
	// to retry into a different outcome.
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return err != nil, nil
	}

	return &Client{
		http:    rc,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		token:   opts.AuthToken,
	}
}

type apiListing struct {
	APIs []struct {
		APIDefinition struct {
			Proxy struct {
				ListenPath string `json:"listen_path"`
			} `json:"proxy"`
		} `json:"api_definition"`
	} `json:"apis"`
}

type createResponse struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

// ExistsListenPath reports whether the target already has a definition
// routed at listenPath. An empty listing is (false, nil). A failed query is
// never treated as "not found": a non-2xx response returns a StatusError
// and a request that could not complete returns a TransportError, both of
// which the coordinator treats as batch-fatal.
func (c *Client) ExistsListenPath(ctx context.Context, listenPath string) (bool, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/apis?p=-1", nil)
	if err != nil {
		return false, gwerrors.NewTransportError("list", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, gwerrors.NewTransportError("list", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, gwerrors.NewStatusError("list", resp.StatusCode)
	}

	var listing apiListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return false, gwerrors.NewTransportError("list", err)
	}

	for _, api := range listing.APIs {
		if api.APIDefinition.Proxy.ListenPath == listenPath {
			return true, nil
		}
	}
	return false, nil
}

// CreateDefinition submits def for creation. nil means the gateway reported
// success. A completed request the gateway declined comes back as a
// RejectionError carrying the response body; a request that could not
// complete comes back as a TransportError.
func (c *Client) CreateDefinition(ctx context.Context, def transform.APIDefinition) error {
	payload, err := json.Marshal(def)
	if err != nil {
		return gwerrors.NewRejectionError(def.Title, 0, err.Error())
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/apis/oas", payload)
	if err != nil {
		return gwerrors.NewTransportError("create", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gwerrors.NewTransportError("create", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gwerrors.NewTransportError("create", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gwerrors.NewRejectionError(def.Title, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return gwerrors.NewRejectionError(def.Title, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if created.Status != "OK" {
		return gwerrors.NewRejectionError(def.Title, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
