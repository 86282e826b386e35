package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"foodieframe_client/pkg/logger"
	"foodieframe_client/pkg/monitoring"
	"foodieframe_client/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TokenSource yields the current bearer token, or "" when logged out.
// *session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// Options configures a Client. Session state is injected here instead of
// living in package-level defaults so two clients never share credentials.
type Options struct {
	BaseURL string
	// UploadBaseURL is the multipart host; falls back to BaseURL when empty.
	UploadBaseURL string
	HTTPClient    *http.Client
	TokenSource   TokenSource
	// OnUnauthorized runs once per 401 response, before the error returns to
	// the caller. The app wires it to clearing the persisted session.
	OnUnauthorized func()
	Limiter        *rate.Limiter
}

// Client is the typed entry point to the FoodieFrame REST API, one resource
// group per field.
type Client struct {
	mu             sync.RWMutex
	baseURL        string
	uploadBaseURL  string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	limiter        *rate.Limiter

	Auth         *Auth
	Users        *Users
	Posts        *Posts
	Events       *Events
	Interactions *Interactions
	SavedRecipes *SavedRecipes
	Friends      *Friends
	Groups       *Groups
	Categories   *Categories
	Comments     *Comments
	Maintenance  *Maintenance
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	c := &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		uploadBaseURL:  strings.TrimRight(opts.UploadBaseURL, "/"),
		http:           httpClient,
		tokens:         opts.TokenSource,
		onUnauthorized: opts.OnUnauthorized,
		limiter:        opts.Limiter,
	}
	if c.uploadBaseURL == "" {
		c.uploadBaseURL = c.baseURL
	}

	c.Auth = &Auth{c}
	c.Users = &Users{c}
	c.Posts = &Posts{c}
	c.Events = &Events{c}
	c.Interactions = &Interactions{c}
	c.SavedRecipes = &SavedRecipes{c}
	c.Friends = &Friends{c}
	c.Groups = &Groups{c}
	c.Categories = &Categories{c}
	c.Comments = &Comments{c}
	c.Maintenance = &Maintenance{c}
	return c
}

// SetBaseURLs repoints the client, typically from a config reload. In-flight
// requests finish against the old host.
func (c *Client) SetBaseURLs(baseURL, uploadBaseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.uploadBaseURL = strings.TrimRight(uploadBaseURL, "/")
	if c.uploadBaseURL == "" {
		c.uploadBaseURL = c.baseURL
	}
}

// SetTimeout adjusts the request deadline on the underlying transport.
func (c *Client) SetTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := *c.http
	prev.Timeout = d
	c.http = &prev
}

func (c *Client) base() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

func (c *Client) uploadBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uploadBaseURL
}

// get/post/put/del are the JSON request helpers every resource group uses.
// body is marshalled when non-nil; the response is decoded into out when out
// is non-nil. Bare JSON scalars (counts, booleans) decode fine into their Go
// counterparts.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base()+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.send(req, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

// send applies the cross-cutting policies (rate limit, bearer credential,
// request id, tracing, metrics) and executes the request.
func (c *Client) send(req *http.Request, pathLabel string) (*http.Response, error) {
	ctx := req.Context()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	endpoint := endpointLabel(pathLabel)
	spanCtx, span := tracing.Tracer.Start(ctx, fmt.Sprintf("%s %s", req.Method, endpoint))
	span.SetAttributes(attribute.String("request.id", requestID))
	defer span.End()
	req = req.WithContext(spanCtx)

	c.mu.RLock()
	httpClient := c.http
	c.mu.RUnlock()

	start := time.Now()
	resp, err := httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		monitoring.RequestCounter.WithLabelValues(req.Method, endpoint, "error").Inc()
		logger.Log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("endpoint", endpoint),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	monitoring.RequestCounter.WithLabelValues(req.Method, endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	monitoring.RequestDuration.WithLabelValues(req.Method, endpoint).Observe(duration)

	logger.Log.Debug("request done",
		zap.String("method", req.Method),
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode))

	return resp, nil
}

func (c *Client) decode(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return translateError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

var pathIDs = regexp.MustCompile(`/\d+`)

// endpointLabel collapses numeric path segments so metric and span names
// stay low-cardinality.
func endpointLabel(path string) string {
	return pathIDs.ReplaceAllString(path, "/:id")
}
