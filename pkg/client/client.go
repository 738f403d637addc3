/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package client is a minimal Reddit API client.  It decodes responses
// into models and reports failures as typed errors so callers can decide
// what is the fault of the remote service.  Retries, rate limit accounting
// and token acquisition are left to the caller.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/unikorn-cloud/reddit/pkg/constants"
	"github.com/unikorn-cloud/reddit/pkg/models"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Client provides typed access to the API.
type Client struct {
	baseURL   string
	client    *http.Client
	authToken string
	userAgent string
	options   *Options
	endpoints *Endpoints
}

// New returns a new client.
func New(options *Options) *Client {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: options.Timeout,
		},
		authToken: options.Token,
		userAgent: constants.VersionString(),
		options:   options,
		endpoints: NewEndpoints(),
	}
}

// HTTPClient exposes the underlying HTTP client e.g. for interception in tests.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// SetUserAgent sets what the client identifies itself as, the API is
// liable to throttle generic user agents.
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

func (c *Client) UserAgent() string {
	return c.userAgent
}

//nolint:cyclop
func (c *Client) doRequest(ctx context.Context, method, path string, query, form url.Values) ([]byte, error) {
	log := log.FromContext(ctx)

	fullURL := c.baseURL + path

	if query == nil {
		query = url.Values{}
	}

	// Without this, HTML entities in markdown come back escaped.
	query.Set("raw_json", "1")

	fullURL += "?" + query.Encode()

	var body io.Reader

	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	traceID := extractTraceID(traceParent)

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "client="+constants.LibraryName)
	req.Header.Set("User-Agent", c.userAgent)

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "method", method, "path", path, "duration", duration, "traceID", traceID)

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "method", method, "path", path, "status", resp.StatusCode, "traceID", traceID)

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.options.LogRequests {
		log.Info("request complete", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.options.LogResponses && len(respBody) > 0 {
		log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Info("unexpected status", "method", method, "path", path, "status", resp.StatusCode, "traceID", traceID)

		return nil, &NetworkError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			TraceID:    traceID,
		}
	}

	return respBody, nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*models.Account, error) {
	body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Me(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return models.NewAccount(body)
}

// Subreddit returns a subreddit's details.
func (c *Client) Subreddit(ctx context.Context, name string) (*models.Subreddit, error) {
	body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.SubredditAbout(name), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subreddit: %w", err)
	}

	thing, err := models.UnmarshalThing(body)
	if err != nil {
		return nil, err
	}

	subreddit, ok := thing.(*models.Subreddit)
	if !ok {
		return nil, fmt.Errorf("%w: subreddit %s is %T", ErrUnexpectedResponse, name, thing)
	}

	return subreddit, nil
}

// New lists the newest submissions in a subreddit.
func (c *Client) New(ctx context.Context, subreddit string, limit int) ([]*models.Submission, error) {
	query := url.Values{}

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.SubredditNew(subreddit), query, nil)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	listing, err := models.UnmarshalListing(body)
	if err != nil {
		return nil, err
	}

	return models.ChildrenOf[*models.Submission](listing)
}

// Submission looks up a single submission by ID.
func (c *Client) Submission(ctx context.Context, id string) (*models.Submission, error) {
	body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ByID(models.KindLink+"_"+id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	listing, err := models.UnmarshalListing(body)
	if err != nil {
		return nil, err
	}

	submissions, err := models.ChildrenOf[*models.Submission](listing)
	if err != nil {
		return nil, err
	}

	if len(submissions) == 0 {
		return nil, fmt.Errorf("%w: submission %s", ErrResourceNotFound, id)
	}

	return submissions[0], nil
}

// Comments lists the top level comments on a submission.
func (c *Client) Comments(ctx context.Context, subreddit, submissionID string) ([]*models.Comment, error) {
	body, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Comments(subreddit, submissionID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	listings, err := models.UnmarshalListings(body)
	if err != nil {
		return nil, err
	}

	// The first listing is the submission itself.
	if len(listings) != 2 {
		return nil, fmt.Errorf("%w: expected 2 listings, got %d", ErrUnexpectedResponse, len(listings))
	}

	return models.ChildrenOf[*models.Comment](listings[1])
}

// SubmitRequest describes a new submission, exactly one of Text or URL
// should be set.
type SubmitRequest struct {
	Subreddit string
	Title     string
	Text      string
	URL       string
}

type submitResponse struct {
	Name string `json:"name"`
}

// Submit creates a new submission and returns its full name.  Posting quota
// and rate limit failures are reported as an APIError.
func (c *Client) Submit(ctx context.Context, request *SubmitRequest) (string, error) {
	form := url.Values{
		"api_type": {"json"},
		"sr":       {request.Subreddit},
		"title":    {request.Title},
	}

	if request.URL != "" {
		form.Set("kind", "link")
		form.Set("url", request.URL)
	} else {
		form.Set("kind", "self")
		form.Set("text", request.Text)
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Submit(), nil, form)
	if err != nil {
		return "", fmt.Errorf("submitting: %w", err)
	}

	data, err := parseJSONEnvelope(body)
	if err != nil {
		return "", err
	}

	var result submitResponse

	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("%w: decoding submission: %w", ErrUnexpectedResponse, err)
	}

	return result.Name, nil
}

type commentResponse struct {
	Things []json.RawMessage `json:"things"`
}

// Comment replies to a submission or comment, identified by its full name.
func (c *Client) Comment(ctx context.Context, parent, text string) (*models.Comment, error) {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {parent},
		"text":     {text},
	}

	body, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Comment(), nil, form)
	if err != nil {
		return nil, fmt.Errorf("commenting: %w", err)
	}

	data, err := parseJSONEnvelope(body)
	if err != nil {
		return nil, err
	}

	var result commentResponse

	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding comment: %w", ErrUnexpectedResponse, err)
	}

	if len(result.Things) != 1 {
		return nil, fmt.Errorf("%w: expected 1 comment, got %d", ErrUnexpectedResponse, len(result.Things))
	}

	thing, err := models.UnmarshalThing(result.Things[0])
	if err != nil {
		return nil, err
	}

	comment, ok := thing.(*models.Comment)
	if !ok {
		return nil, fmt.Errorf("%w: comment is %T", ErrUnexpectedResponse, thing)
	}

	return comment, nil
}
