/*
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

package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrResourceNotFound is returned when a lookup by ID yields nothing.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrUnexpectedResponse is returned when a response cannot be interpreted.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// NetworkError is returned when the API responds with a non-success status.
type NetworkError struct {
	// Method is the HTTP method.
	Method string
	// Path is the request path.
	Path string
	// StatusCode is the HTTP status code.
	StatusCode int
	// Body is the raw response body.
	Body string
	// TraceID allows the request to be found in the logs.
	TraceID string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d %s (trace ID: %s)", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.TraceID)
}

// IsServerError tells whether the failure is attributable to the remote service.
func (e *NetworkError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// APIError is an error reported in the body of an otherwise successful
// response.
type APIError struct {
	// Reason is the machine readable code e.g. RATELIMIT.
	Reason string
	// Explanation is the human readable description.
	Explanation string
	// Field is the form field the error relates to, if any.
	Field string
}

func (e *APIError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "API returned error: %s (%s)", e.Reason, e.Explanation)

	if e.Field != "" {
		fmt.Fprintf(&b, " for field %s", e.Field)
	}

	return b.String()
}

// jsonEnvelope is returned by POST endpoints when api_type=json is set.
type jsonEnvelope struct {
	JSON struct {
		Errors [][]any         `json:"errors"`
		Data   json.RawMessage `json:"data"`
	} `json:"json"`
}

// parseJSONEnvelope returns the data in the envelope, or the first error
// it reports.
func parseJSONEnvelope(body []byte) (json.RawMessage, error) {
	var envelope jsonEnvelope

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding json envelope: %w", ErrUnexpectedResponse, err)
	}

	if len(envelope.JSON.Errors) > 0 {
		return nil, apiErrorFromTuple(envelope.JSON.Errors[0])
	}

	return envelope.JSON.Data, nil
}

// apiErrorFromTuple decodes a [reason, explanation, field] tuple, any
// member may be absent or null.
func apiErrorFromTuple(tuple []any) *APIError {
	member := func(i int) string {
		if i >= len(tuple) {
			return ""
		}

		s, _ := tuple[i].(string)

		return s
	}

	return &APIError{
		Reason:      member(0),
		Explanation: member(1),
		Field:       member(2),
	}
}
