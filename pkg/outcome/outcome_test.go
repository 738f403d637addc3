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

package outcome_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/outcome"
)

type silentError struct{}

func (silentError) Error() string {
	return ""
}

func TestClassifyServerError(t *testing.T) {
	t.Parallel()

	for _, code := range []int{500, 503, 599} {
		err := &client.NetworkError{Method: "GET", Path: "/api/v1/me", StatusCode: code}

		o := outcome.Classify(err)
		require.True(t, o.Skip)
		require.Equal(t, fmt.Sprintf("Received %d, skipping", code), o.Message)
		require.Equal(t, err, o.Cause)
	}
}

func TestClassifyWrappedServerError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("getting account: %w", &client.NetworkError{StatusCode: 503})

	o := outcome.Classify(err)
	require.True(t, o.Skip)
	require.Equal(t, "Received 503, skipping", o.Message)
}

func TestClassifyClientError(t *testing.T) {
	t.Parallel()

	for _, code := range []int{400, 404, 429, 499, 600} {
		err := &client.NetworkError{Method: "GET", Path: "/api/v1/me", StatusCode: code}

		o := outcome.Classify(err)
		require.False(t, o.Skip)
		require.Equal(t, err.Error(), o.Message)
	}
}

func TestClassifyGenericError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	o := outcome.Classify(err)
	require.False(t, o.Skip)
	require.Equal(t, "connection reset", o.Message)
	require.ErrorIs(t, o.Cause, err)
}

func TestClassifyNoMessage(t *testing.T) {
	t.Parallel()

	o := outcome.Classify(silentError{})
	require.False(t, o.Skip)
	require.Equal(t, "outcome_test.silentError", o.Message)
}

func TestClassifyNil(t *testing.T) {
	t.Parallel()

	o := outcome.Classify(nil)
	require.False(t, o.Skip)
	require.Equal(t, "<nil>", o.Message)
}

func TestIsRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason   string
		expected bool
	}{
		{reason: "QUOTA_FILLED", expected: true},
		{reason: "RATELIMIT", expected: true},
		{reason: "ratelimit", expected: false},
		{reason: "Quota_Filled", expected: false},
		{reason: "SUBREDDIT_NOEXIST", expected: false},
		{reason: "", expected: false},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, outcome.IsRateLimit(&client.APIError{Reason: test.reason}), test.reason)
	}
}

func TestClassifyPostingQuotaRateLimit(t *testing.T) {
	t.Parallel()

	err := &client.APIError{Reason: "RATELIMIT", Explanation: "60s"}

	o := outcome.ClassifyPostingQuota("postComment", err)
	require.True(t, o.Skip)
	require.Equal(t, "Skipping postComment(), reached ratelimit (60s)", o.Message)
}

func TestClassifyPostingQuotaFilled(t *testing.T) {
	t.Parallel()

	o := outcome.ClassifyPostingQuota("submitLink", &client.APIError{Reason: "QUOTA_FILLED"})
	require.True(t, o.Skip)
	require.Equal(t, "Skipping submitLink(), link posting quota has been filled for this user", o.Message)
}

func TestClassifyPostingQuotaCaseInsensitive(t *testing.T) {
	t.Parallel()

	o := outcome.ClassifyPostingQuota("postComment", &client.APIError{Reason: "ratelimit", Explanation: "9 minutes"})
	require.True(t, o.Skip)
	require.Equal(t, "Skipping postComment(), reached ratelimit (9 minutes)", o.Message)
}

func TestClassifyPostingQuotaOther(t *testing.T) {
	t.Parallel()

	err := &client.APIError{Reason: "SUBREDDIT_NOEXIST", Explanation: "that subreddit doesn't exist", Field: "sr"}

	o := outcome.ClassifyPostingQuota("submitLink", err)
	require.False(t, o.Skip)
	require.Equal(t, "API returned error: SUBREDDIT_NOEXIST (that subreddit doesn't exist) for field sr", o.Message)
}

func TestIsRateLimitNil(t *testing.T) {
	t.Parallel()

	require.False(t, outcome.IsRateLimit(nil))
}

func TestClassifyPostingQuotaNil(t *testing.T) {
	t.Parallel()

	o := outcome.ClassifyPostingQuota("postComment", nil)
	require.False(t, o.Skip)
	require.Equal(t, "<nil>", o.Message)
	require.NoError(t, o.Cause)
}
