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

// Package outcome decides whether a failure is the fault of the code under
// test, or of the remote service, in which case the test should be skipped
// rather than failed.
package outcome

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unikorn-cloud/reddit/pkg/client"
)

// Reasons that indicate a write was rejected because of posting limits.
const (
	ReasonQuotaFilled = "QUOTA_FILLED"
	ReasonRateLimit   = "RATELIMIT"
)

// Outcome is a classified failure.
type Outcome struct {
	// Skip is true when the failure is attributable to the remote service.
	Skip bool
	// Message is what should be reported.
	Message string
	// Cause is the original error.
	Cause error
}

// Classify a generic error.  Any 5xx response skips, everything else fails.
func Classify(err error) Outcome {
	if networkError := (*client.NetworkError)(nil); errors.As(err, &networkError) && networkError.IsServerError() {
		return Outcome{
			Skip:    true,
			Message: fmt.Sprintf("Received %d, skipping", networkError.StatusCode),
			Cause:   err,
		}
	}

	return Outcome{
		Message: message(err),
		Cause:   err,
	}
}

// message returns the error's message if it has one, otherwise its type.
func message(err error) string {
	if err == nil {
		return "<nil>"
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fmt.Sprintf("%T", err)
}

// IsRateLimit tells whether the API rejected a write because of posting
// limits.  The match is exact, a nil error is never a rate limit.
func IsRateLimit(err *client.APIError) bool {
	if err == nil {
		return false
	}

	return err.Reason == ReasonQuotaFilled || err.Reason == ReasonRateLimit
}

// ClassifyPostingQuota classifies an API error raised by a write from the
// named method.  Posting limits skip, regardless of case, anything else fails.
// A nil error fails.
func ClassifyPostingQuota(method string, err *client.APIError) Outcome {
	if err == nil {
		return Classify(nil)
	}

	switch strings.ToUpper(err.Reason) {
	case ReasonQuotaFilled:
		return Outcome{
			Skip:    true,
			Message: fmt.Sprintf("Skipping %s(), link posting quota has been filled for this user", method),
			Cause:   err,
		}
	case ReasonRateLimit:
		return Outcome{
			Skip:    true,
			Message: fmt.Sprintf("Skipping %s(), reached ratelimit (%s)", method, err.Explanation),
			Cause:   err,
		}
	}

	return Outcome{
		Message: err.Error(),
		Cause:   err,
	}
}
