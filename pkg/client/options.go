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
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reddit/pkg/constants"
)

// Options allows the client to be configured on the CLI.
type Options struct {
	// BaseURL is the API endpoint.
	BaseURL string
	// Token is an OAuth2 bearer token, acquiring one is up to the caller.
	Token string
	// Timeout is applied to every request.
	Timeout time.Duration
	// LogRequests logs the status and duration of every request.
	LogRequests bool
	// LogResponses logs every response body.
	LogResponses bool
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "reddit-base-url", constants.DefaultBaseURL, "Reddit API base URL.")
	f.StringVar(&o.Token, "reddit-token", "", "OAuth2 bearer token used to authenticate requests.")
	f.DurationVar(&o.Timeout, "reddit-request-timeout", 30*time.Second, "Timeout applied to each API request.")
	f.BoolVar(&o.LogRequests, "log-requests", false, "Log the status and duration of each request.")
	f.BoolVar(&o.LogResponses, "log-responses", false, "Log every response body.")
}
