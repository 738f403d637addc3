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

package client

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Account endpoints.
func (e *Endpoints) Me() string {
	return "/api/v1/me"
}

// Subreddit endpoints.
func (e *Endpoints) SubredditAbout(subreddit string) string {
	return fmt.Sprintf("/r/%s/about", url.PathEscape(subreddit))
}

func (e *Endpoints) SubredditNew(subreddit string) string {
	return fmt.Sprintf("/r/%s/new", url.PathEscape(subreddit))
}

// Link and comment endpoints.
func (e *Endpoints) ByID(fullName string) string {
	return fmt.Sprintf("/by_id/%s", url.PathEscape(fullName))
}

func (e *Endpoints) Comments(subreddit, submissionID string) string {
	return fmt.Sprintf("/r/%s/comments/%s",
		url.PathEscape(subreddit), url.PathEscape(submissionID))
}

// Write endpoints, these are subject to posting quotas.
func (e *Endpoints) Submit() string {
	return "/api/submit"
}

func (e *Endpoints) Comment() string {
	return "/api/comment"
}
