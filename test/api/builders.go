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

package api

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/testing/harness"
)

// UniqueName returns a name that won't collide with previous test runs.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// SubmissionBuilder builds submissions for testing.
type SubmissionBuilder struct {
	request client.SubmitRequest
}

// NewSelfPost creates a text submission with a unique title in the test
// subreddit.
func NewSelfPost(config *TestConfig) *SubmissionBuilder {
	return &SubmissionBuilder{
		request: client.SubmitRequest{
			Subreddit: config.Subreddit,
			Title:     UniqueName("testautomation"),
			Text:      fmt.Sprintf("Created at %d", harness.EpochMillis()),
		},
	}
}

// WithTitle overrides the generated title.
func (b *SubmissionBuilder) WithTitle(title string) *SubmissionBuilder {
	b.request.Title = title

	return b
}

// WithURL turns the submission into a link post.
func (b *SubmissionBuilder) WithURL(url string) *SubmissionBuilder {
	b.request.URL = url
	b.request.Text = ""

	return b
}

func (b *SubmissionBuilder) Build() *client.SubmitRequest {
	request := b.request

	return &request
}
