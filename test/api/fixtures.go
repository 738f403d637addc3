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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/logging"
	"github.com/unikorn-cloud/reddit/pkg/models"
	"github.com/unikorn-cloud/reddit/pkg/testing/harness"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// NewSuite creates a harness for the named suite, with a client configured
// from the test environment.
func NewSuite(config *TestConfig, name string) *harness.Suite {
	options := &logging.Options{
		Debug: config.DebugLogging,
	}

	return harness.New(name, client.New(config.ClientOptions()), harness.WithLogger(options.Logger(GinkgoWriter)))
}

// NewContext returns a context whose logger writes to the GinkgoWriter, so
// client request logging ends up in the spec report.
func NewContext(config *TestConfig) context.Context {
	options := &logging.Options{
		Debug: config.DebugLogging,
	}

	return log.IntoContext(context.Background(), options.Logger(GinkgoWriter))
}

// CreateSelfPost submits a text post and returns its full name.  Posting
// limits skip the test.
func CreateSelfPost(ctx context.Context, s *harness.Suite, config *TestConfig, method string) string {
	GinkgoHelper()

	name, err := s.Client().Submit(ctx, NewSelfPost(config).Build())
	if err != nil {
		handleWriteError(s, method, err)
	}

	Expect(name).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created submission %s\n", name)

	return name
}

// CreateComment replies to the parent thing.  Posting limits skip the test.
func CreateComment(ctx context.Context, s *harness.Suite, parent, method string) *models.Comment {
	GinkgoHelper()

	comment, err := s.Client().Comment(ctx, parent, UniqueName("comment"))
	if err != nil {
		handleWriteError(s, method, err)
	}

	Expect(comment).NotTo(BeNil())

	return comment
}

// handleWriteError reports a failed write, it does not return.
func handleWriteError(s *harness.Suite, method string, err error) {
	GinkgoHelper()

	if apiError := (*client.APIError)(nil); errors.As(err, &apiError) {
		s.HandlePostingQuota(method, apiError)

		return
	}

	s.Handle(err)
}
