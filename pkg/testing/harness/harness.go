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

// Package harness is the shared base of API test suites.  It identifies the
// suite to the API, and turns failures into the correct test outcome so
// that outages and posting limits upstream skip tests rather than failing
// them.
package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/constants"
	"github.com/unikorn-cloud/reddit/pkg/models"
	"github.com/unikorn-cloud/reddit/pkg/outcome"
	"github.com/unikorn-cloud/reddit/pkg/validation"

	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Suite is constructed once per test suite, it is not safe for concurrent use.
type Suite struct {
	// name identifies the suite.
	name string

	// client is the API client owned by the suite.
	client *client.Client

	// reporter surfaces outcomes to the test runner.
	reporter Reporter

	// log is where diagnostics go.
	log logr.Logger
}

// Option modifies the suite.
type Option func(*Suite)

// WithReporter overrides the default ginkgo reporter.
func WithReporter(reporter Reporter) Option {
	return func(s *Suite) {
		s.reporter = reporter
	}
}

// WithLogger overrides the default logger which writes to the GinkgoWriter.
func WithLogger(log logr.Logger) Option {
	return func(s *Suite) {
		s.log = log
	}
}

// New creates a suite with the given name, and sets the client's user
// agent to identify it.
func New(name string, client *client.Client, options ...Option) *Suite {
	s := &Suite{
		name:     name,
		client:   client,
		reporter: Ginkgo(),
		log:      zap.New(zap.WriteTo(ginkgo.GinkgoWriter), zap.UseDevMode(true)),
	}

	for _, o := range options {
		o(s)
	}

	s.log = s.log.WithName(name)

	if client != nil {
		client.SetUserAgent(s.UserAgent())
	}

	return s
}

func (s *Suite) Name() string {
	return s.name
}

func (s *Suite) Client() *client.Client {
	return s.client
}

// UserAgent returns the suite's identifying string.
func (s *Suite) UserAgent() string {
	return constants.UserAgent(s.name)
}

// EpochMillis returns the current time in milliseconds since the epoch,
// handy for generating unique content.
func EpochMillis() int64 {
	return time.Now().UnixMilli()
}

func (s *Suite) EpochMillis() int64 {
	return EpochMillis()
}

// Handle reports an unexpected error.  A 5xx response skips the test,
// anything else fails it.
func (s *Suite) Handle(err error) {
	s.report(outcome.Classify(err))
}

// IsRateLimit tells whether the error indicates a posting limit was hit.
func (s *Suite) IsRateLimit(err *client.APIError) bool {
	return outcome.IsRateLimit(err)
}

// HandlePostingQuota reports an error from a write performed by the named
// method.  Posting limits skip the test, anything else fails it.
func (s *Suite) HandlePostingQuota(method string, err *client.APIError) {
	o := outcome.ClassifyPostingQuota(method, err)

	if o.Skip {
		s.log.Error(err, o.Message, "method", method)
	}

	s.report(o)
}

// ValidateRenderString asserts both forms of a render string are present.
func (s *Suite) ValidateRenderString(pair *models.RenderStringPair) {
	s.check(validation.RenderString(pair))
}

// ValidateModel asserts every non-nullable property of the model, and any
// nested models, yield a value.
func (s *Suite) ValidateModel(m models.Model) {
	err := validation.Model(m)
	if err == nil {
		s.logUncovered(m)
	}

	s.check(err)
}

// ValidateModels validates each model in turn, reporting the first failure.
func ValidateModels[T models.Model](s *Suite, ms []T) {
	err := validation.Models(ms)
	if err == nil {
		for i := range ms {
			s.logUncovered(ms[i])
		}
	}

	s.check(err)
}

func (s *Suite) logUncovered(m models.Model) {
	if uncovered := validation.Uncovered(m); len(uncovered) > 0 {
		s.log.V(1).Info("model has undeclared fields", "model", fmt.Sprintf("%T", m), "fields", uncovered)
	}
}

// check reports a validation error.  An accessor that could not be invoked
// at all is treated like any other unexpected error.
func (s *Suite) check(err error) {
	if err == nil {
		return
	}

	if verr := (*validation.Error)(nil); errors.As(err, &verr) && verr.Kind == validation.Unreachable {
		s.Handle(verr.Cause)

		return
	}

	s.report(outcome.Outcome{
		Message: err.Error(),
		Cause:   err,
	})
}

func (s *Suite) report(o outcome.Outcome) {
	if o.Skip {
		s.reporter.Skip(o.Message)

		return
	}

	s.log.Error(o.Cause, "test failed", "message", o.Message)
	s.reporter.Fail(o.Message, o.Cause)
}
