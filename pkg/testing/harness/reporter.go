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

package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/onsi/ginkgo/v2"
)

type ginkgoReporter struct{}

// Ginkgo reports via ginkgo.Skip and ginkgo.Fail, for use inside specs.
func Ginkgo() Reporter {
	return ginkgoReporter{}
}

func (ginkgoReporter) Skip(message string) {
	ginkgo.GinkgoHelper()
	ginkgo.Skip(message)
}

func (ginkgoReporter) Fail(message string, cause error) {
	ginkgo.GinkgoHelper()

	if cause != nil {
		ginkgo.AddReportEntry("cause", fmt.Sprintf("%T: %v", cause, cause), ginkgo.ReportEntryVisibilityFailureOrVerbose)
	}

	ginkgo.Fail(failureMessage(message, cause))
}

type tbReporter struct {
	tb testing.TB
}

// FromTB reports via a standard testing.TB.
func FromTB(tb testing.TB) Reporter {
	return &tbReporter{
		tb: tb,
	}
}

func (r *tbReporter) Skip(message string) {
	r.tb.Helper()
	r.tb.Skip(message)
}

func (r *tbReporter) Fail(message string, cause error) {
	r.tb.Helper()
	r.tb.Fatal(failureMessage(message, cause))
}

// failureMessage appends the cause to the message, unless it's already
// part of it.
func failureMessage(message string, cause error) string {
	if cause == nil {
		return message
	}

	if text := cause.Error(); text != "" && !strings.Contains(message, text) {
		return message + ": " + text
	}

	return message
}
