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
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reddit/pkg/testing/harness"
	"github.com/unikorn-cloud/reddit/test/api"
)

var _ = Describe("Account", func() {
	var s *harness.Suite

	BeforeEach(func() {
		s = api.NewSuite(config, "AccountTest")
	})

	Context("When identifying the client", func() {
		It("should send the suite's user agent", func() {
			Expect(s.Client().UserAgent()).To(Equal(s.UserAgent()))
			Expect(s.UserAgent()).To(HavePrefix("AccountTest for "))
		})
	})

	Context("When reading the authenticated account", func() {
		It("should return a fully populated account", func() {
			account, err := s.Client().Me(ctx)
			if err != nil {
				s.Handle(err)
			}

			s.ValidateModel(account)

			name, err := account.Name()
			Expect(err).NotTo(HaveOccurred())
			GinkgoWriter.Printf("Authenticated as %s\n", name)
		})
	})
})
