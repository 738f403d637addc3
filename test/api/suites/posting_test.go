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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reddit/pkg/models"
	"github.com/unikorn-cloud/reddit/pkg/testing/harness"
	"github.com/unikorn-cloud/reddit/test/api"
)

var _ = Describe("Posting", func() {
	var s *harness.Suite

	BeforeEach(func() {
		s = api.NewSuite(config, "PostingTest")
	})

	Context("When submitting a self post", func() {
		It("should be readable with rendered text", func() {
			name := api.CreateSelfPost(ctx, s, config, "submitSelfPost")

			submission, err := s.Client().Submission(ctx, strings.TrimPrefix(name, models.KindLink+"_"))
			if err != nil {
				s.Handle(err)
			}

			s.ValidateModel(submission)

			selfText, err := submission.SelfText()
			Expect(err).NotTo(HaveOccurred())

			s.ValidateRenderString(selfText)
		})
	})

	Context("When replying to a submission", func() {
		It("should return the new comment", func() {
			name := api.CreateSelfPost(ctx, s, config, "submitSelfPost")

			comment := api.CreateComment(ctx, s, name, "postComment")

			s.ValidateModel(comment)
			s.ValidateRenderString(body(comment))

			parent, err := comment.ParentID()
			Expect(err).NotTo(HaveOccurred())
			Expect(parent).To(Equal(name))
		})
	})
})
