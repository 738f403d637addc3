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

	"github.com/unikorn-cloud/reddit/pkg/models"
	"github.com/unikorn-cloud/reddit/pkg/testing/harness"
	"github.com/unikorn-cloud/reddit/test/api"
)

var _ = Describe("Subreddit", func() {
	var s *harness.Suite

	BeforeEach(func() {
		s = api.NewSuite(config, "SubredditTest")
	})

	Context("When reading subreddit metadata", func() {
		It("should return a fully populated subreddit", func() {
			subreddit, err := s.Client().Subreddit(ctx, config.Subreddit)
			if err != nil {
				s.Handle(err)
			}

			s.ValidateModel(subreddit)

			description, err := subreddit.PublicDescription()
			Expect(err).NotTo(HaveOccurred())

			if description != nil {
				s.ValidateRenderString(description)
			}
		})
	})

	Context("When listing new submissions", func() {
		It("should return fully populated submissions", func() {
			submissions, err := s.Client().New(ctx, config.Subreddit, 10)
			if err != nil {
				s.Handle(err)
			}

			harness.ValidateModels(s, submissions)

			GinkgoWriter.Printf("Found %d submissions\n", len(submissions))
		})

		It("should return comments for a submission", func() {
			submissions, err := s.Client().New(ctx, config.Subreddit, 1)
			if err != nil {
				s.Handle(err)
			}

			if len(submissions) == 0 {
				Skip("subreddit has no submissions")
			}

			id, err := submissions[0].ID()
			Expect(err).NotTo(HaveOccurred())

			submission, err := s.Client().Submission(ctx, id)
			if err != nil {
				s.Handle(err)
			}

			s.ValidateModel(submission)

			comments, err := s.Client().Comments(ctx, config.Subreddit, id)
			if err != nil {
				s.Handle(err)
			}

			harness.ValidateModels(s, comments)

			for _, comment := range comments {
				s.ValidateRenderString(body(comment))
			}
		})
	})
})

func body(comment *models.Comment) *models.RenderStringPair {
	GinkgoHelper()

	pair, err := comment.Body()
	Expect(err).NotTo(HaveOccurred())

	return pair
}
