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

package client_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/h2non/gock"
	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/unikorn-cloud/reddit/pkg/client"
)

const baseURL = "https://oauth.test"

const me = `{
  "id": "u1",
  "name": "someone",
  "created_utc": 1600000000,
  "link_karma": 10,
  "comment_karma": 20,
  "is_gold": false
}`

const about = `{
  "kind": "t5",
  "data": {
    "id": "2qh1i",
    "name": "t5_2qh1i",
    "display_name": "golang",
    "title": "The Go Programming Language",
    "subscribers": 250000,
    "over18": false,
    "created_utc": 1257000000,
    "public_description": "Ask questions and post articles about Go",
    "public_description_html": "<p>Ask questions and post articles about Go</p>"
  }
}`

const submission = `{
  "kind": "t3",
  "data": {
    "id": "abc123",
    "name": "t3_abc123",
    "title": "A link",
    "author": "someone",
    "subreddit": "golang",
    "created_utc": 1700000000,
    "score": 42,
    "url": "https://go.dev",
    "permalink": "/r/golang/comments/abc123/a_link/",
    "num_comments": 1,
    "over_18": false,
    "edited": false,
    "selftext": "",
    "selftext_html": null
  }
}`

const comment = `{
  "kind": "t1",
  "data": {
    "id": "c1",
    "name": "t1_c1",
    "author": "someone",
    "link_id": "t3_abc123",
    "parent_id": "t3_abc123",
    "score": 1,
    "created_utc": 1700000100,
    "edited": false,
    "body": "nice",
    "body_html": "<p>nice</p>"
  }
}`

const listing = `{"kind": "Listing", "data": {"after": null, "children": [` + submission + `]}}`

const emptyListing = `{"kind": "Listing", "data": {"after": null, "children": []}}`

const comments = `[` + listing + `, {"kind": "Listing", "data": {"after": null, "children": [` + comment + `, {"kind": "more", "data": {}}]}}]`

var _ = Describe("Client", func() {
	var (
		ctx context.Context
		cli *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()

		cli = client.New(&client.Options{
			BaseURL: baseURL + "/",
			Token:   "secret",
		})
		cli.SetUserAgent("ClientSuite for uni-reddit v0.0.0")

		gock.InterceptClient(cli.HTTPClient())
	})

	AfterEach(func() {
		Expect(gock.IsDone()).To(BeTrue())

		gock.RestoreClient(cli.HTTPClient())
		gock.OffAll()
	})

	Context("Reading", func() {
		It("identifies and authenticates itself", func() {
			gock.New(baseURL).
				Get("/api/v1/me").
				MatchParam("raw_json", "1").
				MatchHeader("User-Agent", "^ClientSuite for uni-reddit").
				MatchHeader("Authorization", "^Bearer secret$").
				MatchHeader("Traceparent", "^00-[0-9a-f]{32}-[0-9a-f]{16}-01$").
				Reply(http.StatusOK).
				BodyString(me)

			account, err := cli.Me(ctx)
			Expect(err).ToNot(HaveOccurred())

			name, err := account.Name()
			Expect(err).ToNot(HaveOccurred())
			Expect(name).To(Equal("someone"))
		})

		It("gets a subreddit", func() {
			gock.New(baseURL).
				Get("/r/golang/about").
				Reply(http.StatusOK).
				BodyString(about)

			subreddit, err := cli.Subreddit(ctx, "golang")
			Expect(err).ToNot(HaveOccurred())

			subscribers, err := subreddit.Subscribers()
			Expect(err).ToNot(HaveOccurred())
			Expect(subscribers).To(Equal(250000))
		})

		It("lists new submissions", func() {
			gock.New(baseURL).
				Get("/r/golang/new").
				MatchParam("limit", "5").
				Reply(http.StatusOK).
				BodyString(listing)

			submissions, err := cli.New(ctx, "golang", 5)
			Expect(err).ToNot(HaveOccurred())
			Expect(submissions).To(HaveLen(1))
		})

		It("gets a submission by ID", func() {
			gock.New(baseURL).
				Get("/by_id/t3_abc123").
				Reply(http.StatusOK).
				BodyString(listing)

			submission, err := cli.Submission(ctx, "abc123")
			Expect(err).ToNot(HaveOccurred())

			title, err := submission.Title()
			Expect(err).ToNot(HaveOccurred())
			Expect(title).To(Equal("A link"))
		})

		It("reports a missing submission", func() {
			gock.New(baseURL).
				Get("/by_id/t3_gone").
				Reply(http.StatusOK).
				BodyString(emptyListing)

			_, err := cli.Submission(ctx, "gone")
			Expect(err).To(MatchError(client.ErrResourceNotFound))
		})

		It("lists comments", func() {
			gock.New(baseURL).
				Get("/r/golang/comments/abc123").
				Reply(http.StatusOK).
				BodyString(comments)

			result, err := cli.Comments(ctx, "golang", "abc123")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
		})
	})

	Context("Failures", func() {
		It("returns a network error for server errors", func() {
			gock.New(baseURL).
				Get("/api/v1/me").
				Reply(http.StatusServiceUnavailable).
				BodyString("upstream connect error")

			_, err := cli.Me(ctx)

			var networkError *client.NetworkError

			Expect(errors.As(err, &networkError)).To(BeTrue())
			Expect(networkError.StatusCode).To(Equal(http.StatusServiceUnavailable))
			Expect(networkError.IsServerError()).To(BeTrue())
			Expect(networkError.Body).To(Equal("upstream connect error"))
		})
	})

	Context("Writing", func() {
		It("submits a self post", func() {
			gock.New(baseURL).
				Post("/api/submit").
				MatchHeader("Content-Type", "application/x-www-form-urlencoded").
				Reply(http.StatusOK).
				BodyString(`{"json": {"errors": [], "data": {"url": "https://www.reddit.com/r/test/comments/xyz/", "id": "xyz", "name": "t3_xyz"}}}`)

			name, err := cli.Submit(ctx, &client.SubmitRequest{
				Subreddit: "test",
				Title:     "hello",
				Text:      "world",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(name).To(Equal("t3_xyz"))
		})

		It("reports rate limiting as an API error", func() {
			gock.New(baseURL).
				Post("/api/submit").
				Reply(http.StatusOK).
				BodyString(`{"json": {"errors": [["RATELIMIT", "you are doing that too much. try again in 9 minutes.", "ratelimit"]]}}`)

			_, err := cli.Submit(ctx, &client.SubmitRequest{
				Subreddit: "test",
				Title:     "hello",
				URL:       "https://go.dev",
			})

			var apiError *client.APIError

			Expect(errors.As(err, &apiError)).To(BeTrue())
			Expect(apiError.Reason).To(Equal("RATELIMIT"))
			Expect(apiError.Explanation).To(Equal("you are doing that too much. try again in 9 minutes."))
			Expect(apiError.Field).To(Equal("ratelimit"))
		})

		It("tolerates a null field in an API error", func() {
			gock.New(baseURL).
				Post("/api/comment").
				Reply(http.StatusOK).
				BodyString(`{"json": {"errors": [["USER_REQUIRED", "Please log in to do that.", null]]}}`)

			_, err := cli.Comment(ctx, "t3_abc123", "nice")

			var apiError *client.APIError

			Expect(errors.As(err, &apiError)).To(BeTrue())
			Expect(apiError.Reason).To(Equal("USER_REQUIRED"))
			Expect(apiError.Field).To(BeEmpty())
			Expect(apiError.Error()).To(Equal("API returned error: USER_REQUIRED (Please log in to do that.)"))
		})

		It("comments", func() {
			gock.New(baseURL).
				Post("/api/comment").
				Reply(http.StatusOK).
				BodyString(`{"json": {"errors": [], "data": {"things": [` + comment + `]}}}`)

			c, err := cli.Comment(ctx, "t3_abc123", "nice")
			Expect(err).ToNot(HaveOccurred())

			parent, err := c.ParentID()
			Expect(err).ToNot(HaveOccurred())
			Expect(parent).To(Equal("t3_abc123"))
		})
	})
})
