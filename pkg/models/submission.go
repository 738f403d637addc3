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

package models

import (
	"time"
)

// Submission is a link or self post (t3).
type Submission struct {
	thing
}

func (s *Submission) ID() (string, error) {
	return s.data.str("id")
}

// FullName is the kind prefixed ID e.g. t3_abc123.
func (s *Submission) FullName() (string, error) {
	return s.data.str("name")
}

func (s *Submission) Title() (string, error) {
	return s.data.str("title")
}

func (s *Submission) Author() (string, error) {
	return s.data.str("author")
}

func (s *Submission) Subreddit() (string, error) {
	return s.data.str("subreddit")
}

func (s *Submission) Created() (time.Time, error) {
	return s.data.timestamp("created_utc")
}

func (s *Submission) Score() (int, error) {
	return s.data.integer("score")
}

func (s *Submission) URL() (string, error) {
	return s.data.str("url")
}

func (s *Submission) Permalink() (string, error) {
	return s.data.str("permalink")
}

func (s *Submission) CommentCount() (int, error) {
	return s.data.integer("num_comments")
}

func (s *Submission) NSFW() (bool, error) {
	return s.data.boolean("over_18")
}

// Edited returns when the submission was last edited, nil if never.
func (s *Submission) Edited() (*time.Time, error) {
	return s.data.edited("edited")
}

func (s *Submission) FlairText() (*string, error) {
	return s.data.optionalStr("link_flair_text")
}

// SelfText returns the body of a self post, nil for link posts.
func (s *Submission) SelfText() (*RenderStringPair, error) {
	// Link posts carry an empty markdown body but no HTML.
	if _, ok := s.data.lookup("selftext_html"); !ok {
		return nil, nil
	}

	return s.data.renderStringPair("selftext", "selftext_html")
}

func (s *Submission) Properties() []Property {
	return []Property{
		Value("id", s.ID),
		Value("name", s.FullName),
		Value("title", s.Title),
		Value("author", s.Author),
		Value("subreddit", s.Subreddit),
		Value("created_utc", s.Created),
		Value("score", s.Score),
		Value("url", s.URL),
		Value("permalink", s.Permalink),
		Value("num_comments", s.CommentCount),
		Value("over_18", s.NSFW),
		Pointer("edited", s.Edited).AsNullable(),
		Pointer("link_flair_text", s.FlairText).AsNullable(),
		Nested("selftext", s.SelfText).AsNullable(),
	}
}
