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

// Subreddit is a community (t5).
type Subreddit struct {
	thing
}

func (s *Subreddit) ID() (string, error) {
	return s.data.str("id")
}

func (s *Subreddit) FullName() (string, error) {
	return s.data.str("name")
}

func (s *Subreddit) DisplayName() (string, error) {
	return s.data.str("display_name")
}

func (s *Subreddit) Title() (string, error) {
	return s.data.str("title")
}

func (s *Subreddit) Subscribers() (int, error) {
	return s.data.integer("subscribers")
}

func (s *Subreddit) NSFW() (bool, error) {
	return s.data.boolean("over18")
}

func (s *Subreddit) Created() (time.Time, error) {
	return s.data.timestamp("created_utc")
}

// PublicDescription is the sidebar summary, private and quarantined
// subreddits omit the rendered version.
func (s *Subreddit) PublicDescription() (*RenderStringPair, error) {
	if _, ok := s.data.lookup("public_description_html"); !ok {
		return nil, nil
	}

	return s.data.renderStringPair("public_description", "public_description_html")
}

func (s *Subreddit) Properties() []Property {
	return []Property{
		Value("id", s.ID),
		Value("name", s.FullName),
		Value("display_name", s.DisplayName),
		Value("title", s.Title),
		Value("subscribers", s.Subscribers),
		Value("over18", s.NSFW),
		Value("created_utc", s.Created),
		Nested("public_description", s.PublicDescription).AsNullable(),
	}
}
