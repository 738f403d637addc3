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

// Account is a user account (t2).
type Account struct {
	thing
}

// NewAccount wraps a bare account object, as returned by /api/v1/me.
func NewAccount(data []byte) (*Account, error) {
	o, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	return &Account{thing{o}}, nil
}

func (a *Account) ID() (string, error) {
	return a.data.str("id")
}

func (a *Account) Name() (string, error) {
	return a.data.str("name")
}

func (a *Account) Created() (time.Time, error) {
	return a.data.timestamp("created_utc")
}

func (a *Account) LinkKarma() (int, error) {
	return a.data.integer("link_karma")
}

func (a *Account) CommentKarma() (int, error) {
	return a.data.integer("comment_karma")
}

func (a *Account) HasGold() (bool, error) {
	return a.data.boolean("is_gold")
}

// Profile returns the user's profile subreddit, older accounts may not
// have one.
func (a *Account) Profile() (*ProfileSubreddit, error) {
	o, err := a.data.child("subreddit")
	if err != nil || o == nil {
		return nil, err
	}

	return &ProfileSubreddit{thing{o}}, nil
}

func (a *Account) Properties() []Property {
	return []Property{
		Value("id", a.ID),
		Value("name", a.Name),
		Value("created_utc", a.Created),
		Value("link_karma", a.LinkKarma),
		Value("comment_karma", a.CommentKarma),
		Value("is_gold", a.HasGold),
		Nested("subreddit", a.Profile).AsNullable(),
	}
}

// ProfileSubreddit is the summary of a user's profile subreddit embedded
// in their account.
type ProfileSubreddit struct {
	thing
}

func (p *ProfileSubreddit) DisplayName() (string, error) {
	return p.data.str("display_name")
}

func (p *ProfileSubreddit) Title() (string, error) {
	return p.data.str("title")
}

func (p *ProfileSubreddit) PublicDescription() (*string, error) {
	return p.data.optionalStr("public_description")
}

func (p *ProfileSubreddit) Properties() []Property {
	return []Property{
		Value("display_name", p.DisplayName),
		Value("title", p.Title),
		Pointer("public_description", p.PublicDescription).AsNullable(),
	}
}
