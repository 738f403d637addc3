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

// Comment is a comment on a submission (t1).
type Comment struct {
	thing
}

func (c *Comment) ID() (string, error) {
	return c.data.str("id")
}

func (c *Comment) FullName() (string, error) {
	return c.data.str("name")
}

func (c *Comment) Author() (string, error) {
	return c.data.str("author")
}

// LinkID is the full name of the submission the comment belongs to.
func (c *Comment) LinkID() (string, error) {
	return c.data.str("link_id")
}

// ParentID is the full name of either the submission or parent comment.
func (c *Comment) ParentID() (string, error) {
	return c.data.str("parent_id")
}

func (c *Comment) Score() (int, error) {
	return c.data.integer("score")
}

func (c *Comment) Created() (time.Time, error) {
	return c.data.timestamp("created_utc")
}

func (c *Comment) Edited() (*time.Time, error) {
	return c.data.edited("edited")
}

func (c *Comment) Body() (*RenderStringPair, error) {
	return c.data.renderStringPair("body", "body_html")
}

func (c *Comment) Properties() []Property {
	return []Property{
		Value("id", c.ID),
		Value("name", c.FullName),
		Value("author", c.Author),
		Value("link_id", c.LinkID),
		Value("parent_id", c.ParentID),
		Value("score", c.Score),
		Value("created_utc", c.Created),
		Pointer("edited", c.Edited).AsNullable(),
		Nested("body", c.Body),
	}
}
