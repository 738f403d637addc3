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
	"fmt"
)

// RenderStringPair is some user content in both its markdown source and
// rendered HTML forms.
type RenderStringPair struct {
	markdown *string
	html     *string
}

// NewRenderStringPair returns a new pair, either side may be nil if the
// upstream omitted it.
func NewRenderStringPair(markdown, html *string) *RenderStringPair {
	return &RenderStringPair{
		markdown: markdown,
		html:     html,
	}
}

// Markdown returns the markdown source.
func (p *RenderStringPair) Markdown() (string, error) {
	if p.markdown == nil {
		return "", fmt.Errorf("%w: md", ErrUnexpectedNull)
	}

	return *p.markdown, nil
}

// HTML returns the rendered HTML.
func (p *RenderStringPair) HTML() (string, error) {
	if p.html == nil {
		return "", fmt.Errorf("%w: html", ErrUnexpectedNull)
	}

	return *p.html, nil
}

func (p *RenderStringPair) Properties() []Property {
	return []Property{
		Value("md", p.Markdown),
		Value("html", p.HTML),
	}
}
