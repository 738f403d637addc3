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
	"maps"
	"math"
	"slices"
	"time"

	"github.com/goccy/go-json"
)

// Thing kinds as they appear on the wire.
const (
	KindComment   = "t1"
	KindAccount   = "t2"
	KindLink      = "t3"
	KindSubreddit = "t5"
	KindListing   = "Listing"
	KindMore      = "more"
)

// object is a decoded JSON object with typed lookups.  Absent keys and
// JSON nulls are treated the same.
type object map[string]any

func (o object) lookup(key string) (any, bool) {
	v, ok := o[key]

	return v, ok && v != nil
}

func (o object) str(key string) (string, error) {
	v, ok := o.lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedNull, key)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, expected string", ErrUnexpectedType, key, v)
	}

	return s, nil
}

func (o object) optionalStr(key string) (*string, error) {
	if _, ok := o.lookup(key); !ok {
		return nil, nil
	}

	s, err := o.str(key)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (o object) number(key string) (float64, error) {
	v, ok := o.lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedNull, key)
	}

	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T, expected number", ErrUnexpectedType, key, v)
	}

	return f, nil
}

func (o object) integer(key string) (int, error) {
	f, err := o.number(key)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}

func (o object) boolean(key string) (bool, error) {
	v, ok := o.lookup(key)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnexpectedNull, key)
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, expected boolean", ErrUnexpectedType, key, v)
	}

	return b, nil
}

// timestamp decodes epoch seconds, reddit sends these as floats.
func (o object) timestamp(key string) (time.Time, error) {
	f, err := o.number(key)
	if err != nil {
		return time.Time{}, err
	}

	return epoch(f), nil
}

// edited decodes the "edited" field, which is false when the thing has
// never been edited, otherwise the epoch seconds of the last edit.
func (o object) edited(key string) (*time.Time, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}

	switch t := v.(type) {
	case bool:
		if t {
			return nil, fmt.Errorf("%w: %s is true, expected false or a timestamp", ErrUnexpectedType, key)
		}

		return nil, nil
	case float64:
		edited := epoch(t)

		return &edited, nil
	}

	return nil, fmt.Errorf("%w: %s is %T, expected boolean or number", ErrUnexpectedType, key, v)
}

func (o object) child(key string) (object, error) {
	v, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T, expected object", ErrUnexpectedType, key, v)
	}

	return object(m), nil
}

// renderStringPair combines a markdown field and its rendered HTML sibling.
// Returns nil when neither are present.
func (o object) renderStringPair(markdownKey, htmlKey string) (*RenderStringPair, error) {
	markdown, err := o.optionalStr(markdownKey)
	if err != nil {
		return nil, err
	}

	html, err := o.optionalStr(htmlKey)
	if err != nil {
		return nil, err
	}

	if markdown == nil && html == nil {
		return nil, nil
	}

	return NewRenderStringPair(markdown, html), nil
}

func epoch(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)

	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}

// thing is the common base of all JSON backed models.
type thing struct {
	data object
}

// Keys returns the raw JSON keys in the payload, sorted.
func (t *thing) Keys() []string {
	return slices.Sorted(maps.Keys(t.data))
}

// envelope is the {"kind": ..., "data": ...} wrapper used by the API.
type envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

func decodeObject(data []byte) (object, error) {
	var o map[string]any

	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}

	return object(o), nil
}

// UnmarshalThing decodes a single kind/data envelope.
func UnmarshalThing(data []byte) (Model, error) {
	var e envelope

	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding thing: %w", err)
	}

	return fromEnvelope(e)
}

func fromEnvelope(e envelope) (Model, error) {
	o, err := decodeObject(e.Data)
	if err != nil {
		return nil, err
	}

	switch e.Kind {
	case KindComment:
		return &Comment{thing{o}}, nil
	case KindAccount:
		return &Account{thing{o}}, nil
	case KindLink:
		return &Submission{thing{o}}, nil
	case KindSubreddit:
		return &Subreddit{thing{o}}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
}

// Listing is a page of things.
type Listing struct {
	// Children are the decoded things, "more" placeholders are dropped.
	Children []Model
	// After is the cursor for the next page, if any.
	After *string
}

type listingData struct {
	Children []envelope `json:"children"`
	After    *string    `json:"after"`
}

// UnmarshalListing decodes a listing envelope.
func UnmarshalListing(data []byte) (*Listing, error) {
	var e envelope

	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}

	return listingFromEnvelope(e)
}

func listingFromEnvelope(e envelope) (*Listing, error) {
	if e.Kind != KindListing {
		return nil, fmt.Errorf("%w: expected %s, got %q", ErrKindMismatch, KindListing, e.Kind)
	}

	var raw listingData

	if err := json.Unmarshal(e.Data, &raw); err != nil {
		return nil, fmt.Errorf("decoding listing data: %w", err)
	}

	listing := &Listing{
		Children: make([]Model, 0, len(raw.Children)),
		After:    raw.After,
	}

	for _, child := range raw.Children {
		if child.Kind == KindMore {
			continue
		}

		m, err := fromEnvelope(child)
		if err != nil {
			return nil, err
		}

		listing.Children = append(listing.Children, m)
	}

	return listing, nil
}

// UnmarshalListings decodes an array of listings, as returned by the
// comments endpoint.
func UnmarshalListings(data []byte) ([]*Listing, error) {
	var envelopes []envelope

	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("decoding listings: %w", err)
	}

	listings := make([]*Listing, len(envelopes))

	for i := range envelopes {
		listing, err := listingFromEnvelope(envelopes[i])
		if err != nil {
			return nil, err
		}

		listings[i] = listing
	}

	return listings, nil
}

// ChildrenOf returns the listing's children, asserting they are all of type T.
func ChildrenOf[T Model](l *Listing) ([]T, error) {
	out := make([]T, len(l.Children))

	for i, child := range l.Children {
		t, ok := child.(T)
		if !ok {
			var want T

			return nil, fmt.Errorf("%w: child %d is %T, expected %T", ErrKindMismatch, i, child, want)
		}

		out[i] = t
	}

	return out, nil
}
