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

// Package models provides typed views of Reddit API responses.
//
// Every response type is a Model: it registers, in declaration order, the
// properties that make up its validated surface along with whether a null
// result is acceptable.  This lets tests assert that the decoder and the
// declared nullability stay consistent as the upstream API evolves without
// resorting to reflection.
package models

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnexpectedNull is raised by an accessor whose field is absent or
	// null in the response payload.
	ErrUnexpectedNull = errors.New("unexpected null value")

	// ErrUnexpectedType is raised by an accessor whose field has the wrong
	// JSON type.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrUnknownKind is raised when decoding a thing of a kind we don't model.
	ErrUnknownKind = errors.New("unknown thing kind")

	// ErrKindMismatch is raised when a listing child is not of the requested type.
	ErrKindMismatch = errors.New("thing kind mismatch")

	// ErrNoAccessor is raised when a property was declared without an
	// accessor, so can never be invoked.
	ErrNoAccessor = errors.New("property has no accessor")
)

// Model is implemented by any type that declares a validated property set.
type Model interface {
	// Properties returns the model's properties in declaration order.
	Properties() []Property
}

// Keyed is implemented by models backed by a raw JSON object.
type Keyed interface {
	// Keys returns the raw JSON keys present in the payload.
	Keys() []string
}

// Kind discriminates between leaf values and nested models, this is fixed
// when the property is registered.
type Kind int

const (
	// KindValue is a leaf value e.g. a string or number.
	KindValue Kind = iota
	// KindModel is a nested model that is itself validated.
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindModel:
		return "model"
	}

	return "unknown"
}

// Result is what a property accessor yields.  At most one of the fields is set.
type Result struct {
	Value any
	Model Model
}

// IsNull tells whether the accessor returned nothing.
func (r Result) IsNull() bool {
	return r.Value == nil && r.Model == nil
}

// Property is a single named accessor on a model.
type Property struct {
	// Name is the property name, typically the JSON key.
	Name string
	// Nullable indicates a null result is acceptable.
	Nullable bool
	// Kind is whether this resolves to a leaf or a nested model.
	Kind Kind

	get func() (Result, error)
}

// Get invokes the accessor.
func (p Property) Get() (Result, error) {
	if p.get == nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNoAccessor, p.Name)
	}

	return p.get()
}

// AsNullable marks the property as allowed to be null.
func (p Property) AsNullable() Property {
	p.Nullable = true

	return p
}

// Value registers an accessor.  Nil pointers, maps, functions, channels and
// interfaces are the null value.  If T is itself a Model the property is
// nested, as with Nested.
func Value[T any](name string, fn func() (T, error)) Property {
	kind := KindValue

	if reflect.TypeFor[T]().Implements(reflect.TypeFor[Model]()) {
		kind = KindModel
	}

	return Property{
		Name: name,
		Kind: kind,
		get: func() (Result, error) {
			v, err := fn()
			if err != nil {
				return Result{}, err
			}

			if isNil(v) {
				return Result{}, nil
			}

			if kind == KindModel {
				//nolint:forcetypeassert
				return Result{Model: any(v).(Model)}, nil
			}

			return Result{Value: v}, nil
		},
	}
}

// Pointer registers a leaf accessor returning a pointer.
func Pointer[T any](name string, fn func() (*T, error)) Property {
	return Property{
		Name: name,
		Kind: KindValue,
		get: func() (Result, error) {
			v, err := fn()
			if err != nil {
				return Result{}, err
			}

			if v == nil {
				return Result{}, nil
			}

			return Result{Value: v}, nil
		},
	}
}

// Nested registers an accessor returning another model.
func Nested[M any, PM interface {
	*M
	Model
}](name string, fn func() (PM, error)) Property {
	return Property{
		Name: name,
		Kind: KindModel,
		get: func() (Result, error) {
			m, err := fn()
			if err != nil {
				return Result{}, err
			}

			if m == nil {
				return Result{}, nil
			}

			return Result{Model: m}, nil
		},
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	r := reflect.ValueOf(v)

	//nolint:exhaustive
	switch r.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return r.IsNil()
	}

	return false
}
