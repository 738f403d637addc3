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

// Package validation checks API response models against their declared
// property nullability.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/reddit/pkg/models"
)

// Model validates every property of the model, and recursively any nested
// models, in declaration order.  The first violation is returned.
//
// There is no cycle detection, the model graph must be acyclic.
func Model(m models.Model) error {
	if isNil(m) {
		return &Error{
			Kind: NullModel,
		}
	}

	modelType := typeName(m)

	for _, property := range m.Properties() {
		result, err := get(property)
		if err != nil {
			// Anything raised by a panic is the accessor's fault, even if it
			// looks like a null value.
			if panicked := (*panicError)(nil); errors.As(err, &panicked) {
				return &Error{
					Kind:      AccessorThrew,
					ModelType: modelType,
					Accessor:  property.Name,
					Cause:     err,
				}
			}

			if errors.Is(err, models.ErrNoAccessor) {
				return &Error{
					Kind:      Unreachable,
					ModelType: modelType,
					Accessor:  property.Name,
					Cause:     err,
				}
			}

			if errors.Is(err, models.ErrUnexpectedNull) {
				if property.Nullable {
					continue
				}

				return &Error{
					Kind:      UnexpectedNull,
					ModelType: modelType,
					Accessor:  property.Name,
					Cause:     err,
				}
			}

			return &Error{
				Kind:      AccessorThrew,
				ModelType: modelType,
				Accessor:  property.Name,
				Cause:     err,
			}
		}

		if result.IsNull() {
			if property.Nullable {
				continue
			}

			return &Error{
				Kind:      UnexpectedNull,
				ModelType: modelType,
				Accessor:  property.Name,
			}
		}

		if result.Model != nil {
			if err := Model(result.Model); err != nil {
				return err
			}
		}
	}

	return nil
}

// Models validates each model in turn, stopping at the first failure.
func Models[T models.Model](ms []T) error {
	for i := range ms {
		if err := Model(ms[i]); err != nil {
			return fmt.Errorf("model %d: %w", i, err)
		}
	}

	return nil
}

// RenderString checks a render string pair is present and complete.  Unlike
// Model this only looks at the pair itself.
func RenderString(pair *models.RenderStringPair) error {
	modelType := typeName(pair)

	if pair == nil {
		return &Error{
			Kind:      NullModel,
			ModelType: modelType,
		}
	}

	if _, err := pair.Markdown(); err != nil {
		return &Error{
			Kind:      UnexpectedNull,
			ModelType: modelType,
			Accessor:  "md",
			Cause:     err,
		}
	}

	if _, err := pair.HTML(); err != nil {
		return &Error{
			Kind:      UnexpectedNull,
			ModelType: modelType,
			Accessor:  "html",
			Cause:     err,
		}
	}

	return nil
}

// Uncovered returns any JSON keys in the model's payload that aren't
// declared as properties, this highlights new fields added upstream.
func Uncovered(m models.Model) []string {
	keyed, ok := m.(models.Keyed)
	if !ok || isNil(m) {
		return nil
	}

	names := make([]string, 0, len(m.Properties()))

	for _, property := range m.Properties() {
		names = append(names, property.Name)
	}

	keys := set.New[string](keyed.Keys()...)
	declared := set.New[string](names...)

	uncovered := keys.Difference(declared)

	return slices.Sorted(uncovered.All())
}

// get invokes the accessor, a panic is treated like a returned error.
func get(property models.Property) (result models.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()

	return property.Get()
}

func typeName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}

func isNil(m any) bool {
	if m == nil {
		return true
	}

	v := reflect.ValueOf(m)

	//nolint:exhaustive
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}

	return false
}
