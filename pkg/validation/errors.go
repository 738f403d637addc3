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

package validation

import (
	"fmt"
)

// Kind classifies a validation failure.
type Kind int

const (
	// NullModel means the model itself was nil.
	NullModel Kind = iota
	// UnexpectedNull means a non-nullable property was null.
	UnexpectedNull
	// AccessorThrew means a property accessor returned an error other
	// than a null value.
	AccessorThrew
	// Unreachable means a property has no accessor so could not be invoked
	// at all.
	Unreachable
)

func (k Kind) String() string {
	switch k {
	case NullModel:
		return "NullModel"
	case UnexpectedNull:
		return "UnexpectedNull"
	case AccessorThrew:
		return "AccessorThrew"
	case Unreachable:
		return "Unreachable"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a validation failure.
type Error struct {
	// Kind is the type of failure.
	Kind Kind
	// ModelType is the type name of the offending model.
	ModelType string
	// Accessor is the property name.
	Accessor string
	// Cause is the error raised by the accessor, if any.
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NullModel:
		if e.ModelType != "" {
			return fmt.Sprintf("%s is null", e.ModelType)
		}

		return "model is null"
	case UnexpectedNull:
		return fmt.Sprintf("non-nullable property returned null: %s.%s()", e.ModelType, e.Accessor)
	case AccessorThrew:
		return fmt.Sprintf("%s.%s() failed: %v", e.ModelType, e.Accessor, e.Cause)
	case Unreachable:
		return fmt.Sprintf("%s.%s() could not be invoked: %v", e.ModelType, e.Accessor, e.Cause)
	}

	return fmt.Sprintf("%s.%s(): %s", e.ModelType, e.Accessor, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// panicError is a recovered accessor panic.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}

	return nil
}
