// Copyright 2025 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package d holds the assertion and error-wrapping helpers every other
// package in this module panics through. Errors that cross the public API
// (seqerr.Empty, seqerr.OutOfRange, ...) are ordinary return values; a call
// into this package always means a detected bug, not caller error.
package d

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Debug gates the invariant assertions in the chunk and engine
// checkInvariants helpers (spine assertions run unconditionally). Off by
// default so release builds don't pay for them; the seq package's tests
// turn it on in TestMain.
var Debug = false

type wrappedError struct {
	msg   string
	cause error
}

func (w wrappedError) Error() string { return w.msg }

// Cause follows the github.com/pkg/errors convention so callers can recover
// the original error with errors.Cause or a type switch.
func (w wrappedError) Cause() error { return w.cause }

// Wrap attaches a message (built with pkg/errors) to err without
// discarding err itself: the wrapped value's Cause method returns err, so
// pkg/errors' errors.Cause and this package's Unwrap both recover it. It
// has no Unwrap method, so the standard library's errors.Unwrap does not.
// Wrapping an already-wrapped error is a no-op. Wrap(nil) is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if we, ok := err.(wrappedError); ok {
		return we
	}
	return wrappedError{msg: errors.Wrap(err, "chunkedseq").Error(), cause: err}
}

// Unwrap returns the error below err in the wrap chain, or err itself if it
// was never wrapped by this package.
func Unwrap(err error) error {
	if we, ok := err.(wrappedError); ok {
		return we.cause
	}
	return err
}

func causeInTypes(err error, types ...error) bool {
	for _, t := range types {
		if reflect.TypeOf(err) == reflect.TypeOf(t) {
			return true
		}
	}
	return false
}

// PanicIfTrue panics with args if cond holds.
func PanicIfTrue(cond bool, args ...interface{}) {
	if cond {
		panic(fmt.Sprint(args...))
	}
}

// PanicIfFalse panics with args unless cond holds. Used at every point a
// structural invariant is checked in debug builds.
func PanicIfFalse(cond bool, args ...interface{}) {
	if !cond {
		panic(fmt.Sprint(args...))
	}
}

// PanicIfError panics with err if it is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfNotType panics unless err's dynamic type matches one of types; on
// success it returns err so call sites can chain it.
func PanicIfNotType(err error, types ...error) error {
	if !causeInTypes(err, types...) {
		panic(fmt.Sprintf("chunkedseq: unexpected error type %T", err))
	}
	return err
}

// Chk panics with msg (built from args, fmt.Sprint-style) unless cond
// holds. Equivalent to PanicIfFalse; kept as a short alias since it reads
// better at dense invariant-checking call sites.
func Chk(cond bool, args ...interface{}) {
	PanicIfFalse(cond, args...)
}

// Errorf builds a pkg/errors error carrying a stack trace, for the rare
// internal error that needs one (as opposed to the plain seqerr
// sentinels, which callers compare with errors.Is and don't need a trace).
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
