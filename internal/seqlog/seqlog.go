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

// Package seqlog provides the optional trace-level logging hook threaded
// through the engine (package seq). The engine never logs on the
// error values it returns; this is purely for diagnosing structural
// behavior (a shortcut chunk promoted into the spine, or a spine leaf
// absorbed back into a shortcut) during development, and is a no-op by
// default.
package seqlog

import "go.uber.org/zap"

// Logger is a thin, nil-safe wrapper around *zap.Logger. The zero value
// logs nothing, so code can always call through a Logger field without a
// nil check.
type Logger struct {
	z *zap.Logger
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return Logger{z: zap.NewNop()} }

// New wraps an existing *zap.Logger. A nil z behaves like Nop().
func New(z *zap.Logger) Logger {
	if z == nil {
		return Nop()
	}
	return Logger{z: z}
}

// Trace logs a structural event at debug level with the given fields.
func (l Logger) Trace(event string, fields ...zap.Field) {
	if l.z == nil {
		return
	}
	l.z.Debug(event, fields...)
}

// Invariant logs an invariant-violation diagnosis just before the caller
// panics, so the trace survives even though the process is about to die
// for the fatal case.
func (l Logger) Invariant(msg string, fields ...zap.Field) {
	if l.z == nil {
		return
	}
	l.z.Error(msg, fields...)
}
