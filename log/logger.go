/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"io"
	golog "log"
)

// Logger is used by the actor system, its dispatchers and actors.
//
// Each leveled method comes in a Print-style and a Printf-style variant.
// Fatal exits the process with status 1 after writing and Panic panics
// with the message. Implementations must be safe for concurrent use since
// every dispatcher logs from its own goroutine.
type Logger interface {
	Debug(...any)
	Debugf(string, ...any)
	Info(...any)
	Infof(string, ...any)
	Warn(...any)
	Warnf(string, ...any)
	Error(...any)
	Errorf(string, ...any)
	Fatal(...any)
	Fatalf(string, ...any)
	Panic(...any)
	Panicf(string, ...any)

	// Enabled reports whether an entry at level would be written
	Enabled(level Level) bool
	// With returns a child Logger adding the key-value pairs to every entry,
	// e.g. With("actor", "<1000@sys>")
	With(keyValues ...any) Logger
	// LogLevel returns the minimum level written
	LogLevel() Level
	// LogOutput returns the writers entries go to
	LogOutput() []io.Writer
	// StdLogger returns a standard library logger writing through this one
	StdLogger() *golog.Logger
	// Flush writes buffered entries. The actor system calls it on shutdown.
	Flush() error
}
