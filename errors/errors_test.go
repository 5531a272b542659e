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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Run("SpawnFailure", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewErrSpawnFailure(cause)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSpawnFailure)
		assert.ErrorIs(t, err, cause)
	})
	t.Run("CapabilityMismatch", func(t *testing.T) {
		err := NewErrCapabilityMismatch("*main.counter", "main.Greeter")
		assert.ErrorIs(t, err, ErrCapabilityMismatch)
		assert.Contains(t, err.Error(), "main.Greeter")
	})
	t.Run("UnhandledMessage", func(t *testing.T) {
		err := NewErrUnhandledMessage(42)
		assert.ErrorIs(t, err, ErrUnhandled)
		assert.EqualError(t, err, "message=(int) unhandled message")
	})
	t.Run("MethodNotFound", func(t *testing.T) {
		err := NewErrMethodNotFound("Say", "*main.greeter")
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})
	t.Run("InvalidCallArguments", func(t *testing.T) {
		cause := errors.New("want 2 arguments, got 1")
		err := NewErrInvalidCallArguments("SayTo", cause)
		assert.ErrorIs(t, err, ErrInvalidCallArguments)
		assert.ErrorIs(t, err, cause)
	})
	t.Run("ShutdownTimeout", func(t *testing.T) {
		err := NewErrShutdownTimeout("dispatcher-1000@test")
		assert.ErrorIs(t, err, ErrShutdownTimeout)
	})
	t.Run("PanicError", func(t *testing.T) {
		cause := errors.New("test error")
		err := NewPanicError(cause)
		require.EqualError(t, err, "panic: test error")
		assert.ErrorIs(t, err, cause)

		var pe *PanicError
		assert.True(t, errors.As(error(err), &pe))
	})
}
