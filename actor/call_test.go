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

package actor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/simpleactors/errors"
)

type greeter struct {
	greeted []string
}

func (g *greeter) Greet(name string) {
	g.greeted = append(g.greeted, name)
}

func (g *greeter) Fail() error {
	return errors.New("cannot greet")
}

func (g *greeter) Succeed() error {
	return nil
}

func (g *greeter) Join(separator string, names ...string) {
	for _, name := range names {
		g.greeted = append(g.greeted, separator+name)
	}
}

func TestCall(t *testing.T) {
	t.Run("With nil arguments normalized", func(t *testing.T) {
		call := NewCall("Ping")
		require.NotNil(t, call.Args())
		assert.Empty(t, call.Args())
		assert.Zero(t, call.NumArgs())
		assert.Equal(t, "Ping()", call.String())

		var args []any
		call = NewCall("Ping", args...)
		require.NotNil(t, call.Args())
	})
	t.Run("With arguments", func(t *testing.T) {
		call := NewCall("Relay", "hello", 42)
		assert.Equal(t, "Relay", call.Selector())
		assert.Equal(t, []any{"hello", 42}, call.Args())
		assert.Equal(t, "hello", call.Arg(0))
		assert.Equal(t, 42, call.Arg(1))
		assert.Nil(t, call.Arg(2))
		assert.Nil(t, call.Arg(-1))
		assert.Equal(t, "Relay(hello,42)", call.String())
	})
	t.Run("With arguments not shared with the caller", func(t *testing.T) {
		call := NewCall("Relay", "hello")
		args := call.Args()
		args[0] = "changed"
		assert.Equal(t, "hello", call.Arg(0))
	})
	t.Run("Apply", func(t *testing.T) {
		target := new(greeter)
		require.NoError(t, NewCall("Greet", "ada").Apply(target))
		require.NoError(t, NewCall("Greet", "bob").Apply(target))
		require.NoError(t, NewCall("Greet", nil).Apply(target))
		assert.Equal(t, []string{"ada", "bob", ""}, target.greeted)
	})
	t.Run("Apply with variadic method", func(t *testing.T) {
		target := new(greeter)
		require.NoError(t, NewCall("Join", "+", "a", "b").Apply(target))
		require.NoError(t, NewCall("Join", "-").Apply(target))
		assert.Equal(t, []string{"+a", "+b"}, target.greeted)

		err := NewCall("Join").Apply(target)
		require.ErrorIs(t, err, gerrors.ErrInvalidCallArguments)

		err = NewCall("Join", "+", 1).Apply(target)
		require.ErrorIs(t, err, gerrors.ErrInvalidCallArguments)
	})
	t.Run("Apply returns the method error", func(t *testing.T) {
		target := new(greeter)
		require.EqualError(t, NewCall("Fail").Apply(target), "cannot greet")
		require.NoError(t, NewCall("Succeed").Apply(target))
	})
	t.Run("Apply with unknown method", func(t *testing.T) {
		err := NewCall("Wave").Apply(new(greeter))
		require.ErrorIs(t, err, gerrors.ErrMethodNotFound)
		assert.Contains(t, err.Error(), "*actor.greeter")

		err = NewCall("greet").Apply(new(greeter))
		require.ErrorIs(t, err, gerrors.ErrMethodNotFound)

		err = NewCall("Greet").Apply(nil)
		require.ErrorIs(t, err, gerrors.ErrMethodNotFound)
	})
	t.Run("Apply with mismatched arguments", func(t *testing.T) {
		err := NewCall("Greet").Apply(new(greeter))
		require.ErrorIs(t, err, gerrors.ErrInvalidCallArguments)

		err = NewCall("Greet", "a", "b").Apply(new(greeter))
		require.ErrorIs(t, err, gerrors.ErrInvalidCallArguments)

		err = NewCall("Greet", 42).Apply(new(greeter))
		require.ErrorIs(t, err, gerrors.ErrInvalidCallArguments)
		assert.Contains(t, err.Error(), "int is not assignable to string")
	})
	t.Run("Apply caches method lookups", func(t *testing.T) {
		target := new(greeter)
		require.NoError(t, NewCall("Greet", "x").Apply(target))
		spec, ok := methods.Get(methodKey{receiver: typeOf(target), name: "Greet"})
		require.True(t, ok)
		assert.Len(t, spec.params, 1)
		assert.False(t, spec.returnsError)

		require.NoError(t, NewCall("Succeed").Apply(target))
		spec, ok = methods.Get(methodKey{receiver: typeOf(target), name: "Succeed"})
		require.True(t, ok)
		assert.True(t, spec.returnsError)
	})
}

func TestEnvelope(t *testing.T) {
	system := newTestSystem(t)
	target, err := system.Spawn(t.Context(), factoryOf(newRecorder()))
	require.NoError(t, err)

	t.Run("With plain message", func(t *testing.T) {
		envelope := NewEnvelope(target, "hello", nil)
		assert.Equal(t, target, envelope.Target())
		assert.Equal(t, "hello", envelope.Message())
		assert.Equal(t, NoSender, envelope.Sender())
		assert.Nil(t, envelope.Call())
		assert.Equal(t, "hello -> <1000@test>", envelope.String())
	})
	t.Run("With captured call", func(t *testing.T) {
		call := NewCall("Relay", "hello", 1)
		envelope := NewEnvelope(target, call, target)
		assert.Same(t, call, envelope.Call())
		assert.Equal(t, target, envelope.Sender())
		assert.Equal(t, "Relay(hello,1) -> <1000@test>", envelope.String())
	})
	t.Run("With no target", func(t *testing.T) {
		assert.Equal(t, "hello -> <none>", NewEnvelope(nil, "hello", nil).String())
	})
}

func typeOf(v any) reflect.Type {
	return reflect.TypeOf(v)
}
