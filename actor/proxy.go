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
	"context"
	"fmt"
	"reflect"

	gerrors "github.com/tochemey/simpleactors/errors"
)

// Proxy is embedded by the stand-ins of capability-typed references.
//
// A stand-in implements the declared interface by turning every method
// into an Invoke call:
//
//	type Greeter interface {
//		Greet(name string)
//	}
//
//	type greeterRef struct{ actor.Proxy }
//
//	func (g greeterRef) Greet(name string) { g.Invoke("Greet", name) }
//
// The method is captured as a *Call and applied later on the actor's
// worker, so nothing runs on the caller's goroutine. String is answered
// directly from the reference.
type Proxy struct {
	ref Ref
}

// Invoke captures the call and enqueues it. It returns false when the call
// could not be queued.
func (p Proxy) Invoke(selector string, args ...any) bool {
	return p.InvokeFrom(NoSender, selector, args...)
}

// InvokeFrom is Invoke with an explicit sender
func (p Proxy) InvokeFrom(sender Ref, selector string, args ...any) bool {
	if p.ref == nil {
		return false
	}
	return p.ref.Tell(NewCall(selector, args...), sender)
}

// Ref returns the underlying generic reference
func (p Proxy) Ref() Ref {
	if p.ref == nil {
		return NoSender
	}
	return p.ref
}

// String returns <id@system>
func (p Proxy) String() string {
	return p.Ref().String()
}

// SpawnTyped creates an actor and returns a capability-typed reference to it.
//
// R must be an interface type that the constructed actor implements;
// otherwise the actor is not registered and errors.ErrCapabilityMismatch
// is returned. stub wraps the generic reference into the stand-in
// implementing R.
func SpawnTyped[R any](ctx context.Context, system *ActorSystem, factory Factory, stub func(Proxy) R, opts ...SpawnOption) (R, error) {
	var zero R

	capability := reflect.TypeFor[R]()
	if capability.Kind() != reflect.Interface {
		return zero, gerrors.NewErrCapabilityMismatch("<unknown>", capability.String())
	}

	if system == nil || stub == nil {
		return zero, gerrors.ErrInvalidInstance
	}

	check := func(instance Actor) error {
		if _, ok := instance.(R); !ok {
			return gerrors.NewErrCapabilityMismatch(fmt.Sprintf("%T", instance), capability.String())
		}
		return nil
	}

	var typed R
	shape := func(self Ref) any {
		typed = stub(Proxy{ref: self})
		return typed
	}

	if _, err := system.spawn(ctx, factory, check, shape, opts...); err != nil {
		return zero, err
	}
	return typed, nil
}
