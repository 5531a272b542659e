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
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/log"
)

// Actor represents the user-defined behavior of an actor.
//
// Every Actor implementation must embed Base, which holds the binding to
// the system and to the actor's own reference. An actor processes one
// message at a time, so its state needs no locking as long as it is only
// touched from Receive, ReceiveCall, called methods or OnFailure.
type Actor interface {
	// Receive handles a plain message. The embedded Base marks every
	// message as unhandled.
	Receive(ctx *ReceiveContext)
	// OnFailure is invoked on the actor's worker with any failure raised
	// while handling a message: a panic, an error reported with
	// ReceiveContext.Err or an error returned by a called method. The
	// worker keeps draining the mailbox afterwards.
	OnFailure(err error)

	base() *Base
}

// Base is embedded by every Actor. It is bound exactly once, by the
// actor system, right after the actor is constructed.
type Base struct {
	bound  atomic.Bool
	system *ActorSystem
	self   Ref
	typed  any
}

// ActorSystem returns the system the actor is bound to
func (b *Base) ActorSystem() *ActorSystem {
	return b.system
}

// Self returns the actor's own reference
func (b *Base) Self() Ref {
	return b.self
}

// Receive marks the message as unhandled
func (b *Base) Receive(ctx *ReceiveContext) {
	ctx.Unhandled()
}

// OnFailure logs the failure
func (b *Base) OnFailure(err error) {
	var logger log.Logger = log.DefaultLogger
	if b.system != nil {
		logger = b.system.Logger()
	}
	logger.Warnf("actor %v failed: %v", b.self, err)
}

func (b *Base) base() *Base {
	return b
}

func (b *Base) bind(system *ActorSystem, self Ref, typed any) error {
	if b == nil || system == nil || self == nil {
		return gerrors.ErrInvalidBinding
	}

	if !b.bound.CompareAndSwap(false, true) {
		return gerrors.ErrAlreadyBound
	}

	b.system = system
	b.self = self
	b.typed = typed
	return nil
}

// SelfAs returns the actor's own reference in the shape it was spawned
// with: the capability interface for actors created with SpawnTyped, Ref
// otherwise.
func SelfAs[R any](a Actor) (R, bool) {
	if a == nil || a.base() == nil {
		var zero R
		return zero, false
	}
	typed, ok := a.base().typed.(R)
	return typed, ok
}
