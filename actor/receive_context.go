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

	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/log"
)

// ReceiveContext is handed to the actor for every envelope it processes.
// It is only valid during that call.
type ReceiveContext struct {
	ctx      context.Context
	envelope *Envelope
	self     Ref
	system   *ActorSystem
	logger   log.Logger
	err      error
}

func newReceiveContext(ctx context.Context, envelope *Envelope, self Ref, system *ActorSystem, logger log.Logger) *ReceiveContext {
	return &ReceiveContext{
		ctx:      ctx,
		envelope: envelope,
		self:     self,
		system:   system,
		logger:   logger,
	}
}

// Message returns the message being processed. For a captured call it is the *Call.
func (rctx *ReceiveContext) Message() any {
	return rctx.envelope.Message()
}

// Call returns the captured call or nil for a plain message
func (rctx *ReceiveContext) Call() *Call {
	return rctx.envelope.Call()
}

// Sender returns the sender of the message. It is never nil.
func (rctx *ReceiveContext) Sender() Ref {
	return rctx.envelope.Sender()
}

// Self returns the receiving actor's reference
func (rctx *ReceiveContext) Self() Ref {
	return rctx.self
}

// ActorSystem returns the actor system
func (rctx *ReceiveContext) ActorSystem() *ActorSystem {
	return rctx.system
}

// Context returns the system context. It is cancelled when the system shuts down.
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Logger returns the actor logger
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.logger
}

// Tell sends message to the given actor with the receiving actor as sender
func (rctx *ReceiveContext) Tell(to Ref, message any) bool {
	if to == nil {
		return false
	}
	return to.Tell(message, rctx.self)
}

// Err reports a failure. It is handed to the actor's OnFailure once the
// current message is done. Only the first reported error is kept.
func (rctx *ReceiveContext) Err(err error) {
	if err != nil && rctx.err == nil {
		rctx.err = err
	}
}

// Unhandled reports the current message as unhandled
func (rctx *ReceiveContext) Unhandled() {
	rctx.Err(gerrors.NewErrUnhandledMessage(rctx.Message()))
}

func (rctx *ReceiveContext) getError() error {
	return rctx.err
}
