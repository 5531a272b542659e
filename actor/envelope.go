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

import "fmt"

// Envelope is one pending delivery for an actor.
//
// The message is either a plain value or a *Call captured from a
// capability-typed reference. Envelopes are immutable once created.
type Envelope struct {
	target  Ref
	message any
	sender  Ref
}

// NewEnvelope creates an envelope. A nil sender is replaced by NoSender.
//
// Envelopes built outside a reference, for instance from a decoded
// selector and its arguments, are handed to ActorSystem.Deliver.
func NewEnvelope(target Ref, message any, sender Ref) *Envelope {
	if sender == nil {
		sender = NoSender
	}
	return &Envelope{
		target:  target,
		message: message,
		sender:  sender,
	}
}

// Target returns the actor the envelope is addressed to
func (e *Envelope) Target() Ref {
	return e.target
}

// Message returns the payload
func (e *Envelope) Message() any {
	return e.message
}

// Sender returns the sender reference. It is never nil.
func (e *Envelope) Sender() Ref {
	return e.sender
}

// Call returns the captured method call or nil when the envelope
// carries a plain message
func (e *Envelope) Call() *Call {
	call, _ := e.message.(*Call)
	return call
}

// String returns a human-readable trace of the delivery
func (e *Envelope) String() string {
	target := "<none>"
	if e.target != nil {
		target = e.target.String()
	}
	if call := e.Call(); call != nil {
		return fmt.Sprintf("%s -> %s", call, target)
	}
	return fmt.Sprintf("%v -> %s", e.message, target)
}
