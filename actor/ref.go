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
	"fmt"
)

// Ref is an opaque handle used to send messages to an actor.
//
// References are copyable and safe to share across goroutines. They carry
// no actor state; a send is routed to the actor's current dispatcher,
// which is recreated transparently when the previous one has terminated.
type Ref interface {
	// ID returns the identity of the referenced actor
	ID() uint64
	// Tell enqueues message for the actor and returns immediately.
	// It returns false when the message could not be queued, for instance
	// when a bounded mailbox is full or the system is shutting down.
	// A nil sender is replaced by NoSender.
	Tell(message any, sender Ref) bool
	// String returns <id@system>
	String() string

	enqueue(envelope *Envelope) bool
}

// NoSender is the sink reference. Anything sent to it is discarded.
var NoSender Ref = noSender{}

type noSender struct{}

func (noSender) ID() uint64 { return 0 }
func (noSender) Tell(any, Ref) bool { return false }
func (noSender) String() string { return "<nobody>" }
func (noSender) enqueue(*Envelope) bool { return false }

// pid is the reference of a local actor
type pid struct {
	id     uint64
	system *ActorSystem
	cell   *actorCell
}

var _ Ref = (*pid)(nil)

func newPID(system *ActorSystem, cell *actorCell) *pid {
	return &pid{
		id:     cell.id,
		system: system,
		cell:   cell,
	}
}

func (p *pid) ID() uint64 {
	return p.id
}

func (p *pid) Tell(message any, sender Ref) bool {
	return p.enqueue(NewEnvelope(p, message, sender))
}

func (p *pid) String() string {
	return fmt.Sprintf("<%d@%s>", p.id, p.system.Name())
}

func (p *pid) enqueue(envelope *Envelope) bool {
	return p.system.dispatch(p.cell, envelope)
}
