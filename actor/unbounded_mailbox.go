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
	"github.com/tochemey/simpleactors/internal/queue"
)

// UnboundedMailbox is the default mailbox. It is a lock-free MPSC queue
// that never rejects an envelope until disposed.
//
// If producers outpace the actor, memory usage grows without limit.
// Use a BoundedMailbox to signal back-pressure instead.
type UnboundedMailbox struct {
	underlying *queue.Mpsc[*Envelope]
	disposed   *atomic.Bool
}

// enforce compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox creates an instance of UnboundedMailbox
func NewUnboundedMailbox() *UnboundedMailbox {
	return &UnboundedMailbox{
		underlying: queue.NewMpsc[*Envelope](),
		disposed:   atomic.NewBool(false),
	}
}

// Enqueue places the given envelope in the mailbox
func (m *UnboundedMailbox) Enqueue(envelope *Envelope) error {
	if m.disposed.Load() {
		return gerrors.ErrMailboxDisposed
	}
	m.underlying.Push(envelope)
	return nil
}

// Dequeue takes the oldest envelope from the mailbox
func (m *UnboundedMailbox) Dequeue() *Envelope {
	if envelope, ok := m.underlying.Pop(); ok {
		return envelope
	}
	return nil
}

// IsEmpty returns true when the mailbox is empty
func (m *UnboundedMailbox) IsEmpty() bool {
	return m.underlying.IsEmpty()
}

// Len returns mailbox length
func (m *UnboundedMailbox) Len() int64 {
	return m.underlying.Len()
}

// Dispose discards the pending envelopes. Further Enqueue calls fail.
func (m *UnboundedMailbox) Dispose() {
	m.disposed.Store(true)
	m.underlying.Drain()
}
