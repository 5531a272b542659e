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

	gods "github.com/Workiva/go-datastructures/queue"

	gerrors "github.com/tochemey/simpleactors/errors"
)

// BoundedMailbox is a bounded, non-blocking MPSC mailbox backed by a ring
// buffer.
//
// Enqueue never waits for room: when the buffer is full it returns
// errors.ErrMailboxFull so that the sender observes false and decides
// whether to retry or drop. Envelopes are dequeued in FIFO order.
type BoundedMailbox struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox = (*BoundedMailbox)(nil)

// NewBoundedMailbox creates a bounded mailbox with the given capacity.
// The ring buffer rounds the capacity up to the next power of two and
// holds at least minBoundedCapacity envelopes.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	// a single slot ring cannot tell a full slot from a free one
	capacity = max(capacity, minBoundedCapacity)
	return &BoundedMailbox{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue places the given envelope in the mailbox when there is room
func (mailbox *BoundedMailbox) Enqueue(envelope *Envelope) error {
	ok, err := mailbox.underlying.Offer(envelope)
	if err != nil {
		if errors.Is(err, gods.ErrDisposed) {
			return gerrors.ErrMailboxDisposed
		}
		return err
	}
	if !ok {
		return gerrors.ErrMailboxFull
	}
	return nil
}

// Dequeue takes the oldest envelope from the mailbox
func (mailbox *BoundedMailbox) Dequeue() *Envelope {
	if mailbox.underlying.Len() > 0 {
		item, _ := mailbox.underlying.Get()
		if envelope, ok := item.(*Envelope); ok {
			return envelope
		}
	}
	return nil
}

// IsEmpty reports whether the mailbox currently has no envelope.
func (mailbox *BoundedMailbox) IsEmpty() bool {
	return mailbox.underlying.Len() == 0
}

// Len returns the current number of envelopes in the mailbox.
func (mailbox *BoundedMailbox) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Cap returns the capacity of the underlying ring buffer
func (mailbox *BoundedMailbox) Cap() int64 {
	return int64(mailbox.underlying.Cap())
}

// Dispose releases the underlying ring buffer. Do not use the mailbox after
// calling Dispose.
func (mailbox *BoundedMailbox) Dispose() {
	mailbox.underlying.Dispose()
}
