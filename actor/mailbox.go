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

// Mailbox defines the actor mailbox.
//
// A mailbox is a multi-producer single-consumer FIFO queue of envelopes.
// Any goroutine may Enqueue while exactly one dispatcher at a time calls
// Dequeue, IsEmpty or Dispose. Envelopes enqueued by a single producer must
// be dequeued in the order they were enqueued.
//
// Enqueue never blocks. A mailbox that cannot accept an envelope returns an
// error (errors.ErrMailboxFull, errors.ErrMailboxDisposed) and the send
// reports false to its producer.
type Mailbox interface {
	// Enqueue pushes an envelope into the mailbox.
	Enqueue(envelope *Envelope) error
	// Dequeue fetches the next envelope or returns nil when the mailbox is empty.
	Dequeue() *Envelope
	// IsEmpty returns true when the mailbox is empty
	IsEmpty() bool
	// Len returns the size of the mailbox
	Len() int64
	// Dispose discards the pending envelopes and rejects further ones
	Dispose()
}

// MailboxFactory creates the mailbox of a newly spawned actor
type MailboxFactory func() Mailbox
