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
	"fmt"
)

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor system name is required but not provided.
	ErrNameRequired = errors.New("actor system name is required")

	// ErrInvalidPort is returned when the listening port is outside of the [0, 65535] range.
	ErrInvalidPort = errors.New("invalid port number")

	// ErrInvalidTimeout is returned when a timeout value is less than or equal to zero.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInvalidMailboxCapacity is returned when a bounded mailbox is configured with a non-positive capacity.
	ErrInvalidMailboxCapacity = errors.New("invalid mailbox capacity, must be greater than zero")

	// ErrActorSystemNotRunning indicates that the actor system has been shut down.
	ErrActorSystemNotRunning = errors.New("actor system is not running")

	// ErrInvalidBinding is returned when an actor is bound with a missing system or reference.
	ErrInvalidBinding = errors.New("actor binding requires both a system and a reference")

	// ErrAlreadyBound is returned when binding an actor that is already bound.
	ErrAlreadyBound = errors.New("actor cannot be bound more than once")

	// ErrCapabilityMismatch is returned when the spawned actor does not implement the
	// interface requested for its reference.
	ErrCapabilityMismatch = errors.New("actor does not implement the reference interface")

	// ErrInvalidInstance indicates that the actor factory did not produce an actor.
	ErrInvalidInstance = errors.New("failed to create instance. Reason: invalid instance")

	// ErrSpawnFailure is returned when the actor factory fails.
	ErrSpawnFailure = errors.New("spawn failed")

	// ErrDead indicates that a dispatcher is no longer alive.
	ErrDead = errors.New("dispatcher is not alive")

	// ErrUnhandled is returned when an actor receives a message it cannot handle.
	ErrUnhandled = errors.New("unhandled message")

	// ErrActorNotFound indicates that the specified actor could not be found in the system.
	ErrActorNotFound = errors.New("actor not found")

	// ErrMethodNotFound is returned when a captured call names a method the actor does not expose.
	ErrMethodNotFound = errors.New("method not found")

	// ErrInvalidCallArguments is returned when the captured arguments do not match the method signature.
	ErrInvalidCallArguments = errors.New("invalid call arguments")

	// ErrMailboxFull is returned when a bounded mailbox has reached its capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrMailboxDisposed is returned when operations are attempted on a disposed mailbox.
	ErrMailboxDisposed = errors.New("mailbox has been disposed")

	// ErrShutdownTimeout is returned when a worker did not stop within the shutdown grace period.
	ErrShutdownTimeout = errors.New("shutdown timed out")
)

// NewErrSpawnFailure wraps a factory error with ErrSpawnFailure.
func NewErrSpawnFailure(err error) error {
	return errors.Join(ErrSpawnFailure, err)
}

// NewErrCapabilityMismatch formats an ErrCapabilityMismatch for the given actor and interface types.
func NewErrCapabilityMismatch(actorType, refType string) error {
	return fmt.Errorf("actor=(%s) reference=(%s) %w", actorType, refType, ErrCapabilityMismatch)
}

// NewErrUnhandledMessage formats an ErrUnhandled for the given message.
func NewErrUnhandledMessage(message any) error {
	return fmt.Errorf("message=(%T) %w", message, ErrUnhandled)
}

// NewErrMethodNotFound formats an ErrMethodNotFound for the given selector and receiver type.
func NewErrMethodNotFound(selector, receiverType string) error {
	return fmt.Errorf("method=(%s) receiver=(%s) %w", selector, receiverType, ErrMethodNotFound)
}

// NewErrInvalidCallArguments wraps the reason the arguments were rejected.
func NewErrInvalidCallArguments(selector string, err error) error {
	return fmt.Errorf("method=(%s) %w: %w", selector, ErrInvalidCallArguments, err)
}

// NewErrShutdownTimeout formats an ErrShutdownTimeout for the given worker.
func NewErrShutdownTimeout(worker string) error {
	return fmt.Errorf("worker=(%s) %w", worker, ErrShutdownTimeout)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
