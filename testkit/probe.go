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

package testkit

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tochemey/simpleactors/actor"
)

const (
	MessagesQueueMax int           = 1000
	DefaultTimeout   time.Duration = 3 * time.Second
)

// Probe defines the probe interface that helps perform some assertions
// when implementing unit tests with actors
type Probe interface {
	// ExpectMessage asserts that the message received from the test actor is the expected one
	ExpectMessage(message any)
	// ExpectMessageWithin asserts that the message received from the test actor is the expected one within a time duration
	ExpectMessageWithin(duration time.Duration, message any)
	// ExpectNoMessage asserts that no message is received within the default timeout
	ExpectNoMessage()
	// ExpectNoMessageWithin asserts that no message is received within a time duration
	ExpectNoMessageWithin(duration time.Duration)
	// ExpectAnyMessage asserts that any message is expected
	ExpectAnyMessage() any
	// ExpectAnyMessageWithin asserts that any message within a time duration
	ExpectAnyMessageWithin(duration time.Duration) any
	// ExpectMessageOfType asserts that the next message has the same type as sample
	ExpectMessageOfType(sample any) any
	// ExpectMessageOfTypeWithin asserts that the next message has the same type as sample within a time duration
	ExpectMessageOfTypeWithin(duration time.Duration, sample any) any
	// Send sends a message to the actor to be tested with the probe as sender.
	Send(to actor.Ref, message any)
	// Sender returns the sender of last received message.
	Sender() actor.Ref
	// Ref returns the reference of the probe actor
	Ref() actor.Ref
}

type message struct {
	sender  actor.Ref
	payload any
}

// probeActor pushes every message it receives, captured calls included,
// to the probe queue
type probeActor struct {
	actor.Base
	messageQueue chan message
}

// ensure that probeActor implements the Actor interface
var (
	_ actor.Actor        = (*probeActor)(nil)
	_ actor.CallReceiver = (*probeActor)(nil)
)

// Receive handle message received
func (x *probeActor) Receive(ctx *actor.ReceiveContext) {
	x.messageQueue <- message{
		sender:  ctx.Sender(),
		payload: ctx.Message(),
	}
}

// ReceiveCall records the call itself
func (x *probeActor) ReceiveCall(ctx *actor.ReceiveContext, call *actor.Call) error {
	x.messageQueue <- message{
		sender:  ctx.Sender(),
		payload: call,
	}
	return nil
}

// probe defines the test probe implementation
type probe struct {
	pt *testing.T

	ref            actor.Ref
	lastMessage    any
	lastSender     actor.Ref
	messageQueue   chan message
	defaultTimeout time.Duration
}

// ensure that probe implements Probe
var _ Probe = (*probe)(nil)

// newProbe creates an instance of probe
func newProbe(ctx context.Context, actorSystem *actor.ActorSystem, t *testing.T) (*probe, error) {
	msgQueue := make(chan message, MessagesQueueMax)
	ref, err := actorSystem.Spawn(ctx, func() (actor.Actor, error) {
		return &probeActor{messageQueue: msgQueue}, nil
	})
	if err != nil {
		return nil, err
	}

	return &probe{
		pt:             t,
		ref:            ref,
		messageQueue:   msgQueue,
		defaultTimeout: DefaultTimeout,
	}, nil
}

// ExpectMessageOfType asserts the expectation of a given message type
func (x *probe) ExpectMessageOfType(sample any) any {
	return x.expectMessageOfType(x.defaultTimeout, sample)
}

// ExpectMessageOfTypeWithin asserts the expectation of a given message type within a time duration
func (x *probe) ExpectMessageOfTypeWithin(duration time.Duration, sample any) any {
	return x.expectMessageOfType(duration, sample)
}

// ExpectMessage assert message expectation
func (x *probe) ExpectMessage(message any) {
	x.expectMessage(x.defaultTimeout, message)
}

// ExpectMessageWithin expects message within a time duration
func (x *probe) ExpectMessageWithin(duration time.Duration, message any) {
	x.expectMessage(duration, message)
}

// ExpectNoMessage expects no message
func (x *probe) ExpectNoMessage() {
	x.expectNoMessage(x.defaultTimeout)
}

// ExpectNoMessageWithin expects no message within a time duration
func (x *probe) ExpectNoMessageWithin(duration time.Duration) {
	x.expectNoMessage(duration)
}

// ExpectAnyMessage expects any message
func (x *probe) ExpectAnyMessage() any {
	return x.expectAnyMessage(x.defaultTimeout)
}

// ExpectAnyMessageWithin expects any message within a time duration
func (x *probe) ExpectAnyMessageWithin(duration time.Duration) any {
	return x.expectAnyMessage(duration)
}

// Send sends a message to the actor to be tested with the probe as sender.
func (x *probe) Send(to actor.Ref, message any) {
	require.NotNil(x.pt, to, "cannot send to a nil reference")
	require.True(x.pt, to.Tell(message, x.ref), fmt.Sprintf("message %v was not accepted by %s", message, to))
}

// Sender returns the last sender
func (x *probe) Sender() actor.Ref {
	return x.lastSender
}

// Ref returns the reference of the probe actor
func (x *probe) Ref() actor.Ref {
	return x.ref
}

// receiveOne receives one message within a maximum time duration
func (x *probe) receiveOne(max time.Duration) (any, bool) {
	timer := time.NewTimer(max)
	defer timer.Stop()

	select {
	case m, ok := <-x.messageQueue:
		if !ok {
			return nil, false
		}
		x.lastMessage = m.payload
		x.lastSender = m.sender
		return m.payload, true
	case <-timer.C:
		return nil, false
	}
}

// expectMessage assert the expectation of a message within a maximum time duration
func (x *probe) expectMessage(max time.Duration, message any) {
	received, ok := x.receiveOne(max)
	require.True(x.pt, ok, fmt.Sprintf("timeout (%v) during expectMessage while waiting for %v", max, message))
	require.Equal(x.pt, message, received, fmt.Sprintf("expected %v, found %v", message, received))
}

// expectNoMessage asserts that no message is expected
func (x *probe) expectNoMessage(max time.Duration) {
	received, ok := x.receiveOne(max)
	require.False(x.pt, ok, fmt.Sprintf("received unexpected message %v", received))
}

// expectAnyMessage asserts that any message is expected
func (x *probe) expectAnyMessage(max time.Duration) any {
	received, ok := x.receiveOne(max)
	require.True(x.pt, ok, fmt.Sprintf("timeout (%v) during expectAnyMessage while waiting", max))
	return received
}

// expectMessageOfType asserts that a message of a given type is expected within a maximum time duration
func (x *probe) expectMessageOfType(max time.Duration, sample any) any {
	received, ok := x.receiveOne(max)
	require.True(x.pt, ok, fmt.Sprintf("timeout (%v) during expectMessageOfType while waiting", max))

	expected := reflect.TypeOf(sample)
	actual := reflect.TypeOf(received)
	require.Equal(x.pt, expected, actual, fmt.Sprintf("expected %v, found %v", expected, actual))
	return received
}
