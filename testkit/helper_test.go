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
	"testing"

	"go.uber.org/goleak"

	"github.com/tochemey/simpleactors/actor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ping struct{ seq int }

type pong struct{ seq int }

// pinger answers every ping with a pong to the sender
type pinger struct {
	actor.Base
}

func (p *pinger) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *ping:
		ctx.Tell(ctx.Sender(), &pong{seq: msg.seq})
	default:
		ctx.Unhandled()
	}
}

func newPinger() (actor.Actor, error) {
	return &pinger{}, nil
}

// Echoer is answered through captured calls
type Echoer interface {
	Echo(to actor.Ref, text string)
}

type echoerRef struct {
	actor.Proxy
}

func (e echoerRef) Echo(to actor.Ref, text string) {
	e.Invoke("Echo", to, text)
}

type echoActor struct {
	actor.Base
}

func (e *echoActor) Echo(to actor.Ref, text string) {
	to.Tell(text, e.Self())
}

// brokenMailbox fails inside the dispatch loop
type brokenMailbox struct {
	*actor.UnboundedMailbox
}

func (brokenMailbox) Dequeue() *actor.Envelope {
	panic("broken mailbox")
}
