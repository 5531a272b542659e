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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/simpleactors/actor"
	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/log"
)

func TestTestKit(t *testing.T) {
	t.Run("ActorSystem", func(t *testing.T) {
		kit := New(context.Background(), t)
		system := kit.ActorSystem()
		require.NotNil(t, system)
		require.True(t, system.Running())
		assert.Equal(t, "testkit", system.Name())
	})
	t.Run("Spawn", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		ref := kit.Spawn(ctx, newPinger)
		require.NotNil(t, ref)
		found, ok := kit.ActorSystem().LocalRef(ref.ID())
		require.True(t, ok)
		assert.Equal(t, ref, found)
	})
	t.Run("With system options", func(t *testing.T) {
		kit := New(context.Background(), t,
			WithLogging(log.ErrorLevel),
			WithSystemOptions(actor.WithIdleTimeout(time.Second)))
		assert.Equal(t, log.ErrorLevel, kit.ActorSystem().Logger().LogLevel())
	})
	t.Run("Uncaught failures", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		ref := kit.Spawn(ctx, newPinger, actor.WithMailbox(brokenMailbox{actor.NewUnboundedMailbox()}))
		require.True(t, ref.Tell("anything", nil))

		failure := kit.ExpectUncaught(2 * time.Second)
		assert.Contains(t, failure.Worker, ref.String())
		var panicErr *gerrors.PanicError
		require.ErrorAs(t, failure.Err, &panicErr)
		assert.Len(t, kit.Uncaught(), 1)
	})
	t.Run("Shutdown", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)
		kit.Shutdown(ctx)
		assert.False(t, kit.ActorSystem().Running())
		// the cleanup shutdown is a no-op
	})
}

func TestProbe(t *testing.T) {
	t.Run("Assert message received", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		pinger := kit.Spawn(ctx, newPinger)
		probe := kit.NewProbe(ctx)

		probe.Send(pinger, &ping{seq: 1})
		probe.ExpectMessage(&pong{seq: 1})
		probe.ExpectNoMessageWithin(100 * time.Millisecond)
	})
	t.Run("Assert message received within", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		pinger := kit.Spawn(ctx, newPinger)
		probe := kit.NewProbe(ctx)

		probe.Send(pinger, &ping{seq: 2})
		probe.ExpectMessageWithin(time.Second, &pong{seq: 2})
	})
	t.Run("Assert any message received", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		pinger := kit.Spawn(ctx, newPinger)
		probe := kit.NewProbe(ctx)

		probe.Send(pinger, &ping{seq: 3})
		actual := probe.ExpectAnyMessage()
		assert.Equal(t, &pong{seq: 3}, actual)

		probe.Send(pinger, &ping{seq: 4})
		actual = probe.ExpectAnyMessageWithin(time.Second)
		assert.Equal(t, &pong{seq: 4}, actual)
	})
	t.Run("Assert sender", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		pinger := kit.Spawn(ctx, newPinger)
		probe := kit.NewProbe(ctx)

		probe.Send(pinger, &ping{seq: 5})
		probe.ExpectMessage(&pong{seq: 5})
		assert.Equal(t, pinger, probe.Sender())
	})
	t.Run("Assert message type", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)

		pinger := kit.Spawn(ctx, newPinger)
		probe := kit.NewProbe(ctx)

		probe.Send(pinger, &ping{seq: 6})
		actual := probe.ExpectMessageOfType(new(pong))
		assert.Equal(t, 6, actual.(*pong).seq)

		probe.Send(pinger, &ping{seq: 7})
		probe.ExpectMessageOfTypeWithin(time.Second, new(pong))
	})
	t.Run("Assert captured calls", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)
		probe := kit.NewProbe(ctx)

		require.True(t, probe.Ref().Tell(actor.NewCall("Notify", "ready"), nil))
		call := probe.ExpectMessageOfType(new(actor.Call)).(*actor.Call)
		assert.Equal(t, "Notify", call.Selector())
		assert.Equal(t, []any{"ready"}, call.Args())
		assert.Equal(t, actor.NoSender, probe.Sender())
	})
	t.Run("Assert capability-typed replies", func(t *testing.T) {
		ctx := context.Background()
		kit := New(ctx, t)
		probe := kit.NewProbe(ctx)

		echoer, err := actor.SpawnTyped[Echoer](ctx, kit.ActorSystem(),
			func() (actor.Actor, error) { return &echoActor{}, nil },
			func(p actor.Proxy) Echoer { return echoerRef{p} })
		require.NoError(t, err)

		echoer.Echo(probe.Ref(), "hello")
		probe.ExpectMessage("hello")
		assert.Equal(t, echoer.(echoerRef).Ref(), probe.Sender())
	})
}
