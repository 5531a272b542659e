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

package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/simpleactors/actor"
	"github.com/tochemey/simpleactors/log"
)

type benchTell struct{}

// Counter is the capability exercised by the call benchmarks
type Counter interface {
	Increment()
}

type counterRef struct{ actor.Proxy }

func (c counterRef) Increment() { c.Invoke("Increment") }

// Benchmarker counts what it receives
type Benchmarker struct {
	actor.Base
	received *atomic.Int64
}

var _ Counter = (*Benchmarker)(nil)

func (p *Benchmarker) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *benchTell:
		p.received.Inc()
	default:
		ctx.Unhandled()
	}
}

// Increment is the captured-call counterpart of benchTell
func (p *Benchmarker) Increment() {
	p.received.Inc()
}

// Benchmark defines a load testing engine
type Benchmark struct {
	// workersCount define the number of message senders
	workersCount int
	// duration specifies how long the load testing will run
	duration time.Duration

	system  *actor.ActorSystem
	ref     actor.Ref
	counter Counter

	sent     *atomic.Int64
	received *atomic.Int64
}

// NewBenchmark creates an instance of Benchmark
func NewBenchmark(workersCount int, duration time.Duration) *Benchmark {
	return &Benchmark{
		workersCount: workersCount,
		duration:     duration,
		sent:         atomic.NewInt64(0),
		received:     atomic.NewInt64(0),
	}
}

// Start creates the benchmark actor system and its actors
func (b *Benchmark) Start(ctx context.Context) error {
	system, err := actor.NewActorSystem("benchmark-system",
		actor.WithLogger(log.DiscardLogger),
		actor.WithIdleTimeout(100*time.Millisecond))
	if err != nil {
		return err
	}

	b.system = system
	b.ref, err = system.Spawn(ctx, func() (actor.Actor, error) {
		return &Benchmarker{received: b.received}, nil
	})
	if err != nil {
		return err
	}

	b.counter, err = actor.SpawnTyped[Counter](ctx, system,
		func() (actor.Actor, error) { return &Benchmarker{received: b.received}, nil },
		func(p actor.Proxy) Counter { return counterRef{p} })
	return err
}

// Stop stops the benchmark
func (b *Benchmark) Stop(ctx context.Context) error {
	return b.system.Shutdown(ctx)
}

// BenchTell floods the plain actor with messages
func (b *Benchmark) BenchTell(ctx context.Context) error {
	return b.run(ctx, func() bool {
		return b.ref.Tell(new(benchTell), actor.NoSender)
	})
}

// BenchCall floods the capability-typed actor with captured calls
func (b *Benchmark) BenchCall(ctx context.Context) error {
	return b.run(ctx, func() bool {
		return b.counter.(counterRef).Invoke("Increment")
	})
}

// Sent returns the number of accepted sends
func (b *Benchmark) Sent() int64 {
	return b.sent.Load()
}

// Received returns the number of processed messages
func (b *Benchmark) Received() int64 {
	return b.received.Load()
}

func (b *Benchmark) run(ctx context.Context, send func() bool) error {
	eg, ctx := errgroup.WithContext(ctx)
	deadline := time.Now().Add(b.duration)
	for i := 0; i < b.workersCount; i++ {
		eg.Go(func() error {
			for time.Now().Before(deadline) {
				if err := ctx.Err(); err != nil {
					return err
				}
				if send() {
					b.sent.Inc()
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	// wait for the messages to be processed
	drained := time.Now().Add(time.Minute)
	for b.received.Load() < b.sent.Load() && time.Now().Before(drained) {
		time.Sleep(10 * time.Millisecond)
	}

	if b.sent.Load() != b.received.Load() {
		return fmt.Errorf("send count and receive count does not match: %d != %d", b.sent.Load(), b.received.Load())
	}
	return nil
}
