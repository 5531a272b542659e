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
	"sync"
	"testing"
	"time"

	"github.com/tochemey/simpleactors/actor"
	"github.com/tochemey/simpleactors/log"
)

// Uncaught is a dispatch loop failure observed by the test kit
type Uncaught struct {
	Worker string
	Err    error
}

// TestKit defines actor test kit
type TestKit struct {
	actorSystem   *actor.ActorSystem
	kt            *testing.T
	logger        log.Logger
	systemOptions []actor.Option

	mu       sync.Mutex
	uncaught []Uncaught
}

// New creates an instance of TestKit. The underlying actor system is shut
// down when the test ends.
func New(ctx context.Context, t *testing.T, opts ...Option) *TestKit {
	testkit := &TestKit{
		kt:     t,
		logger: log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(testkit)
	}

	systemOpts := append([]actor.Option{
		actor.WithLogger(testkit.logger),
		actor.WithUncaughtHandler(testkit.recordUncaught),
	}, testkit.systemOptions...)

	system, err := actor.NewActorSystem("testkit", systemOpts...)
	if err != nil {
		t.Fatal(err.Error())
	}

	testkit.actorSystem = system
	t.Cleanup(func() {
		_ = system.Shutdown(context.WithoutCancel(ctx))
	})
	return testkit
}

// ActorSystem returns the testkit actor system
func (k *TestKit) ActorSystem() *actor.ActorSystem {
	return k.actorSystem
}

// Spawn creates an actor
func (k *TestKit) Spawn(ctx context.Context, factory actor.Factory, opts ...actor.SpawnOption) actor.Ref {
	ref, err := k.actorSystem.Spawn(ctx, factory, opts...)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return ref
}

// NewProbe create a test probe
func (k *TestKit) NewProbe(ctx context.Context) Probe {
	testProbe, err := newProbe(ctx, k.actorSystem, k.kt)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return testProbe
}

// Uncaught returns the dispatch loop failures observed so far
func (k *TestKit) Uncaught() []Uncaught {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]Uncaught(nil), k.uncaught...)
}

// ExpectUncaught waits for the next dispatch loop failure
func (k *TestKit) ExpectUncaught(within time.Duration) Uncaught {
	k.kt.Helper()
	deadline := time.Now().Add(within)
	seen := len(k.Uncaught())
	for {
		if failures := k.Uncaught(); len(failures) > seen {
			return failures[seen]
		}
		if time.Now().After(deadline) {
			k.kt.Fatal(fmt.Sprintf("timeout (%v) while waiting for an uncaught failure", within))
			return Uncaught{}
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Shutdown stops the test kit
func (k *TestKit) Shutdown(ctx context.Context) {
	if err := k.actorSystem.Shutdown(ctx); err != nil {
		k.kt.Fatal(err.Error())
	}
}

func (k *TestKit) recordUncaught(worker string, err error) {
	k.mu.Lock()
	k.uncaught = append(k.uncaught, Uncaught{Worker: worker, Err: err})
	k.mu.Unlock()
}
