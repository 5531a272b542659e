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
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/log"
)

type dispatcherState int32

const (
	starting dispatcherState = iota
	idle
	processing
	terminated
)

func (s dispatcherState) String() string {
	switch s {
	case starting:
		return "starting"
	case idle:
		return "idle"
	case processing:
		return "processing"
	case terminated:
		return "terminated"
	default:
		return fmt.Sprintf("dispatcherState(%d)", int32(s))
	}
}

// dispatcher is the worker draining one actor's mailbox.
//
// Producers enqueue under a read lock on gate after checking closed. The
// worker sets closed under the write lock, and on idle timeout only when
// the mailbox is empty. A producer therefore either enqueues mail that
// this worker will process or sees errors.ErrDead and installs a
// replacement.
type dispatcher struct {
	name   string
	cell   *actorCell
	system *ActorSystem
	logger log.Logger

	idleTimeout time.Duration

	gate   sync.RWMutex
	closed *atomic.Bool
	state  *atomic.Int32

	signal   chan struct{}
	stopSig  chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func newDispatcher(system *ActorSystem, cell *actorCell, generation uint64) *dispatcher {
	name := fmt.Sprintf("%s#%d", cell.self, generation)
	return &dispatcher{
		name:        name,
		cell:        cell,
		system:      system,
		logger:      system.logger.With("worker", name),
		idleTimeout: system.idleTimeout,
		closed:      atomic.NewBool(false),
		state:       atomic.NewInt32(int32(starting)),
		signal:      make(chan struct{}, 1),
		stopSig:     make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// dispatch enqueues the envelope and wakes the worker up
func (d *dispatcher) dispatch(envelope *Envelope) error {
	d.gate.RLock()
	if d.closed.Load() {
		d.gate.RUnlock()
		return gerrors.ErrDead
	}
	err := d.cell.mailbox.Enqueue(envelope)
	d.gate.RUnlock()
	if err != nil {
		return err
	}

	select {
	case d.signal <- struct{}{}:
	default:
	}
	return nil
}

// alive returns true when the dispatcher still accepts mail
func (d *dispatcher) alive() bool {
	return !d.closed.Load()
}

func (d *dispatcher) getState() dispatcherState {
	return dispatcherState(d.state.Load())
}

// stop asks the worker to terminate. Pending mail is discarded.
func (d *dispatcher) stop() {
	d.stopOnce.Do(func() {
		d.gate.Lock()
		d.closed.Store(true)
		d.gate.Unlock()
		close(d.stopSig)
	})
}

func (d *dispatcher) stopped() bool {
	select {
	case <-d.stopSig:
		return true
	default:
		return false
	}
}

// run is the worker loop
func (d *dispatcher) run() {
	defer d.terminate()
	defer func() {
		if r := recover(); r != nil {
			var err error
			switch x := r.(type) {
			case error:
				err = fmt.Errorf("dispatch loop: %w", x)
			default:
				err = fmt.Errorf("dispatch loop: %v", x)
			}
			d.system.uncaught(d.name, gerrors.NewPanicError(err))
		}
	}()

	d.logger.Debug("dispatcher started")
	timer := time.NewTimer(d.idleTimeout)
	defer timer.Stop()

	d.state.Store(int32(idle))
	for {
		if d.stopped() {
			return
		}

		if envelope := d.cell.mailbox.Dequeue(); envelope != nil {
			d.state.Store(int32(processing))
			d.handle(envelope)
			d.state.Store(int32(idle))
			continue
		}

		timer.Reset(d.idleTimeout)
		select {
		case <-d.stopSig:
			return
		case <-d.signal:
		case <-timer.C:
			if d.closeIfIdle() {
				d.logger.Debugf("dispatcher idle for %s, terminating", d.idleTimeout)
				return
			}
		}
	}
}

// closeIfIdle closes the dispatcher when nothing is left to process
func (d *dispatcher) closeIfIdle() bool {
	d.gate.Lock()
	defer d.gate.Unlock()
	if !d.cell.mailbox.IsEmpty() {
		return false
	}
	d.closed.Store(true)
	return true
}

// terminate runs on the worker once the loop exits
func (d *dispatcher) terminate() {
	d.gate.Lock()
	d.closed.Store(true)
	d.gate.Unlock()

	d.state.Store(int32(terminated))
	d.cell.slot.CompareAndSwap(d, nil)
	d.system.workers.Remove(d)

	if d.stopped() {
		d.cell.mailbox.Dispose()
	}

	d.logger.Debug("dispatcher terminated")
	close(d.done)
}

// handle applies one envelope to the actor and routes any failure to its hook
func (d *dispatcher) handle(envelope *Envelope) {
	rctx := newReceiveContext(d.system.ctx, envelope, d.cell.self, d.system, d.cell.logger)
	d.receive(rctx)
	d.system.processed.Inc()
	if err := rctx.getError(); err != nil {
		d.notifyFailure(err)
	}
}

func (d *dispatcher) receive(rctx *ReceiveContext) {
	defer d.recovery(rctx)

	instance := d.cell.actor
	if call := rctx.Call(); call != nil {
		if receiver, ok := instance.(CallReceiver); ok {
			rctx.Err(receiver.ReceiveCall(rctx, call))
			return
		}
		rctx.Err(call.Apply(instance))
		return
	}

	instance.Receive(rctx)
}

// recovery turns a handler panic into a PanicError reported on the context
func (d *dispatcher) recovery(rctx *ReceiveContext) {
	r := recover()
	if r == nil {
		return
	}

	pc, fn, line, _ := runtime.Caller(2)
	var err error
	switch x := r.(type) {
	case error:
		err = fmt.Errorf("%w at %s[%s:%d]", x, runtime.FuncForPC(pc).Name(), fn, line)
	default:
		err = fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line)
	}

	// a panic takes precedence over an error reported before it
	rctx.err = gerrors.NewPanicError(err)
}

// notifyFailure hands err to the actor hook. A panicking hook is logged and swallowed.
func (d *dispatcher) notifyFailure(err error) {
	d.system.failures.Inc()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("failure hook panicked: %v (while handling: %v)", r, err)
		}
	}()
	d.cell.actor.OnFailure(err)
}

// await blocks until the worker exits or ctx is done
func (d *dispatcher) await(ctx context.Context) error {
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return gerrors.NewErrShutdownTimeout(d.name)
	}
}
