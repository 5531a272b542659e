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
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/flowchartsman/retry"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/internal/metric"
	"github.com/tochemey/simpleactors/internal/validation"
	"github.com/tochemey/simpleactors/log"
)

// Factory constructs a new actor instance
type Factory func() (Actor, error)

// ActorSystem owns a set of actors: it creates them, keeps track of the
// dispatcher currently serving each of them and stops everything on
// Shutdown.
type ActorSystem struct {
	name            string
	port            int
	logger          log.Logger
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	spawnRetries    int
	mailboxFactory  MailboxFactory
	uncaughtHandler UncaughtHandler

	metricEnabled      bool
	meterProvider      otelmetric.MeterProvider
	metricRegistration otelmetric.Registration

	registry *registry
	workers  mapset.Set[*dispatcher]
	ids      *atomic.Uint64

	// lifecycle orders dispatcher creation against shutdown
	lifecycle sync.RWMutex
	running   *atomic.Bool
	startedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc

	processed          *atomic.Int64
	failures           *atomic.Int64
	dispatchersCreated *atomic.Int64
}

// NewActorSystem creates and starts an actor system.
// The name must consist of word characters with non-leading '-' or '_'.
func NewActorSystem(name string, opts ...Option) (*ActorSystem, error) {
	system := &ActorSystem{
		name:               name,
		port:               DefaultPort,
		logger:             log.DefaultLogger,
		idleTimeout:        DefaultIdleTimeout,
		shutdownTimeout:    DefaultShutdownTimeout,
		spawnRetries:       DefaultSpawnRetries,
		registry:           newRegistry(),
		workers:            mapset.NewSet[*dispatcher](),
		ids:                atomic.NewUint64(firstActorID - 1),
		running:            atomic.NewBool(false),
		processed:          atomic.NewInt64(0),
		failures:           atomic.NewInt64(0),
		dispatchersCreated: atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(system)
	}

	if err := system.validate(); err != nil {
		return nil, err
	}

	if system.logger == nil {
		system.logger = log.DiscardLogger
	}

	if system.mailboxFactory == nil {
		system.mailboxFactory = func() Mailbox { return NewUnboundedMailbox() }
	}

	if system.uncaughtHandler == nil {
		system.uncaughtHandler = func(worker string, err error) {
			system.logger.Errorf("uncaught failure in %s: %v", worker, err)
		}
	}

	if system.metricEnabled {
		if err := system.registerMetrics(); err != nil {
			return nil, err
		}
	}

	system.ctx, system.cancel = context.WithCancel(context.Background())
	system.startedAt = time.Now()
	system.running.Store(true)
	system.logger.Infof("actor system %s started", system.name)
	return system, nil
}

// Name returns the actor system name
func (x *ActorSystem) Name() string {
	return x.name
}

// Port returns the listening port reserved for a future transport
func (x *ActorSystem) Port() int {
	return x.port
}

// Logger returns the actor system logger
func (x *ActorSystem) Logger() log.Logger {
	return x.logger
}

// Running returns true until Shutdown is called
func (x *ActorSystem) Running() bool {
	return x.running.Load()
}

// ActorsCount returns the number of actors spawned in the system
func (x *ActorSystem) ActorsCount() int {
	return x.registry.len()
}

// WorkersCount returns the number of live dispatchers
func (x *ActorSystem) WorkersCount() int {
	return x.workers.Cardinality()
}

// LocalRef returns the reference of the actor with the given identity
func (x *ActorSystem) LocalRef(id uint64) (Ref, bool) {
	cell, ok := x.registry.load(id)
	if !ok {
		return nil, false
	}
	return cell.self, true
}

// Spawn creates an actor and returns its reference.
// The actor is bound before any message can reach it.
func (x *ActorSystem) Spawn(ctx context.Context, factory Factory, opts ...SpawnOption) (Ref, error) {
	self, err := x.spawn(ctx, factory, nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	return self, nil
}

// Deliver enqueues an envelope built outside a reference.
// It returns false when the target is not an actor of this system
// or the envelope could not be queued.
func (x *ActorSystem) Deliver(envelope *Envelope) bool {
	if envelope == nil {
		return false
	}

	target, ok := envelope.Target().(*pid)
	if !ok || target.system != x {
		return false
	}
	return x.dispatch(target.cell, envelope)
}

// Shutdown stops every dispatcher and discards the mail still queued.
// It waits at most the shutdown timeout for workers to exit. Calling it
// again is a no-op.
func (x *ActorSystem) Shutdown(ctx context.Context) error {
	x.lifecycle.Lock()
	if !x.running.Load() {
		x.lifecycle.Unlock()
		return nil
	}
	x.running.Store(false)
	workers := x.workers.ToSlice()
	x.lifecycle.Unlock()

	x.logger.Infof("actor system %s is shutting down with %d workers", x.name, len(workers))

	for _, worker := range workers {
		worker.stop()
	}

	ctx, cancel := context.WithTimeout(ctx, x.shutdownTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		err error
	)

	eg := new(errgroup.Group)
	for _, worker := range workers {
		eg.Go(func() error {
			if werr := worker.await(ctx); werr != nil {
				mu.Lock()
				err = multierr.Append(err, werr)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()

	// no dispatcher can be created anymore, drop the mail left behind by
	// workers that died without draining
	x.registry.rangeCells(func(cell *actorCell) bool {
		if cell.slot.Load() == nil {
			cell.mailbox.Dispose()
		}
		return true
	})

	if x.metricRegistration != nil {
		err = multierr.Append(err, x.metricRegistration.Unregister())
	}

	x.cancel()

	if err != nil {
		x.logger.Errorf("actor system %s shutdown: %v", x.name, err)
	} else {
		x.logger.Infof("actor system %s stopped", x.name)
	}

	return multierr.Combine(err, x.logger.Flush())
}

// spawn constructs, binds and registers an actor. check vets the instance
// before anything is registered and shape builds the value returned by
// SelfAs. Both may be nil.
func (x *ActorSystem) spawn(ctx context.Context, factory Factory, check func(Actor) error, shape func(Ref) any, opts ...SpawnOption) (*pid, error) {
	if !x.Running() {
		return nil, gerrors.ErrActorSystemNotRunning
	}

	if factory == nil {
		return nil, gerrors.ErrInvalidInstance
	}

	var instance Actor
	retrier := retry.NewRetrier(x.spawnRetries, spawnRetryInitialDelay, spawnRetryMaxDelay)
	if err := retrier.RunContext(ctx, func(_ context.Context) error {
		created, err := factory()
		if err != nil {
			return err
		}
		instance = created
		return nil
	}); err != nil {
		return nil, gerrors.NewErrSpawnFailure(err)
	}

	if isNil(instance) {
		return nil, gerrors.ErrInvalidInstance
	}

	// an embedded *Base left nil cannot be bound
	if instance.base() == nil {
		return nil, gerrors.ErrInvalidBinding
	}

	if check != nil {
		if err := check(instance); err != nil {
			return nil, err
		}
	}

	config := newSpawnConfig(opts...)
	mailbox := config.mailbox
	if mailbox == nil {
		mailbox = x.mailboxFactory()
	}

	x.lifecycle.RLock()
	defer x.lifecycle.RUnlock()
	if !x.running.Load() {
		return nil, gerrors.ErrActorSystemNotRunning
	}

	cell := &actorCell{
		id:      x.ids.Inc(),
		actor:   instance,
		mailbox: mailbox,
	}
	cell.self = newPID(x, cell)
	cell.logger = x.logger.With("actor", cell.self.String())

	var typed any = cell.self
	if shape != nil {
		typed = shape(cell.self)
	}

	if err := instance.base().bind(x, cell.self, typed); err != nil {
		return nil, err
	}

	x.registry.store(cell)
	x.logger.Debugf("actor %s (%T) spawned", cell.self, instance)
	return cell.self, nil
}

// dispatch delivers the envelope to the cell's current dispatcher,
// replacing it when it closed concurrently
func (x *ActorSystem) dispatch(cell *actorCell, envelope *Envelope) bool {
	for {
		current, err := x.getDispatcher(cell)
		if err != nil {
			return false
		}

		err = current.dispatch(envelope)
		switch {
		case err == nil:
			return true
		case errors.Is(err, gerrors.ErrDead):
			continue
		default:
			cell.logger.Debugf("envelope %s rejected: %v", envelope, err)
			return false
		}
	}
}

// getDispatcher returns the live dispatcher of the cell, creating one when
// there is none. Concurrent callers agree on a single dispatcher: a
// candidate that loses the compare-and-set is never started.
func (x *ActorSystem) getDispatcher(cell *actorCell) (*dispatcher, error) {
	x.lifecycle.RLock()
	defer x.lifecycle.RUnlock()
	if !x.running.Load() {
		return nil, gerrors.ErrActorSystemNotRunning
	}

	for {
		current := cell.slot.Load()
		if current != nil && current.alive() {
			return current, nil
		}

		candidate := newDispatcher(x, cell, cell.generations.Inc())
		if cell.slot.CompareAndSwap(current, candidate) {
			x.workers.Add(candidate)
			x.dispatchersCreated.Inc()
			go candidate.run()
			return candidate, nil
		}
	}
}

// uncaught reports a dispatch loop failure without letting it escape
func (x *ActorSystem) uncaught(worker string, err error) {
	defer func() {
		if r := recover(); r != nil {
			x.logger.Errorf("uncaught handler panicked: %v (while handling: %v)", r, err)
		}
	}()
	x.uncaughtHandler(worker, err)
}

func (x *ActorSystem) validate() error {
	return validation.New(validation.AllErrors()).
		AddValidator(validation.NewEmptyStringValidator("name", x.name)).
		AddValidator(validation.NewPatternValidator(systemNamePattern, x.name, gerrors.ErrInvalidActorSystemName)).
		AddValidator(validation.NewRangeValidator("port", x.port, 0, 65535, gerrors.ErrInvalidPort)).
		AddValidator(validation.NewRangeValidator("idleTimeout", x.idleTimeout, time.Nanosecond, time.Duration(math.MaxInt64), gerrors.ErrInvalidTimeout)).
		AddValidator(validation.NewRangeValidator("shutdownTimeout", x.shutdownTimeout, time.Nanosecond, time.Duration(math.MaxInt64), gerrors.ErrInvalidTimeout)).
		AddAssertion(x.spawnRetries > 0, "spawnRetries must be greater than zero").
		Validate()
}

func (x *ActorSystem) registerMetrics() error {
	var opts []metric.ProviderOption
	if x.meterProvider != nil {
		opts = append(opts, metric.WithMeterProvider(x.meterProvider))
	}

	meter := metric.NewProvider(opts...).Meter()
	instruments, err := metric.NewRuntimeMetric(meter)
	if err != nil {
		return fmt.Errorf("failed to create runtime instruments: %w", err)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		x.observe(instruments, observer)
		return nil
	}, instruments.Instruments()...)
	if err != nil {
		return fmt.Errorf("failed to register runtime instruments: %w", err)
	}

	x.metricRegistration = registration
	return nil
}

func (x *ActorSystem) observe(instruments *metric.RuntimeMetric, observer otelmetric.Observer) {
	attrs := otelmetric.WithAttributes(attribute.String("actor.system", x.name))
	observer.ObserveInt64(instruments.ActorsCount(), int64(x.ActorsCount()), attrs)
	observer.ObserveInt64(instruments.WorkersCount(), int64(x.WorkersCount()), attrs)
	observer.ObserveInt64(instruments.DispatchersCreated(), x.dispatchersCreated.Load(), attrs)
	observer.ObserveInt64(instruments.ProcessedCount(), x.processed.Load(), attrs)
	observer.ObserveInt64(instruments.FailuresCount(), x.failures.Load(), attrs)
	observer.ObserveInt64(instruments.Uptime(), int64(time.Since(x.startedAt).Seconds()), attrs)
}

func isNil(instance Actor) bool {
	if instance == nil {
		return true
	}
	value := reflect.ValueOf(instance)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
