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
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/simpleactors/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(system *ActorSystem)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*ActorSystem)

// Apply applies the option to the actor system
func (f OptionFunc) Apply(system *ActorSystem) {
	f(system)
}

// UncaughtHandler observes failures escaping a dispatcher loop.
// worker names the dispatcher that failed.
type UncaughtHandler func(worker string, err error)

// WithLogger sets the actor system custom logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.logger = logger
	})
}

// WithPort sets the listening port reserved for a future transport.
// The runtime itself does not open it.
func WithPort(port int) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.port = port
	})
}

// WithIdleTimeout sets how long a dispatcher waits for mail before it terminates
func WithIdleTimeout(timeout time.Duration) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.idleTimeout = timeout
	})
}

// WithShutdownTimeout sets how long Shutdown waits for workers to exit
func WithShutdownTimeout(timeout time.Duration) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.shutdownTimeout = timeout
	})
}

// WithDefaultMailbox sets the mailbox factory used by actors spawned
// without their own mailbox
func WithDefaultMailbox(factory MailboxFactory) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.mailboxFactory = factory
	})
}

// WithUncaughtHandler sets the observer of dispatch loop failures
func WithUncaughtHandler(handler UncaughtHandler) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.uncaughtHandler = handler
	})
}

// WithSpawnRetries sets how many times an actor factory is attempted before spawn fails
func WithSpawnRetries(attempts int) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.spawnRetries = attempts
	})
}

// WithMetric enables OpenTelemetry instruments using the global meter provider
func WithMetric() Option {
	return OptionFunc(func(system *ActorSystem) {
		system.metricEnabled = true
	})
}

// WithMeterProvider enables OpenTelemetry instruments using the given meter provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(system *ActorSystem) {
		system.metricEnabled = true
		system.meterProvider = provider
	})
}
