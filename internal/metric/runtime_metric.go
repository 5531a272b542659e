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

package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// RuntimeMetric groups the instruments describing an actor system at runtime.
//
// Instruments:
//   - actorsystem.actors.count          (Int64ObservableGauge)
//   - actorsystem.workers.count         (Int64ObservableGauge)
//   - actorsystem.dispatchers.created   (Int64ObservableCounter)
//   - actorsystem.messages.processed    (Int64ObservableCounter)
//   - actorsystem.failures.count        (Int64ObservableCounter)
//   - actorsystem.uptime                (Int64ObservableCounter, unit: seconds)
type RuntimeMetric struct {
	actorsCount        metric.Int64ObservableGauge
	workersCount       metric.Int64ObservableGauge
	dispatchersCreated metric.Int64ObservableCounter
	processedCount     metric.Int64ObservableCounter
	failuresCount      metric.Int64ObservableCounter
	uptime             metric.Int64ObservableCounter
}

// NewRuntimeMetric creates the runtime instruments using the provided Meter.
// It fails on the first instrument that cannot be created.
func NewRuntimeMetric(meter metric.Meter) (*RuntimeMetric, error) {
	var instruments RuntimeMetric
	var err error

	if instruments.actorsCount, err = meter.Int64ObservableGauge(
		"actorsystem.actors.count",
		metric.WithDescription("Total number of actors registered in the actor system"),
	); err != nil {
		return nil, fmt.Errorf("failed to create actorsCount instrument, %w", err)
	}

	if instruments.workersCount, err = meter.Int64ObservableGauge(
		"actorsystem.workers.count",
		metric.WithDescription("Number of live dispatcher workers"),
	); err != nil {
		return nil, fmt.Errorf("failed to create workersCount instrument, %w", err)
	}

	if instruments.dispatchersCreated, err = meter.Int64ObservableCounter(
		"actorsystem.dispatchers.created",
		metric.WithDescription("Total number of dispatchers started, replacements included"),
	); err != nil {
		return nil, fmt.Errorf("failed to create dispatchersCreated instrument, %w", err)
	}

	if instruments.processedCount, err = meter.Int64ObservableCounter(
		"actorsystem.messages.processed",
		metric.WithDescription("Total number of envelopes applied to actors"),
	); err != nil {
		return nil, fmt.Errorf("failed to create processedCount instrument, %w", err)
	}

	if instruments.failuresCount, err = meter.Int64ObservableCounter(
		"actorsystem.failures.count",
		metric.WithDescription("Total number of failures routed to actor hooks"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failuresCount instrument, %w", err)
	}

	if instruments.uptime, err = meter.Int64ObservableCounter(
		"actorsystem.uptime",
		metric.WithDescription("Uptime of the actor system in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("failed to create uptime instrument, %w", err)
	}

	return &instruments, nil
}

// ActorsCount returns the gauge reporting the number of registered actors
func (x *RuntimeMetric) ActorsCount() metric.Int64ObservableGauge {
	return x.actorsCount
}

// WorkersCount returns the gauge reporting the number of live workers
func (x *RuntimeMetric) WorkersCount() metric.Int64ObservableGauge {
	return x.workersCount
}

// DispatchersCreated returns the counter of started dispatchers
func (x *RuntimeMetric) DispatchersCreated() metric.Int64ObservableCounter {
	return x.dispatchersCreated
}

// ProcessedCount returns the counter of applied envelopes
func (x *RuntimeMetric) ProcessedCount() metric.Int64ObservableCounter {
	return x.processedCount
}

// FailuresCount returns the counter of failures handed to actor hooks
func (x *RuntimeMetric) FailuresCount() metric.Int64ObservableCounter {
	return x.failuresCount
}

// Uptime returns the counter reporting the system uptime in seconds
func (x *RuntimeMetric) Uptime() metric.Int64ObservableCounter {
	return x.uptime
}

// Instruments returns every instrument so they can be handed to Meter.RegisterCallback
func (x *RuntimeMetric) Instruments() []metric.Observable {
	return []metric.Observable{
		x.actorsCount,
		x.workersCount,
		x.dispatchersCreated,
		x.processedCount,
		x.failuresCount,
		x.uptime,
	}
}
