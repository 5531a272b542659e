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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestRuntimeMetric(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	instruments, err := NewRuntimeMetric(meter)
	require.NoError(t, err)
	require.NotNil(t, instruments)

	require.NotNil(t, instruments.ActorsCount())
	require.NotNil(t, instruments.WorkersCount())
	require.NotNil(t, instruments.DispatchersCreated())
	require.NotNil(t, instruments.ProcessedCount())
	require.NotNil(t, instruments.FailuresCount())
	require.NotNil(t, instruments.Uptime())
	require.Len(t, instruments.Instruments(), 6)
}

func TestRuntimeMetricErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	baseMeter := noop.NewMeterProvider().Meter("test")

	testCases := []struct {
		name    string
		failKey string
	}{
		{name: "actors gauge", failKey: "actorsystem.actors.count"},
		{name: "workers gauge", failKey: "actorsystem.workers.count"},
		{name: "dispatchers counter", failKey: "actorsystem.dispatchers.created"},
		{name: "processed counter", failKey: "actorsystem.messages.processed"},
		{name: "failures counter", failKey: "actorsystem.failures.count"},
		{name: "uptime counter", failKey: "actorsystem.uptime"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meter := instrumentFailingMeter{
				Meter: baseMeter,
				failures: map[string]error{
					tt.failKey: errBoom,
				},
			}

			instruments, err := NewRuntimeMetric(meter)
			require.ErrorIs(t, err, errBoom)
			require.Nil(t, instruments)
		})
	}
}

type instrumentFailingMeter struct {
	metric.Meter
	failures map[string]error
}

func (m instrumentFailingMeter) Int64ObservableCounter(name string, opts ...metric.Int64ObservableCounterOption) (metric.Int64ObservableCounter, error) {
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	return m.Meter.Int64ObservableCounter(name, opts...)
}

func (m instrumentFailingMeter) Int64ObservableGauge(name string, opts ...metric.Int64ObservableGaugeOption) (metric.Int64ObservableGauge, error) {
	if err, ok := m.failures[name]; ok {
		return nil, err
	}
	return m.Meter.Int64ObservableGauge(name, opts...)
}
