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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// namedMeterProvider records the instrumentation names it hands meters to
type namedMeterProvider struct {
	metric.MeterProvider
	names []string
	meter metric.Meter
}

func newNamedMeterProvider(scope string) *namedMeterProvider {
	base := noop.NewMeterProvider()
	return &namedMeterProvider{MeterProvider: base, meter: base.Meter(scope)}
}

func (p *namedMeterProvider) Meter(name string, _ ...metric.MeterOption) metric.Meter {
	p.names = append(p.names, name)
	return p.meter
}

func TestProvider(t *testing.T) {
	t.Run("With global meter provider", func(t *testing.T) {
		previous := otel.GetMeterProvider()
		t.Cleanup(func() { otel.SetMeterProvider(previous) })

		global := newNamedMeterProvider("global")
		otel.SetMeterProvider(global)

		provider := NewProvider()
		require.NotNil(t, provider.Meter())
		assert.Equal(t, global.meter, provider.Meter())
		assert.Equal(t, []string{instrumentationName}, global.names)
	})
	t.Run("With explicit meter provider", func(t *testing.T) {
		explicit := newNamedMeterProvider("explicit")

		provider := NewProvider(WithMeterProvider(explicit))
		assert.Same(t, explicit, provider.meterProvider)
		assert.Equal(t, explicit.meter, provider.Meter())
		assert.Equal(t, []string{instrumentationName}, explicit.names)
	})
	t.Run("With nil meter provider ignored", func(t *testing.T) {
		explicit := noop.NewMeterProvider()
		provider := NewProvider(WithMeterProvider(explicit), WithMeterProvider(nil))
		assert.Equal(t, explicit, provider.meterProvider)
		assert.NotNil(t, provider.Meter())
	})
}
