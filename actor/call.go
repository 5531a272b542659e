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
	"fmt"
	"reflect"
	"slices"
	"strings"

	gerrors "github.com/tochemey/simpleactors/errors"
	"github.com/tochemey/simpleactors/internal/xsync"
)

// CallReceiver is implemented by actors that dispatch captured calls
// themselves by matching on the selector. Actors that do not implement it
// have calls applied by looking up an exported method named after the
// selector.
type CallReceiver interface {
	ReceiveCall(ctx *ReceiveContext, call *Call) error
}

// Call is a captured method invocation: a selector and the ordered
// argument values it was invoked with.
type Call struct {
	selector string
	args     []any
}

// NewCall creates a Call. A nil argument list is kept as an empty one.
func NewCall(selector string, args ...any) *Call {
	if args == nil {
		args = []any{}
	}
	return &Call{
		selector: selector,
		args:     args,
	}
}

// Selector returns the method name
func (c *Call) Selector() string {
	return c.selector
}

// Args returns a copy of the arguments
func (c *Call) Args() []any {
	return slices.Clone(c.args)
}

// Arg returns the argument at the given position or nil when out of range
func (c *Call) Arg(index int) any {
	if index < 0 || index >= len(c.args) {
		return nil
	}
	return c.args[index]
}

// NumArgs returns the number of arguments
func (c *Call) NumArgs() int {
	return len(c.args)
}

// String returns the call trace, e.g. Relay(hello,<1001@sys>)
func (c *Call) String() string {
	parts := make([]string, len(c.args))
	for i, arg := range c.args {
		parts[i] = fmt.Sprint(arg)
	}
	return fmt.Sprintf("%s(%s)", c.selector, strings.Join(parts, ","))
}

// Apply invokes the exported method of target named after the selector.
// A nil argument stands for the zero value of the parameter. When the
// method's last result is a non-nil error it is returned.
func (c *Call) Apply(target any) error {
	if target == nil {
		return gerrors.NewErrMethodNotFound(c.selector, "<nil>")
	}

	receiver := reflect.ValueOf(target)
	spec, err := lookupMethod(receiver.Type(), c.selector)
	if err != nil {
		return err
	}

	in, err := spec.arguments(c.selector, c.args)
	if err != nil {
		return err
	}

	out := receiver.Method(spec.index).Call(in)
	if spec.returnsError {
		if failure, ok := out[len(out)-1].Interface().(error); ok && failure != nil {
			return failure
		}
	}
	return nil
}

var errorType = reflect.TypeFor[error]()

type methodKey struct {
	receiver reflect.Type
	name     string
}

type methodSpec struct {
	index        int
	params       []reflect.Type
	variadic     bool
	returnsError bool
}

// methods caches the resolved method of a receiver type per selector
var methods = xsync.NewMap[methodKey, *methodSpec]()

func lookupMethod(receiver reflect.Type, name string) (*methodSpec, error) {
	key := methodKey{receiver: receiver, name: name}
	if spec, ok := methods.Get(key); ok {
		return spec, nil
	}

	method, ok := receiver.MethodByName(name)
	if !ok {
		return nil, gerrors.NewErrMethodNotFound(name, receiver.String())
	}

	// method.Type carries the receiver as its first input
	mtype := method.Type
	params := make([]reflect.Type, 0, mtype.NumIn()-1)
	for i := 1; i < mtype.NumIn(); i++ {
		params = append(params, mtype.In(i))
	}

	spec := &methodSpec{
		index:        method.Index,
		params:       params,
		variadic:     mtype.IsVariadic(),
		returnsError: mtype.NumOut() > 0 && mtype.Out(mtype.NumOut()-1) == errorType,
	}

	spec, _ = methods.GetOrSet(key, spec)
	return spec, nil
}

func (s *methodSpec) arguments(selector string, args []any) ([]reflect.Value, error) {
	fixed := len(s.params)
	if s.variadic {
		fixed--
		if len(args) < fixed {
			return nil, gerrors.NewErrInvalidCallArguments(selector,
				fmt.Errorf("want at least %d arguments, got %d", fixed, len(args)))
		}
	} else if len(args) != fixed {
		return nil, gerrors.NewErrInvalidCallArguments(selector,
			fmt.Errorf("want %d arguments, got %d", fixed, len(args)))
	}

	values := make([]reflect.Value, len(args))
	for i, arg := range args {
		param := s.paramAt(i)
		if arg == nil {
			values[i] = reflect.Zero(param)
			continue
		}

		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(param) {
			return nil, gerrors.NewErrInvalidCallArguments(selector,
				fmt.Errorf("argument %d: %s is not assignable to %s", i, value.Type(), param))
		}
		values[i] = value
	}
	return values, nil
}

func (s *methodSpec) paramAt(i int) reflect.Type {
	if s.variadic && i >= len(s.params)-1 {
		return s.params[len(s.params)-1].Elem()
	}
	return s.params[i]
}
