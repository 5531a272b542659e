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

package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type validationTestSuite struct {
	suite.Suite
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestValidation(t *testing.T) {
	suite.Run(t, new(validationTestSuite))
}

func (s *validationTestSuite) TestNewChain() {
	s.Run("new chain without option", func() {
		chain := New()
		s.Assert().NotNil(chain)
		s.Assert().False(chain.failFast)
	})
	s.Run("new chain with options", func() {
		chain := New(FailFast())
		s.Assert().True(chain.failFast)
		chain2 := New(AllErrors())
		s.Assert().False(chain2.failFast)
	})
}

func (s *validationTestSuite) TestAddValidator() {
	chain := New()
	s.Assert().Empty(chain.validators)
	chain.AddValidator(NewBooleanValidator(true, "")).AddAssertion(true, "")
	s.Assert().Len(chain.validators, 2)
	s.Assert().NoError(chain.Validate())
}

func (s *validationTestSuite) TestValidate() {
	s.Run("with single validator", func() {
		chain := New().AddValidator(NewEmptyStringValidator("name", " "))
		err := chain.Validate()
		s.Assert().EqualError(err, "the [name] is required")
		// a second run reports the same violations instead of accumulating
		s.Assert().EqualError(chain.Validate(), "the [name] is required")
	})
	s.Run("with multiple validators and FailFast option", func() {
		err := New(FailFast()).
			AddValidator(NewEmptyStringValidator("name", "")).
			AddAssertion(false, "this is false").
			Validate()
		s.Assert().EqualError(err, "the [name] is required")
	})
	s.Run("with multiple validators and AllErrors option", func() {
		err := New(AllErrors()).
			AddValidator(NewEmptyStringValidator("name", "")).
			AddAssertion(false, "this is false").
			Validate()
		s.Assert().EqualError(err, "the [name] is required; this is false")
	})
}

func (s *validationTestSuite) TestBooleanValidator() {
	s.Assert().NoError(NewBooleanValidator(true, "error message").Validate())
	s.Assert().EqualError(NewBooleanValidator(false, "error message").Validate(), "error message")
}

func (s *validationTestSuite) TestPatternValidator() {
	custom := errors.New("bad name")
	s.Assert().NoError(NewPatternValidator(`^[a-z]+$`, "sys", custom).Validate())
	s.Assert().ErrorIs(NewPatternValidator(`^[a-z]+$`, "Sys1", custom).Validate(), custom)
	s.Assert().EqualError(NewPatternValidator(`^[a-z]+$`, "Sys1", nil).Validate(), `"Sys1" does not match ^[a-z]+$`)
	s.Assert().ErrorContains(NewPatternValidator(`^[a-z+$`, "sys", custom).Validate(), "invalid pattern")
}

func (s *validationTestSuite) TestRangeValidator() {
	invalidPort := errors.New("invalid port")
	s.Assert().NoError(NewRangeValidator("port", 0, 0, 65535, invalidPort).Validate())
	s.Assert().NoError(NewRangeValidator("port", 65535, 0, 65535, invalidPort).Validate())

	err := NewRangeValidator("port", 70000, 0, 65535, invalidPort).Validate()
	s.Assert().ErrorIs(err, invalidPort)
	s.Assert().EqualError(err, "port=(70000) out of range [0, 65535]: invalid port")

	err = NewRangeValidator("idleTimeout", time.Duration(0), time.Nanosecond, time.Duration(1<<62), nil).Validate()
	s.Assert().Error(err)
}
