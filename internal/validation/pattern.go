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
	"fmt"
	"regexp"
)

type patternValidator struct {
	pattern   string
	value     string
	customErr error
}

var _ Validator = (*patternValidator)(nil)

// NewPatternValidator checks that value matches pattern, for instance an
// actor system name. customErr, when set, is returned on mismatch.
func NewPatternValidator(pattern, value string, customErr error) Validator {
	return &patternValidator{
		pattern:   pattern,
		value:     value,
		customErr: customErr,
	}
}

func (x *patternValidator) Validate() error {
	re, err := regexp.Compile(x.pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", x.pattern, err)
	}

	if re.MatchString(x.value) {
		return nil
	}

	if x.customErr != nil {
		return x.customErr
	}
	return fmt.Errorf("%q does not match %s", x.value, x.pattern)
}
