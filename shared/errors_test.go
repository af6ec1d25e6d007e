//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMultiError_non_empty(t *testing.T) {
	err := NewMultiError([]error{errors.New("test1"), nil, errors.New("test2")}, "testing")
	assert.Equal(t, "2 error(s) occurred when testing:\ntest1\ntest2", err.Error())
	multi, ok := err.(MultiError)
	assert.True(t, ok)
	assert.Equal(t, 2, multi.Count())
}

func TestNewMultiError_nil(t *testing.T) {
	// It is vital to pre-declare the type of err.
	var err error
	err = NewMultiError([]error{nil, nil}, "testing")
	// Do NOT use assert.Nil: we use the `nil` literal intentionally here.
	// This is equivalent to `err == nil`, which fails if NewMultiError
	// returns a non-nil MultiError with no entries.
	assert.Equal(t, nil, err)
	_, ok := err.(MultiError)
	assert.False(t, ok)
}

func TestMultiError_Is(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewMultiError([]error{errors.New("other"), sentinel}, "closing")
	assert.True(t, errors.Is(err, sentinel))
}
