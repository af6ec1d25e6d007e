// Copyright 2018 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sharedtest

import (
	"context"

	"github.com/aqacourses/selenium-waits/shared"
)

// NewTestContext creates a new context.Context for small tests, carrying a
// logger that drops everything.
func NewTestContext() context.Context {
	return shared.WithLogger(context.Background(), shared.NewNilLogger())
}

// NewTestContextWithLogger creates a context.Context carrying logger, e.g. a
// MockLogger.
func NewTestContextWithLogger(logger shared.Logger) context.Context {
	return shared.WithLogger(context.Background(), logger)
}
