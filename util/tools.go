//go:build tools

// Package util pins the code generation and lint tools used by this module so
// that `go run` resolves them at the versions recorded in go.mod.
package util

import (
	// mockgen produces webdriver/webdrivertest; see the go:generate directive
	// in webdriver/service.go.
	_ "go.uber.org/mock/mockgen"
	_ "golang.org/x/lint/golint"
)
