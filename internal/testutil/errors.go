// Package testutil provides testing utilities for roadmap.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockFileNotFound indicates a mock file was not found (used in tests).
	ErrMockFileNotFound = errors.New("file not found")

	// ErrMockReadFailed indicates a mock file read failed (used in tests).
	ErrMockReadFailed = errors.New("read failed")

	// ErrMockWriteFailed indicates a mock file write failed (used in tests).
	ErrMockWriteFailed = errors.New("write failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")

	// ErrMockStoreUnavailable indicates a mock store is unavailable (used in tests).
	ErrMockStoreUnavailable = errors.New("store unavailable")
)
