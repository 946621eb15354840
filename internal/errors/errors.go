// Package errors provides centralized error handling for roadmap.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidFormat indicates a malformed identifier or query string.
	ErrInvalidFormat = errors.New("invalid identifier format")

	// ErrInvalidHierarchy indicates an identifier operation that would
	// skip or repeat a hierarchy level (e.g. adding an epic segment to
	// a bare phase identifier).
	ErrInvalidHierarchy = errors.New("invalid hierarchy")

	// ErrNotFound indicates a phase, milestone, epic, task, bug or idea
	// is absent from the loaded tree.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidMove indicates a move between unsupported source and
	// destination kinds. Only task→epic, epic→milestone and
	// milestone→phase moves are allowed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrUnresolvedDependency indicates a depends_on entry that does not
	// resolve to any entity after scope qualification. The availability
	// resolver treats this as a blocking condition; the checker reports
	// it as a validation error.
	ErrUnresolvedDependency = errors.New("unresolved dependency")

	// ErrDependencyCycle indicates the task dependency graph contains a
	// cycle. Reported by the consistency checker only.
	ErrDependencyCycle = errors.New("dependency cycle detected")

	// ErrSelfDependency indicates an item that lists its own identifier
	// in depends_on.
	ErrSelfDependency = errors.New("item depends on itself")

	// ErrAlreadyClaimed indicates a claim attempt on a task that another
	// agent already holds.
	ErrAlreadyClaimed = errors.New("task already claimed")

	// ErrInvalidTransition indicates a status change that the task
	// lifecycle does not permit (e.g. completing a pending task).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingReason indicates a rejection without a reason string.
	ErrMissingReason = errors.New("rejection reason required")

	// ErrContainerLocked indicates an attempt to add a child to a
	// locked (completed) phase, milestone or epic.
	ErrContainerLocked = errors.New("container is locked")

	// ErrDuplicateID indicates two entities share the same identifier.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrNoAvailableTasks indicates the resolver found no startable work.
	ErrNoAvailableTasks = errors.New("no available tasks")

	// ErrDataDirNotFound indicates the backlog data directory does not
	// exist or has not been initialized.
	ErrDataDirNotFound = errors.New("data directory not found")

	// ErrDataDirExists indicates an init attempt over an existing
	// backlog data directory.
	ErrDataDirExists = errors.New("data directory already exists")

	// ErrMalformedIndex indicates an index file that could not be parsed.
	ErrMalformedIndex = errors.New("malformed index file")

	// ErrMalformedTaskFile indicates a task file whose frontmatter could
	// not be parsed.
	ErrMalformedTaskFile = errors.New("malformed task file")

	// ErrMissingFrontmatter indicates a task file without the leading
	// "---" frontmatter delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidScoring indicates an invalid scoring configuration
	// value (e.g. a non-positive complexity multiplier).
	ErrConfigInvalidScoring = errors.New("invalid scoring configuration")

	// ErrConfigInvalidBatch indicates an invalid batch configuration value.
	ErrConfigInvalidBatch = errors.New("invalid batch configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrCheckFailed indicates the consistency check found errors
	// (or warnings under --strict).
	ErrCheckFailed = errors.New("consistency check failed")

	// ErrMenuCanceled indicates the user backed out of an interactive menu.
	ErrMenuCanceled = errors.New("menu canceled")

	// ErrNoMenuOptions indicates a menu was opened with no options.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrNonInteractiveMode indicates that an operation requiring
	// confirmation was attempted in non-interactive mode without --force.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
