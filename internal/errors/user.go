package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Identifiers
	// ===================
	{
		err: ErrInvalidFormat,
		info: ErrorInfo{
			Message: "The identifier is not a valid dotted path.",
			Action:  "Use the P#, P#.M#, P#.M#.E# or P#.M#.E#.T### form, e.g. P1.M2.E1.T003.",
		},
	},
	{
		err: ErrInvalidHierarchy,
		info: ErrorInfo{
			Message: "Identifier segments must be added one level at a time.",
			Action:  "Build ids level by level: phase, then milestone, then epic, then task.",
		},
	},
	{
		err: ErrNotFound,
		info: ErrorInfo{
			Message: "No entity with this identifier exists in the backlog.",
			Action:  "Run 'roadmap list' to see known identifiers.",
		},
	},

	// ===================
	// Lifecycle
	// ===================
	{
		err: ErrAlreadyClaimed,
		info: ErrorInfo{
			Message: "This task is already claimed by another agent.",
			Action:  "Pick different work with 'roadmap next', or wait for the claim to be released.",
		},
	},
	{
		err: ErrInvalidTransition,
		info: ErrorInfo{
			Message: "The task status does not allow this operation.",
			Action:  "Check the current status with 'roadmap show <id>'.",
		},
	},
	{
		err: ErrMissingReason,
		info: ErrorInfo{
			Message: "Rejecting a task requires a reason.",
			Action:  "Re-run with --reason \"...\" explaining why the task is rejected.",
		},
	},
	{
		err: ErrContainerLocked,
		info: ErrorInfo{
			Message: "The target container is locked because it is complete.",
			Action:  "Move the item into an open container, or unlock the target first.",
		},
	},

	// ===================
	// Moves
	// ===================
	{
		err: ErrInvalidMove,
		info: ErrorInfo{
			Message: "Items can only move one level up: task→epic, epic→milestone, milestone→phase.",
			Action:  "Check that the destination is the right kind for the item being moved.",
		},
	},

	// ===================
	// Consistency
	// ===================
	{
		err: ErrDependencyCycle,
		info: ErrorInfo{
			Message: "Task dependencies form a cycle.",
			Action:  "Run 'roadmap check' to see the full cycle and break one of its edges.",
		},
	},
	{
		err: ErrUnresolvedDependency,
		info: ErrorInfo{
			Message: "A depends_on entry does not resolve to any known task or epic.",
			Action:  "Run 'roadmap check' to list unresolved entries and fix the ids.",
		},
	},
	{
		err: ErrCheckFailed,
		info: ErrorInfo{
			Message: "The consistency check reported problems.",
			Action:  "Review the findings above and fix errors before continuing.",
		},
	},

	// ===================
	// Data directory
	// ===================
	{
		err: ErrDataDirNotFound,
		info: ErrorInfo{
			Message: "No backlog data directory was found.",
			Action:  "Run 'roadmap init' to create one, or pass --dir pointing at an existing backlog.",
		},
	},
	{
		err: ErrDataDirExists,
		info: ErrorInfo{
			Message: "A backlog data directory already exists here.",
			Action:  "Remove it first, or point --dir at a different location.",
		},
	},
	{
		err: ErrMalformedIndex,
		info: ErrorInfo{
			Message: "An index file could not be parsed as YAML.",
			Action:  "Inspect the file named in the error and fix the YAML syntax.",
		},
	},
	{
		err: ErrMalformedTaskFile,
		info: ErrorInfo{
			Message: "A task file's frontmatter could not be parsed.",
			Action:  "Inspect the file named in the error; the frontmatter between the --- markers must be valid YAML.",
		},
	},

	// ===================
	// Resolver
	// ===================
	{
		err: ErrNoAvailableTasks,
		info: ErrorInfo{
			Message: "No task is currently available to start.",
			Action:  "Run 'roadmap status' to see what is blocked and why.",
		},
	},

	// ===================
	// CLI / config
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The requested output format is not supported.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation needs confirmation, but no terminal is attached.",
			Action:  "Re-run with --force to skip the confirmation prompt.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
			Action:  "",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Derived lookup table, built once at init
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo resolves the ErrorInfo for an error.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
