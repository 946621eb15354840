// Package constants provides centralized constant values used throughout roadmap.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// File and directory names used by roadmap for backlog persistence.
const (
	// RoadmapHome is the hidden directory name where roadmap stores global
	// data (logs, global config). Created in the user's home directory.
	RoadmapHome = ".roadmap"

	// DataDirName is the default name of the backlog data directory,
	// created in the project root.
	DataDirName = ".roadmap"

	// IndexFileName is the name of the YAML index file present in the data
	// directory root and every phase/milestone/epic directory.
	IndexFileName = "index.yaml"

	// TaskFileExt is the file extension for task, bug and idea files
	// (Markdown body with YAML frontmatter).
	TaskFileExt = ".todo"

	// BugsDirName is the directory holding the flat bug collection.
	BugsDirName = "bugs"

	// IdeasDirName is the directory holding the flat idea collection.
	IdeasDirName = "ideas"

	// ContextFileName is the runtime snapshot holding the current/primary
	// task pointer. A cache, never the source of truth.
	ContextFileName = ".context.yaml"

	// SessionsFileName is the runtime snapshot holding per-agent session
	// state. A cache, never the source of truth.
	SessionsFileName = ".sessions.yaml"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.roadmap/logs/roadmap.log.
	CLILogFileName = "roadmap.log"

	// GlobalConfigName is the name of the global configuration file,
	// located in the roadmap home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project configuration file,
	// located inside the data directory.
	ProjectConfigName = "config.yaml"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// Defaults for work selection and moves.
const (
	// DefaultGrabCount is the default number of extra tasks collected by
	// a batch grab beyond the primary.
	DefaultGrabCount = 2

	// MaxSlugLength is the maximum length of a slugified file name stem.
	MaxSlugLength = 30

	// MaxDependencyDepth bounds transitive dependency traversal to keep
	// reachability checks cycle-safe even on malformed graphs.
	MaxDependencyDepth = 100

	// MaxLoadConcurrency is the maximum number of task files read in
	// parallel while loading the tree.
	MaxLoadConcurrency = 50
)

// PlaceholderMarkers are template fragments that signal a task file whose
// body was never filled in. The checker reports any of these as a warning.
func PlaceholderMarkers() []string {
	return []string{
		"TODO: describe this task",
		"<!-- acceptance criteria -->",
		"(fill in details)",
	}
}
