package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/errors"
)

// GlobalConfigDir returns the path to the global roadmap configuration
// directory. This is typically ~/.roadmap on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.RoadmapHome), nil
}

// ProjectConfigDir returns the relative path to the project configuration
// directory. This is always .roadmap relative to the project root.
func ProjectConfigDir() string {
	return constants.DataDirName
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.roadmap/config.yaml on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .roadmap/config.yaml relative to the project root.
func ProjectConfigPath() string {
	return filepath.Join(ProjectConfigDir(), constants.ProjectConfigName)
}
