package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".roadmap", "config.yaml"), path)
}

func TestProjectConfigPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join(".roadmap", "config.yaml"), ProjectConfigPath())
}
