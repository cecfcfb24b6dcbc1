package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFileAdapter_AppendPaths(t *testing.T) {
	file := filepath.Join(t.TempDir(), "github_path")
	require.NoError(t, os.WriteFile(file, []byte("/existing\n"), 0644))

	adapter := NewPathFileAdapter()
	require.NoError(t, adapter.AppendPaths(file, []string{"/x/lib/a", "/x/lib/b"}))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "/existing\n/x/lib/a\n/x/lib/b\n", string(content))
}

func TestPathFileAdapter_CreatesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "github_path")
	require.NoError(t, NewPathFileAdapter().AppendPaths(file, []string{"/x"}))
	require.FileExists(t, file)
}

func TestPathFileAdapter_EmptyFileName(t *testing.T) {
	err := NewPathFileAdapter().AppendPaths("", []string{"/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path export file is empty")
}
