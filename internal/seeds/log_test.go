package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseLog_MissingFileReadsEmpty(t *testing.T) {
	log := NewResponseLog(filepath.Join(t.TempDir(), "responses.txt"))

	text, err := log.Text()
	require.NoError(t, err)
	assert.Empty(t, text)

	entries, err := log.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResponseLog_AppendCreatesFile(t *testing.T) {
	log := NewResponseLog(filepath.Join(t.TempDir(), "responses.txt"))

	require.NoError(t, log.Append([]string{"A", "B"}))

	text, err := log.Text()
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", text)
}

func TestResponseLog_AppendPreservesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.txt")
	require.NoError(t, os.WriteFile(path, []byte("Old idea\n"), 0644))
	log := NewResponseLog(path)

	require.NoError(t, log.Append([]string{"A", "B"}))

	text, err := log.Text()
	require.NoError(t, err)
	assert.Equal(t, "Old idea\nA\nB\n", text)

	entries, err := log.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Old idea", "A", "B"}, entries)
}

func TestResponseLog_AppendFlattensNewlines(t *testing.T) {
	log := NewResponseLog(filepath.Join(t.TempDir(), "responses.txt"))

	require.NoError(t, log.Append([]string{"Recipe\nBox: save recipes"}))

	entries, err := log.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Recipe Box: save recipes"}, entries)
}

func TestResponseLog_AppendNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.txt")
	log := NewResponseLog(path)

	require.NoError(t, log.Append(nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
