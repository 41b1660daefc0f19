package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolder/internal/config"
	"scaffolder/internal/models"
)

func writeSeed(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.SeedsConfig{
		ExampleIdeas:          writeSeed(t, dir, "seedIdeas.json", `{"ideas":["Todo app","Weather app"]}`),
		DetailedIdeas:         writeSeed(t, dir, "detailedIdeas.json", `{"ideas":[{"idea":"Chat App","complexity":"medium"}]}`),
		ProjectListing:        writeSeed(t, dir, "output.txt", "## src/App.jsx\n```jsx\nexport default App\n```"),
		Playlist:              writeSeed(t, dir, "playlist.txt", "1. Intro\n2. Components"),
		ScaffoldingPrinciples: writeSeed(t, dir, "principles.md", "# Key Principles"),
	}
	return NewStore(cfg), dir
}

func TestStoreExampleIdeas(t *testing.T) {
	store, _ := testStore(t)
	ideas, err := store.ExampleIdeas()
	require.NoError(t, err)
	assert.Equal(t, []string{"Todo app", "Weather app"}, ideas)
}

func TestStoreDetailedIdeas(t *testing.T) {
	store, _ := testStore(t)
	ideas, err := store.DetailedIdeas()
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Chat App", ideas[0].Title)
}

func TestStoreDetailedIdeas_Malformed(t *testing.T) {
	store, dir := testStore(t)
	writeSeed(t, dir, "detailedIdeas.json", "not json")

	_, err := store.DetailedIdeas()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestStoreTextSeeds(t *testing.T) {
	store, _ := testStore(t)

	listing, err := store.ProjectListing()
	require.NoError(t, err)
	assert.Contains(t, listing, "src/App.jsx")

	playlist, err := store.Playlist()
	require.NoError(t, err)
	assert.Contains(t, playlist, "Components")

	principles, err := store.ScaffoldingPrinciples()
	require.NoError(t, err)
	assert.Contains(t, principles, "Key Principles")
}

func TestStoreMissingSeedFile(t *testing.T) {
	store := NewStore(config.SeedsConfig{ExampleIdeas: filepath.Join(t.TempDir(), "absent.json")})
	_, err := store.ExampleIdeas()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.json")
}
