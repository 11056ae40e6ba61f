package editor

import (
	"os"
	"path/filepath"
	"testing"

	"spritedit/internal/codec"
	"spritedit/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = core.RGB8(255, 0, 0)

func TestOpenMissingFileStartsBlank(t *testing.T) {
	doc, err := Open(filepath.Join(t.TempDir(), "new.png"))
	require.NoError(t, err)
	assert.Equal(t, codec.DefaultSize, doc.Grid().Size())
	assert.Equal(t, codec.PNG, doc.Format())
	assert.False(t, doc.Dirty())
}

func TestOpenRejectsUnknownExtension(t *testing.T) {
	_, err := Open("sprite.txt")
	assert.ErrorIs(t, err, core.ErrConfig)
	_, err = New("sprite.txt", 4)
	assert.ErrorIs(t, err, core.ErrConfig)
}

func TestNewIgnoresExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.ppm")
	require.NoError(t, os.WriteFile(path, []byte("P3\n1 1\n255\n\n255 255 255\n"), 0o644))

	doc, err := New(path, 16)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 16, H: 16}, doc.Grid().Size())
	assert.Zero(t, doc.Grid().CountPainted())

	_, err = New(path, 0)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestResetRestoresSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.png")
	g, err := core.NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, red))
	require.NoError(t, codec.Save(path, g))

	doc, err := Open(path)
	require.NoError(t, err)
	require.True(t, doc.Grid().Equal(g))

	require.NoError(t, doc.Grid().Set(0, 0, red))
	require.NoError(t, doc.Grid().Set(1, 1, core.Background))
	require.True(t, doc.Dirty())

	doc.Reset()
	assert.True(t, doc.Grid().Equal(g))
	assert.False(t, doc.Dirty())

	// The snapshot is not aliased by the working grid.
	require.NoError(t, doc.Grid().Set(2, 2, red))
	doc.Reset()
	assert.True(t, doc.Grid().Equal(g))
}

func TestClearKeepsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.ppm")
	g, err := core.NewGrid(5, 5)
	require.NoError(t, err)
	require.NoError(t, g.Set(4, 4, red))
	doc, err := FromGrid(path, g)
	require.NoError(t, err)

	doc.Clear()
	assert.Equal(t, core.Size{W: 5, H: 5}, doc.Grid().Size())
	assert.Zero(t, doc.Grid().CountPainted())
	assert.True(t, doc.Dirty())

	// Clearing does not touch the snapshot.
	doc.Reset()
	assert.Equal(t, 1, doc.Grid().CountPainted())
	assert.False(t, doc.Dirty())
}

func TestDirtyFollowsContent(t *testing.T) {
	doc, err := New(filepath.Join(t.TempDir(), "d.png"), 3)
	require.NoError(t, err)
	assert.False(t, doc.Dirty())

	require.NoError(t, doc.Grid().Set(2, 1, red))
	assert.True(t, doc.Dirty())

	require.NoError(t, doc.Grid().Set(2, 1, core.Background))
	assert.False(t, doc.Dirty(), "painting a cell back is not an edit")

	require.NoError(t, doc.Grid().Set(0, 0, red))
	require.NoError(t, doc.Save())
	assert.False(t, doc.Dirty())

	// Reset goes back to the opened grid, which no longer matches the file.
	doc.Reset()
	assert.True(t, doc.Dirty())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.bmp")
	doc, err := New(path, 4)
	require.NoError(t, err)
	require.NoError(t, doc.Grid().Set(3, 0, red))
	require.True(t, doc.Dirty())

	require.NoError(t, doc.Save())
	assert.False(t, doc.Dirty())

	saved := doc.Grid().Clone()
	doc.Clear()
	require.NoError(t, doc.Reload())
	assert.True(t, doc.Grid().Equal(saved))
	assert.True(t, doc.Snapshot().Equal(saved))
}

func TestReloadMalformedKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.ppm")
	doc, err := New(path, 2)
	require.NoError(t, err)
	require.NoError(t, doc.Grid().Set(0, 0, red))
	before := doc.Grid().Clone()

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	err = doc.Reload()
	assert.ErrorIs(t, err, core.ErrFormat)
	assert.True(t, doc.Grid().Equal(before))
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	doc, err := New(filepath.Join(t.TempDir(), "missing", "x.png"), 2)
	require.NoError(t, err)
	require.NoError(t, doc.Grid().Set(1, 1, red))
	assert.ErrorIs(t, doc.Save(), core.ErrIO)
	assert.True(t, doc.Dirty())
}
