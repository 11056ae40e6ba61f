// Package editor holds the state of one editing session: the working grid,
// the snapshot it can be reset to, and the file it is saved to.
package editor

import (
	"fmt"

	"spritedit/internal/codec"
	"spritedit/internal/core"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "editor")

// Document is the sprite being edited.
type Document struct {
	path     string
	format   codec.Format
	grid     *core.Grid
	snapshot *core.Grid
	// content of the save target as last loaded or written
	saved *core.Grid
}

// Open loads path as the initial grid. A missing file yields a blank grid of
// codec.DefaultSize; malformed content is returned as an error.
func Open(path string) (*Document, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	g, err := codec.Load(path)
	if err != nil {
		return nil, err
	}
	return newDocument(path, format, g), nil
}

// New creates a blank n by n document that will be saved to path. Existing
// content at path is ignored.
func New(path string, n int) (*Document, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGrid(n, n)
	if err != nil {
		return nil, err
	}
	return newDocument(path, format, g), nil
}

// FromGrid wraps an existing grid; the grid also becomes the reset snapshot.
func FromGrid(path string, g *core.Grid) (*Document, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return newDocument(path, format, g), nil
}

func newDocument(path string, format codec.Format, g *core.Grid) *Document {
	return &Document{path: path, format: format, grid: g, snapshot: g.Clone(), saved: g.Clone()}
}

// Grid returns the working grid.
func (d *Document) Grid() *core.Grid { return d.grid }

// Path returns the save target.
func (d *Document) Path() string { return d.path }

// Format returns the on-disk format of the save target.
func (d *Document) Format() codec.Format { return d.format }

// Dirty reports whether the grid differs from what was last loaded or saved.
// Painting a cell and painting it back leaves the document clean.
func (d *Document) Dirty() bool { return !d.grid.Equal(d.saved) }

// Snapshot returns a copy of the grid the document was opened with.
func (d *Document) Snapshot() *core.Grid { return d.snapshot.Clone() }

// Reset replaces the working grid with a copy of the snapshot.
func (d *Document) Reset() {
	d.grid = d.Snapshot()
}

// Clear replaces the working grid with a background grid of the same size.
func (d *Document) Clear() {
	g, err := core.NewGrid(d.grid.W, d.grid.H)
	if err != nil {
		// The current grid already has a valid size.
		panic(err)
	}
	d.grid = g
}

// Save writes the working grid to the save target. A failed write leaves
// the document untouched.
func (d *Document) Save() error {
	if err := codec.Save(d.path, d.grid); err != nil {
		log.WithField("file", d.path).WithError(err).Error("save failed")
		return err
	}
	d.saved = d.grid.Clone()
	log.WithFields(logrus.Fields{"file": d.path, "painted": d.grid.CountPainted()}).Info("saved")
	return nil
}

// Reload reads the save target again and makes it both the working grid and
// the snapshot. On failure the document is left unchanged.
func (d *Document) Reload() error {
	g, err := codec.Load(d.path)
	if err != nil {
		log.WithField("file", d.path).WithError(err).Error("load failed")
		return err
	}
	d.grid = g
	d.snapshot = g.Clone()
	d.saved = g.Clone()
	return nil
}

func (d *Document) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.path, d.format, d.grid.Size())
}
