// Package codec converts grids to and from their on-disk encodings.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"spritedit/internal/core"

	"github.com/sirupsen/logrus"
)

// DefaultSize is the size of the blank grid used when no file can be read.
var DefaultSize = core.Size{W: 8, H: 8}

var log = logrus.WithField("component", "codec")

// Format identifies an on-disk encoding.
type Format int

const (
	// TextRGB is the plain-text P3 style format.
	TextRGB Format = iota
	// PNG is the binary image format with binary transparency.
	PNG
	// BMP stores the same pixel layout as PNG in a bitmap container.
	BMP
)

func (f Format) String() string {
	switch f {
	case TextRGB:
		return "ppm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extensions lists the file extensions understood by FormatFromPath.
var Extensions = []string{".ppm", ".png", ".bmp"}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return TextRGB, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: unsupported file extension %q, expected one of %s",
		core.ErrConfig, filepath.Ext(path), strings.Join(Extensions, ", "))
}

// Codec is an encode/decode pair for a single format.
type Codec interface {
	Encode(w io.Writer, g *core.Grid) error
	Decode(r io.Reader) (*core.Grid, error)
}

// For returns the codec implementing f.
func For(f Format) (Codec, error) {
	switch f {
	case TextRGB:
		return textRGB{}, nil
	case PNG:
		return binaryImage{container: PNG}, nil
	case BMP:
		return binaryImage{container: BMP}, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", f)
}

// Encode renders g in format f.
func Encode(f Format, g *core.Grid) ([]byte, error) {
	c, err := For(f)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses data in format f.
func Decode(f Format, data []byte) (*core.Grid, error) {
	c, err := For(f)
	if err != nil {
		return nil, err
	}
	return c.Decode(bytes.NewReader(data))
}

// Blank returns a background grid of DefaultSize.
func Blank() *core.Grid {
	g, err := core.NewGrid(DefaultSize.W, DefaultSize.H)
	if err != nil {
		panic(err)
	}
	return g
}

// Load reads and decodes the file at path. A missing or unreadable file is
// not an error: a blank grid of DefaultSize is returned instead. Malformed
// content is reported with an error wrapping core.ErrFormat.
func Load(path string) (*core.Grid, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fields := logrus.Fields{"file": path, "size": DefaultSize.String()}
		if errors.Is(err, fs.ErrNotExist) {
			log.WithFields(fields).Warn("file does not exist, starting blank")
		} else {
			log.WithFields(fields).WithError(err).Warn("could not read file, starting blank")
		}
		return Blank(), nil
	}
	g, err := Decode(f, data)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	log.WithFields(logrus.Fields{"file": path, "format": f, "size": g.Size().String()}).Info("loaded")
	return g, nil
}

// Save encodes g in the format implied by path and replaces the file
// atomically. On failure the previous file content is left untouched.
func Save(path string, g *core.Grid) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, g)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	out, err := os.CreateTemp(dir, name+".*")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary destination for %q: %v", core.ErrIO, path, err)
	}
	canRename := false
	defer func() {
		if defErr := out.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("%w: could not close temporary destination %q: %v", core.ErrIO, out.Name(), defErr)
			canRename = false
		}
		if canRename {
			if defErr := os.Rename(out.Name(), path); defErr != nil {
				err = fmt.Errorf("%w: could not rename destination file %q: %v", core.ErrIO, path, defErr)
				canRename = false
			}
		}
		if !canRename {
			if rmErr := os.Remove(out.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				log.WithField("file", out.Name()).WithError(rmErr).Warn("could not remove temporary file")
			}
		}
	}()

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("%w: could not write %q: %v", core.ErrIO, path, err)
	}
	if err = out.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: could not set permissions on %q: %v", core.ErrIO, path, err)
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("%w: could not flush %q: %v", core.ErrIO, path, err)
	}
	canRename = true
	log.WithFields(logrus.Fields{"file": path, "format": f, "bytes": len(data)}).Info("saved")
	return nil
}
