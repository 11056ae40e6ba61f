package app

import (
	"errors"

	"spritedit/internal/codec"
	"spritedit/internal/core"
	"spritedit/internal/editor"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "app")

// Boot creates the document described by cfg. With -d a blank grid is made;
// otherwise the file is loaded, falling back to a blank grid of
// codec.DefaultSize when its content is malformed.
func Boot(cfg *Config) (*editor.Document, error) {
	if cfg.Dim != nil {
		log.WithFields(logrus.Fields{"file": cfg.File, "dim": *cfg.Dim}).Info("starting blank grid")
		return editor.New(cfg.File, *cfg.Dim)
	}
	doc, err := editor.Open(cfg.File)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, core.ErrFormat) {
		return nil, err
	}
	log.WithField("file", cfg.File).WithError(err).Error("could not load file, starting blank")
	return editor.FromGrid(cfg.File, codec.Blank())
}

// WindowTitle names the editor window after the sprite being edited.
func WindowTitle(doc *editor.Document) string {
	return "Sprite Editor - " + doc.Path()
}
