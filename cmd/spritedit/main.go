//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"spritedit/internal/app"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := app.ParseArgs(os.Args[1:], kong.Exit(os.Exit))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	app.ConfigureLogging(cfg.LogLevel)

	doc, err := app.Boot(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not open sprite")
	}

	game := app.New(cfg, doc)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle(app.WindowTitle(doc))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.WithError(err).Fatal("editor stopped")
	}
}
