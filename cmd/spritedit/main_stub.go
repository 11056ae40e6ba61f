//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"spritedit/internal/app"

	"github.com/alecthomas/kong"
)

func main() {
	if _, err := app.ParseArgs(os.Args[1:], kong.Exit(os.Exit)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, "The GUI build of spritedit requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/spritedit` or build with `-tags ebiten`.")
	os.Exit(2)
}
