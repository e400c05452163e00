// Command mobius estimates the surface area and edge length of a Möbius
// strip and optionally renders it to PNG.
//
//	mobius --radius 5 --width 2 --resolution 200 --plot strip.png
//	mobius --config mobius.toml --format json
//	mobius --interactive
//	mobius converge --resolutions 100,200,400
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/alexshd/mobius"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("mobius failed", "err", err)
		os.Exit(1)
	}
}

// setupLogger installs a tint handler on w as the default logger and
// hands it to the library and the renderer.
func setupLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))

	slog.SetDefault(logger)
	mobius.SetLogger(logger)
	gg.SetLogger(logger)
	return logger
}
