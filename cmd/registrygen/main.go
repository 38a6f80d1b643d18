package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/OCharnyshevich/registrygen/internal/config"
	"github.com/OCharnyshevich/registrygen/internal/generator"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := generator.Run(config.Default(), log); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints the wrapped error chain, which names the failing category
// and file.
func report(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "registrygen failed: %v\n", err)
}
