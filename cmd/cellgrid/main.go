// Command cellgrid renders box-drawn table layouts and keeps a library of
// named layouts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/young1lin/cellgrid/internal/logging"
)

// Version information injected by ldflags during build.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "cellgrid",
		HelpName: "cellgrid",
		Usage:    "Render nested table layouts with box-drawing borders",
		Version:  fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Project directory to read .cellgrid/cellgrid.yaml from",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path of the layout database, overriding the configured store",
			},
		}, logging.Flags...),
		Before: func(*cli.Context) error {
			logging.Setup()
			return nil
		},
		Commands: []*cli.Command{
			renderCommand,
			saveCommand,
			showCommand,
			listCommand,
			deleteCommand,
		},
	}
}

func main() {
	initConsole()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
