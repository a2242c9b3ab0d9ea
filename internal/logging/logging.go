// Package logging configures the process-wide structured logger from
// command line flags.
package logging

import (
	"log/slog"

	"github.com/iand/pontium/hlog"
	"github.com/urfave/cli/v2"
	xslog "golang.org/x/exp/slog"

	"github.com/young1lin/cellgrid/internal/cells"
)

var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Value:       false,
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "veryverbose",
		Aliases:     []string{"vv"},
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.VeryVerbose,
	},

	&cli.StringSliceFlag{
		Name:        "log-layouts",
		Usage:       "Always emit debug logging for these layout names, comma separated",
		Destination: &Opts.LogLayouts,
	},
}

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	LogLayouts  cli.StringSlice
}

// Level returns the level selected by the flags
func Level() slog.Level {
	switch {
	case Opts.VeryVerbose:
		return slog.LevelDebug
	case Opts.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// NewHandler builds the hlog handler selected by the flags. Records logged
// with a layout attribute named in --log-layouts pass at debug level.
func NewHandler() slog.Handler {
	h := new(hlog.Handler)
	h = h.WithLevel(xslog.Level(Level()))
	for _, name := range Opts.LogLayouts.Value() {
		h = h.WithAttrLevel(xslog.String("layout", name), xslog.LevelDebug)
	}
	return bridge{h: h}
}

// Setup installs the flag-selected handler as the default logger and routes
// layout engine logging to it.
func Setup() {
	slog.SetDefault(slog.New(NewHandler()))
	cells.SetLogger(slog.Default())
}

// ForLayout scopes layout engine logging to one named layout
func ForLayout(name string) {
	cells.SetLogger(slog.Default().With("layout", name))
}

var (
	Default = slog.Default
	Debug   = slog.Debug
	Info    = slog.Info
	Warn    = slog.Warn
	Error   = slog.Error
	With    = slog.With
)
