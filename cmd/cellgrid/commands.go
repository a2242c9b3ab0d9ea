package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/cells"
	"github.com/young1lin/cellgrid/internal/config"
	"github.com/young1lin/cellgrid/internal/dsl"
	"github.com/young1lin/cellgrid/internal/layout"
	"github.com/young1lin/cellgrid/internal/logging"
	"github.com/young1lin/cellgrid/internal/store"
	"github.com/young1lin/cellgrid/internal/watch"
)

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "Render a layout file",
	ArgsUsage: "FILE",
	Action:    renderAction,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Keep running and redraw whenever the file changes",
		},
	},
}

var saveCommand = &cli.Command{
	Name:      "save",
	Usage:     "Render a layout file and store it under a name",
	ArgsUsage: "NAME FILE",
	Action:    saveAction,
}

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Print a stored layout",
	ArgsUsage: "NAME",
	Action:    showAction,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "source",
			Usage: "Print the layout source instead of its rendering",
		},
	},
}

var listCommand = &cli.Command{
	Name:   "list",
	Usage:  "List stored layouts, most recently updated first",
	Action: listAction,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of layouts to list (0 for all)",
		},
	},
}

var deleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Remove a stored layout",
	ArgsUsage: "NAME",
	Action:    deleteAction,
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if db := c.String("db"); db != "" {
		cfg.Store.Path = db
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open layout store: %w", err)
	}
	return db, nil
}

func defaults(cfg *config.Config) dsl.Defaults {
	return dsl.Defaults{
		Border:    cfg.BorderWeight(),
		Alignment: cfg.TextAlignment(),
		Padding:   cfg.Defaults.Padding,
		MaxSize:   cfg.MaxSize(),
	}
}

// renderSource parses, builds and draws one layout document
func renderSource(cfg *config.Config, name, source string) ([]string, error) {
	doc, err := dsl.Parse(name, strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	root, err := dsl.Build(doc, defaults(cfg))
	if err != nil {
		return nil, err
	}

	logging.ForLayout(name)
	return cells.NewTable(root,
		cells.WithMaxSpan(cfg.MaxSpan()),
		cells.WithMaxSize(cfg.MaxSize()),
	).Render()
}

func renderFile(cfg *config.Config, path string) (source string, lines []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read layout: %w", err)
	}
	lines, err = renderSource(cfg, filepath.Base(path), string(data))
	return string(data), lines, err
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("layout file is required")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	redraw := func() error {
		_, lines, err := renderFile(cfg, path)
		if err != nil {
			return err
		}
		return printLines(c.App.Writer, lines)
	}

	if !c.Bool("watch") {
		return redraw()
	}

	w, err := watch.New(path, watch.WithPollInterval(cfg.PollInterval()))
	if err != nil {
		return fmt.Errorf("failed to watch layout: %w", err)
	}
	if err := redraw(); err != nil {
		logging.Warn("failed to render layout", "file", path, "error", err)
	}
	return watchLoop(c.Context, w, redraw)
}

// watchLoop redraws on every change until ctx is done or the notifier
// closes. Render failures are logged so a half-written file does not end
// the session.
func watchLoop(ctx context.Context, n watch.Notifier, redraw func() error) error {
	defer n.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-n.Changes():
			if !ok {
				return nil
			}
			if err := redraw(); err != nil {
				logging.Warn("failed to render layout", "error", err)
			}
		case err, ok := <-n.Errors():
			if !ok {
				return nil
			}
			logging.Warn("watch error", "error", err)
		}
	}
}

func saveAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("usage: cellgrid save NAME FILE")
	}
	name, path := c.Args().Get(0), c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	source, lines, err := renderFile(cfg, path)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveLayout(store.Layout{Name: name, Source: source, Rendered: lines}); err != nil {
		return err
	}
	logging.Info("layout saved", "layout", name, "rows", len(lines))
	return nil
}

func showAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return errors.New("layout name is required")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	l, err := db.GetLayout(name)
	if err != nil {
		return err
	}
	if c.Bool("source") {
		_, err := io.WriteString(c.App.Writer, l.Source)
		return err
	}
	return printLines(c.App.Writer, l.Rendered)
}

func listAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	layouts, err := db.ListLayouts(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		_, err := fmt.Fprintln(c.App.Writer, "no saved layouts")
		return err
	}
	return cells.NewTable(listTable(layouts)).Print(c.App.Writer)
}

// listTable lays out one row per stored layout under a heavy header
func listTable(layouts []store.Layout) cells.Cell {
	header := layout.Properties{Border: border.Heavy, Padding: 1}
	body := layout.Properties{Border: border.Light, Padding: 1}
	number := body
	number.Alignment = layout.AlignRight

	rows := []cells.Cell{cells.NewRow(layout.Properties{},
		cells.NewText("NAME", header),
		cells.NewText("UPDATED", header),
		cells.NewText("ROWS", header),
	)}
	for _, l := range layouts {
		rows = append(rows, cells.NewRow(layout.Properties{},
			cells.NewText(l.Name, body),
			cells.NewText(l.UpdatedAt.Local().Format("2006-01-02 15:04"), body),
			cells.NewText(strconv.Itoa(len(l.Rendered)), number),
		))
	}
	return cells.NewCol(layout.Properties{}, rows...)
}

func deleteAction(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return errors.New("layout name is required")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.DeleteLayout(name)
}
