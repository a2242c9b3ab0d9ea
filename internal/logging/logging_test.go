package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	xslog "golang.org/x/exp/slog"

	"github.com/young1lin/cellgrid/internal/cells"
)

func TestLevel(t *testing.T) {
	defer func() { Opts.Verbose, Opts.VeryVerbose = false, false }()

	tests := []struct {
		name        string
		verbose     bool
		veryVerbose bool
		want        slog.Level
	}{
		{"quiet", false, false, slog.LevelWarn},
		{"verbose", true, false, slog.LevelInfo},
		{"very verbose", false, true, slog.LevelDebug},
		{"both", true, true, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Opts.Verbose, Opts.VeryVerbose = tt.verbose, tt.veryVerbose
			if got := Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

// captureStdout collects what fn prints; hlog writes its records to stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(out)
}

func TestSetupRaisesNamedLayouts(t *testing.T) {
	prev := slog.Default()
	defer func() {
		slog.SetDefault(prev)
		cells.SetLogger(nil)
		Opts.LogLayouts = cli.StringSlice{}
	}()

	Opts.LogLayouts = *cli.NewStringSlice("usage")
	out := captureStdout(t, func() {
		Setup()
		ForLayout("usage")
		cells.Logger().Debug("usage detail")
		ForLayout("other")
		cells.Logger().Debug("other detail")
		cells.Logger().Warn("other warning")
		slog.Debug("plain detail")
	})

	for _, s := range []string{"usage detail", "other warning"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in output, got:\n%s", s, out)
		}
	}
	for _, s := range []string{"other detail", "plain detail"} {
		if strings.Contains(out, s) {
			t.Errorf("expected %q to be filtered, got:\n%s", s, out)
		}
	}
}

// recordingHandler keeps every record and attribute it is given
type recordingHandler struct {
	records *[]xslog.Record
	attrs   *[]xslog.Attr
}

func (h recordingHandler) Enabled(context.Context, xslog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r xslog.Record) error {
	*h.records = append(*h.records, r)
	return nil
}

func (h recordingHandler) WithAttrs(attrs []xslog.Attr) xslog.Handler {
	*h.attrs = append(*h.attrs, attrs...)
	return h
}

func (h recordingHandler) WithGroup(string) xslog.Handler { return h }

func TestBridgeConvertsRecords(t *testing.T) {
	var records []xslog.Record
	var attrs []xslog.Attr
	logger := slog.New(bridge{h: recordingHandler{records: &records, attrs: &attrs}})

	logger.With("layout", "usage").Info("drawn",
		"rows", 3,
		"clipped", true,
		slog.Group("grid", slog.Int("width", 12)),
	)

	if len(attrs) != 1 || !attrs[0].Equal(xslog.String("layout", "usage")) {
		t.Errorf("expected layout attribute to pass through With, got %v", attrs)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Message != "drawn" || r.Level != xslog.LevelInfo {
		t.Errorf("unexpected record %q at %v", r.Message, r.Level)
	}

	var got []xslog.Attr
	r.Attrs(func(a xslog.Attr) { got = append(got, a) })
	want := []xslog.Attr{
		xslog.Int64("rows", 3),
		xslog.Bool("clipped", true),
		xslog.Group("grid", xslog.Int64("width", 12)),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d attributes, got %v", len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("attribute %d = %v, want %v", i, got[i], want[i])
		}
	}
}
