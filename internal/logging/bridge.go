package logging

import (
	"context"
	"log/slog"

	xslog "golang.org/x/exp/slog"
)

// bridge serves log/slog records to a handler written against
// golang.org/x/exp/slog, such as hlog.
type bridge struct {
	h xslog.Handler
}

func (b bridge) Enabled(ctx context.Context, level slog.Level) bool {
	return b.h.Enabled(ctx, xslog.Level(level))
}

func (b bridge) Handle(ctx context.Context, r slog.Record) error {
	xr := xslog.NewRecord(r.Time, xslog.Level(r.Level), r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		xr.AddAttrs(convertAttr(a))
		return true
	})
	return b.h.Handle(ctx, xr)
}

func (b bridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	return bridge{h: b.h.WithAttrs(convertAttrs(attrs))}
}

func (b bridge) WithGroup(name string) slog.Handler {
	return bridge{h: b.h.WithGroup(name)}
}

func convertAttrs(attrs []slog.Attr) []xslog.Attr {
	out := make([]xslog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, convertAttr(a))
	}
	return out
}

// convertAttr keeps the value kind so attribute matching in the target
// handler compares like with like.
func convertAttr(a slog.Attr) xslog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return xslog.String(a.Key, v.String())
	case slog.KindInt64:
		return xslog.Int64(a.Key, v.Int64())
	case slog.KindUint64:
		return xslog.Uint64(a.Key, v.Uint64())
	case slog.KindFloat64:
		return xslog.Float64(a.Key, v.Float64())
	case slog.KindBool:
		return xslog.Bool(a.Key, v.Bool())
	case slog.KindDuration:
		return xslog.Duration(a.Key, v.Duration())
	case slog.KindTime:
		return xslog.Time(a.Key, v.Time())
	case slog.KindGroup:
		return xslog.Group(a.Key, convertAttrs(v.Group())...)
	default:
		return xslog.Any(a.Key, v.Any())
	}
}
