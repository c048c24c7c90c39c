// Package tlog is the type algebra's section-filtered debug tracing:
// every call site tags its record with a "section" attribute (e.g.
// "subtype", "supertypes", "functional"), and only sections named in
// enabledSections are actually written, so a caller can turn on
// tracing for one operation at a time without drowning in the rest.
package tlog

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
)

var enabledSections = []string{}

// EnableSections replaces the set of sections whose records are
// written, e.g. EnableSections("subtype", "supertypes").
func EnableSections(sections ...string) {
	enabledSections = sections
}

var handlerOpts = &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// Logger is the package-wide section-filtered logger, safe for
// concurrent use by multiple readers (spec.md §5's "shared resources").
var Logger = slog.New(&filteringHandler{underlying: slog.NewTextHandler(os.Stderr, handlerOpts)})

// Section returns a logger pre-tagged with the given section name, for
// a single algebra operation to log under (e.g. tlog.Section("subtype")).
func Section(name string) *slog.Logger {
	return Logger.With("section", name)
}

var _ slog.Handler = &filteringHandler{}

type filteringHandler struct {
	underlying slog.Handler
	section    string
}

func (f *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.underlying.Enabled(ctx, level)
}

func (f *filteringHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return f.underlying.Handle(ctx, record)
	}
	section := f.section
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == "section" {
			section = attr.Value.String()
			return false
		}
		return true
	})
	if section == "" || !slices.ContainsFunc(enabledSections, func(s string) bool {
		return strings.HasPrefix(section, s)
	}) {
		return nil
	}
	return f.underlying.Handle(ctx, record)
}

func (f *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	section := f.section
	var rest []slog.Attr
	for _, attr := range attrs {
		if attr.Key == "section" {
			section = attr.Value.String()
			continue
		}
		rest = append(rest, attr)
	}
	return &filteringHandler{underlying: f.underlying.WithAttrs(rest), section: section}
}

func (f *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{underlying: f.underlying.WithGroup(name), section: f.section}
}
