package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"spdxdiff/internal/grouping"
	"spdxdiff/internal/lexdiff"
	"spdxdiff/internal/logging"
	"spdxdiff/internal/spdx"
)

// Options controls report selection and rendering.
type Options struct {
	// Include restricts the report to groups matching these glob patterns.
	Include []string
	// Color enables colored headers when writing to a terminal.
	Color bool
}

// Driver orchestrates grouping, diffing, and printing.
type Driver struct {
	differ *lexdiff.Differ
	logger *slog.Logger
	opts   Options
}

// NewDriver creates a Driver reading license texts from source.
func NewDriver(source lexdiff.TextSource, logger *slog.Logger, opts Options) *Driver {
	return &Driver{
		differ: lexdiff.NewDiffer(source, logger),
		logger: logging.NewComponentLogger(logger, "report"),
		opts:   opts,
	}
}

// Groups returns the registry's prefix groups after applying the include
// filter.
func (d *Driver) Groups(registry *spdx.Registry) ([]grouping.Group, error) {
	groups := grouping.ByPrefix(registry.IDs())
	filtered, err := grouping.Filter(groups, d.opts.Include)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("grouped licenses",
		logging.Int("licenses", registry.Len()),
		logging.Int("groups", len(groups)),
		logging.Int("selected", len(filtered)))
	return filtered, nil
}

// Diff compares the texts of an arbitrary set of identifiers.
func (d *Driver) Diff(ctx context.Context, members []string) lexdiff.Result {
	return d.differ.Diff(ctx, members)
}

// Run writes the full report for registry to w.
func (d *Driver) Run(ctx context.Context, registry *spdx.Registry, w io.Writer) error {
	fmt.Fprintln(w, "Grouping licenses by prefix...")
	groups, err := d.Groups(registry)
	if err != nil {
		return err
	}

	header := HeaderColor(w, d.opts.Color)
	fmt.Fprintln(w, "Grouped licenses and identified differences:")
	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		result := d.differ.Diff(ctx, group.Members)
		if len(result.Missing) > 0 {
			logging.WarnWithContext(d.logger, "license texts unavailable", "license_text_missing",
				logging.String(logging.FieldGroup, group.Name),
				logging.String("missing", strings.Join(result.Missing, ",")),
				logging.String(logging.FieldErrorHint, "check network access or the text endpoint"),
				logging.String(logging.FieldImpact, "no common words reported for this group"))
		}
		WriteGroup(w, header, group.Name, group.Members, result)
	}
	return nil
}

// WriteGroup renders one group block. header may be nil for plain output.
func WriteGroup(w io.Writer, header *color.Color, name string, members []string, result lexdiff.Result) {
	title := "Group: " + name
	if header != nil {
		title = header.Sprint(title)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  Common words across all licenses: %s\n", strings.Join(result.Common, ", "))
	if len(result.Missing) > 0 {
		fmt.Fprintf(w, "  Unavailable texts: %s\n", strings.Join(result.Missing, ", "))
	}
	for _, id := range members {
		fmt.Fprintf(w, "  Unique words for %s: %s\n", id, strings.Join(result.Unique[id], ", "))
	}
}

// HeaderColor returns the group header style for w, or nil when w should
// stay plain.
func HeaderColor(w io.Writer, enabled bool) *color.Color {
	if !enabled || !ShouldColorize(w) {
		return nil
	}
	header := color.New(color.FgCyan, color.Bold)
	header.EnableColor()
	return header
}

// ShouldColorize reports whether w is a terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
