package report

import (
	"context"
	"io"

	"github.com/schollz/progressbar/v3"

	"spdxdiff/internal/lexdiff"
)

// WarmSummary describes a cache warm-up.
type WarmSummary struct {
	Requested int
	Available int
	Missing   []string
}

// Warm fetches the text of every id through source so later runs are served
// from the cache. Progress is drawn on progress when it is a terminal.
func Warm(ctx context.Context, source lexdiff.TextSource, ids []string, progress io.Writer) (WarmSummary, error) {
	summary := WarmSummary{Requested: len(ids)}

	bar := progressbar.NewOptions(len(ids),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("fetching license texts"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(ShouldColorize(progress)),
		progressbar.OptionClearOnFinish(),
	)
	defer func() { _ = bar.Finish() }()

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if source.Get(ctx, id) == "" {
			summary.Missing = append(summary.Missing, id)
		} else {
			summary.Available++
		}
		_ = bar.Add(1)
	}
	return summary, nil
}
