// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"strings"
	"time"

	"github.com/mewkiz/pkg/osutil"

	"github.com/ik5/towav16"
	"github.com/ik5/towav16/internal/encoder"
)

// Logger is the subset of the logging package the runner needs.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// Recorder receives per-file outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	Converted(time.Duration)
	Failed(time.Duration)
	Skipped()
}

// Runner converts candidates sequentially.
type Runner struct {
	Encoder encoder.Encoder
	Log     Logger
	// Metrics is optional.
	Metrics Recorder

	// Force converts even when the output exists.
	Force bool
	// DryRun announces conversions without running the encoder.
	DryRun bool
}

// Run handles every path in order. A failed conversion is reported and the
// batch continues. Cancelling ctx stops the batch before the next file.
func (r *Runner) Run(ctx context.Context, paths []string) Stats {
	var stats Stats

	for _, in := range paths {
		if ctx.Err() != nil {
			stats.Interrupted = true
			break
		}

		r.processFile(ctx, in, &stats)
	}

	return stats
}

func (r *Runner) processFile(ctx context.Context, in string, stats *Stats) {
	out := towav16.OutputPath(in)

	// Any entry at out counts, directories included. A stat error is
	// treated as absent and the file is converted.
	if !r.Force && osutil.Exists(out) {
		r.Log.Info("Skipping %s: %s already exists", in, out)
		stats.Skipped++
		if r.Metrics != nil {
			r.Metrics.Skipped()
		}
		return
	}

	if r.DryRun {
		r.Log.Success("[DRY] Would convert %s", in)
		return
	}

	r.Log.Info("Converting %s -> %s", in, out)
	if a, ok := r.Encoder.(interface{ Args(in, out string) []string }); ok {
		r.Log.Debug("Command: %s", strings.Join(a.Args(in, out), " "))
	}

	start := time.Now()
	if err := r.Encoder.Encode(ctx, in, out); err != nil {
		r.Log.Debug("%v", err)
		r.Log.Error("Error converting %s", in)
		r.failed(stats, time.Since(start))
		return
	}

	r.Log.Success("Converted %s", in)
	stats.Converted++
	if r.Metrics != nil {
		r.Metrics.Converted(time.Since(start))
	}
}

func (r *Runner) failed(stats *Stats, d time.Duration) {
	stats.Failed++
	if r.Metrics != nil {
		r.Metrics.Failed(d)
	}
}
