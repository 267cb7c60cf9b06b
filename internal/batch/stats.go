// SPDX-License-Identifier: EPL-2.0

package batch

// Stats counts per-file outcomes of one run.
type Stats struct {
	Converted int
	Skipped   int
	Failed    int
	// Interrupted is set when the context was cancelled before every
	// candidate was handled.
	Interrupted bool
}

// Total is the number of candidates handled.
func (s Stats) Total() int {
	return s.Converted + s.Skipped + s.Failed
}
