// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"os"
	"path/filepath"
)

// Candidates expands pattern and keeps the matches that are regular files.
// Symlinks are followed. A malformed pattern or no match yields an empty
// slice. Order is the order filepath.Glob returns.
func Candidates(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}

	return files
}
