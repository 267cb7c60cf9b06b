// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func counterValue(t *testing.T, m *Metrics, result string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		if mf.GetName() != "towav16_files_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "result" && lp.GetValue() == result {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}

	t.Fatalf("series result=%q not found", result)
	return 0
}

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.Converted(300 * time.Millisecond)
	m.Converted(time.Second)
	m.Skipped()
	m.Failed(50 * time.Millisecond)

	tests := []struct {
		result string
		want   float64
	}{
		{ResultConverted, 2},
		{ResultSkipped, 1},
		{ResultFailed, 1},
	}
	for _, tt := range tests {
		if got := counterValue(t, m, tt.result); got != tt.want {
			t.Errorf("files_total{result=%q} = %v, want %v", tt.result, got, tt.want)
		}
	}
}

func TestMetrics_ZeroSeriesExported(t *testing.T) {
	t.Parallel()

	m := New()
	for _, r := range []string{ResultConverted, ResultSkipped, ResultFailed} {
		if got := counterValue(t, m, r); got != 0 {
			t.Errorf("files_total{result=%q} = %v, want 0", r, got)
		}
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()

	m := New()
	m.Converted(2 * time.Second)
	m.Finish(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "towav16.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`towav16_files_total{result="converted"} 1`,
		`towav16_files_total{result="failed"} 0`,
		"towav16_conversion_duration_seconds_count 1",
		"towav16_last_run_timestamp_seconds 1.7e+09",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestMetrics_WriteTextfileBadDir(t *testing.T) {
	t.Parallel()

	m := New()
	if err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")); err == nil {
		t.Error("WriteTextfile() should fail for a missing directory")
	}
}
