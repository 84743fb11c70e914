package logbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsSeparator(t *testing.T) {
	tests := map[string]bool{
		"|---|---|":             true,
		"| :--- | ---: |":       true,
		"  |:-:|":               true,
		"|---|":                 true,
		"| Time | Task |":       false,
		"|:::|":                 false,
		"| | |":                 false,
		"---|---":               false,
		"| --- | -x- |":         false,
		"| ---\t| --- |":        false,
		"| **a** | ** ** |":     false,
		"| ---------- | ---- |": true,
	}
	for line, want := range tests {
		if got := isSeparator(line); got != want {
			t.Fatalf("isSeparator(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestIsFence(t *testing.T) {
	tests := map[string]bool{
		"```":      true,
		"```go":    true,
		"   ```":   true,
		"`inline`": false,
		"text ```": false,
		"~~~":      false,
	}
	for line, want := range tests {
		if got := isFence(line); got != want {
			t.Fatalf("isFence(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestIsTaskTotalsTitle(t *testing.T) {
	tests := map[string]bool{
		"## Task Totals":     true,
		"# task totals":      true,
		"###   TASK TOTALS ": true,
		"Task Totals":        false,
		"## Task Totals 2":   false,
		"## Totals":          false,
	}
	for line, want := range tests {
		if got := isTaskTotalsTitle(line); got != want {
			t.Fatalf("isTaskTotalsTitle(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestSplitRow(t *testing.T) {
	tests := map[string][]string{
		"| a | b |":       {"a", "b"},
		"  |a|  b  |c|  ": {"a", "b", "c"},
		"| a | |":         {"a", ""},
		"| only":          {"only"},
		"||":              {""},
	}
	for line, want := range tests {
		if diff := cmp.Diff(want, splitRow(line)); diff != "" {
			t.Fatalf("splitRow(%q) mismatch (-want +got):\n%s", line, diff)
		}
	}
}

func TestIsTotalsRow(t *testing.T) {
	tests := []struct {
		cells []string
		width int
		want  bool
	}{
		{cells: []string{"**2024-01-01**", "**Monday**", "**Total working time**", "**1:00**"}, width: 3, want: true},
		{cells: []string{"** **", "** **", "total WORKING time", ""}, width: 5, want: true},
		{cells: []string{"**2024-01-01**", "**Monday**", "**1:00**"}, width: 2, want: true},
		{cells: []string{"**2024-01-01**", "**1:00**"}, width: 1, want: true},
		{cells: []string{"9:00-10:00", "Build", "notes", "1:00"}, width: 3, want: false},
		{cells: []string{"**a**", "**b**", "**c**", "**d**"}, width: 3, want: false},
		{cells: []string{"**a**", "b"}, width: 1, want: false},
		// Short bold rows of wide tables are data.
		{cells: []string{"**bold**", "**x**"}, width: 4, want: false},
		// A bold row no wider than the header is data too.
		{cells: []string{"**9:00-10:00**", "**Build**"}, width: 2, want: false},
	}
	for _, tt := range tests {
		if got := isTotalsRow(tt.cells, tt.width); got != tt.want {
			t.Fatalf("isTotalsRow(%q, %d) = %v, want %v", tt.cells, tt.width, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	lines, trailing := splitLines("a\r\nb\n")
	if diff := cmp.Diff([]string{"a", "b"}, lines); diff != "" {
		t.Fatalf("splitLines mismatch (-want +got):\n%s", diff)
	}
	if !trailing {
		t.Fatalf("trailing newline not reported")
	}
	if got := joinLines(lines, trailing); got != "a\nb\n" {
		t.Fatalf("joinLines() = %q, want %q", got, "a\nb\n")
	}

	lines, trailing = splitLines("a")
	if len(lines) != 1 || trailing {
		t.Fatalf("splitLines(%q) = %q, %v", "a", lines, trailing)
	}
}
