package logbook

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	header := []string{"Time", "Task", "Duration"}
	rows := [][]string{
		{"9:00-10:00", "設計", "1:00"},
		{"10:00-22:15", "QA", "12:15"},
	}

	want := []string{
		"| Time        | Task | Duration |",
		"| ----------- | ---- | -------: |",
		"| 9:00-10:00  | 設計 |     1:00 |",
		"| 10:00-22:15 | QA   |    12:15 |",
	}
	if diff := cmp.Diff(want, renderTable(header, rows, 2)); diff != "" {
		t.Fatalf("renderTable mismatch (-want +got):\n%s", diff)
	}
}

func TestSeparatorRowMinimumWidth(t *testing.T) {
	if got, want := separatorRow([]int{1, 2, 1}, 2), "| --- | --- | --: |"; got != want {
		t.Fatalf("separatorRow() = %q, want %q", got, want)
	}
}

func TestTotalsRow(t *testing.T) {
	tests := []struct {
		width         int
		date, weekday string
		want          []string
	}{
		{
			width: 4, date: "2024-01-15", weekday: "Monday",
			want: []string{"**2024-01-15**", "**Monday**", "**Total working time**", "**1:30**"},
		},
		{
			width: 5,
			want:  []string{"** **", "** **", "**Total working time**", "", "**1:30**"},
		},
		{
			width: 3, date: "2024-01-15", weekday: "Monday",
			want: []string{"**2024-01-15**", "**Monday**", "**1:30**"},
		},
		{
			width: 2, date: "2024-13-01",
			want: []string{"**2024-13-01**", "**1:30**"},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, totalsRow(tt.width, tt.date, tt.weekday, 90)); diff != "" {
			t.Fatalf("totalsRow(%d) mismatch (-want +got):\n%s", tt.width, diff)
		}
	}
}
