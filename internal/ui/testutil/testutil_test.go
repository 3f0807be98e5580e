package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31mab\x1b[0m"); got != 2 {
		t.Errorf("MeasureWidth() = %d, want 2", got)
	}
	if got := MeasureWidth("日本"); got != 4 {
		t.Errorf("MeasureWidth(wide) = %d, want 4", got)
	}
}

func TestFindRow(t *testing.T) {
	out := "first\nsecond\nthird"
	if got := FindRow(out, "sec"); got != 1 {
		t.Errorf("FindRow() = %d, want 1", got)
	}
	if got := FindRow(out, "missing"); got != -1 {
		t.Errorf("FindRow(missing) = %d, want -1", got)
	}
	if !ContainsLine(out, "third") || ContainsLine(out, "fourth") {
		t.Error("ContainsLine mismatch")
	}
}

func TestRow(t *testing.T) {
	out := "a\n\x1b[31mb\x1b[0m"
	if got := Row(out, 1); got != "b" {
		t.Errorf("Row(1) = %q, want b", got)
	}
	if got := Row(out, 5); got != "" {
		t.Errorf("Row(5) = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines() = %q", got)
	}
}
