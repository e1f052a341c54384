package formatting_test

import (
	"testing"

	"github.com/talentsift/sift/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{name: "zero", n: 0, precision: 0, want: "0 B"},
		{name: "bytes", n: 512, precision: 0, want: "512 B"},
		{name: "kilobytes", n: 2048, precision: 0, want: "2 KB"},
		{name: "megabytes with precision", n: 26214400, precision: 1, want: "25.0 MB"},
		{name: "gigabytes", n: 1073741824, precision: 2, want: "1.00 GB"},
		{name: "negative precision clamped", n: 1024, precision: -3, want: "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "bare number is bytes", input: "1024", want: 1024},
		{name: "megabytes", input: "25MB", want: 26214400},
		{name: "with space", input: "25 MB", want: 26214400},
		{name: "lowercase unit", input: "2kb", want: 2048},
		{name: "fractional", input: "1.5KB", want: 1536},
		{name: "gigabytes", input: "1GB", want: 1073741824},
		{name: "surrounding whitespace", input: "  10MB  ", want: 10485760},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if err != nil {
				t.Fatalf("ParseBytes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBytesFailure(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unknown unit", input: "10XB"},
		{name: "not a number", input: "lots"},
		{name: "negative", input: "-5MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := formatting.ParseBytes(tt.input); err == nil {
				t.Errorf("ParseBytes(%q) should fail", tt.input)
			}
		})
	}
}
