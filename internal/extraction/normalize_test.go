package extraction_test

import (
	"testing"

	"github.com/talentsift/sift/internal/extraction"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses newline runs",
			input: "line one\n\n\nline two",
			want:  "line one line two",
		},
		{
			name:  "collapses whitespace runs",
			input: "too   many\t\tspaces",
			want:  "too many spaces",
		},
		{
			name:  "trims leading and trailing whitespace",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "mixed newlines tabs and spaces",
			input: "\n\nJane Doe\n\nSenior   Engineer\t10 years\n",
			want:  "Jane Doe Senior Engineer 10 years",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only input",
			input: " \n\t \n ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extraction.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// normalization is idempotent
			if again := extraction.Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}
