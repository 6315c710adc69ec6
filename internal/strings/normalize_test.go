package strings

import "testing"

func TestNormalizeLower(t *testing.T) {
	if got := NormalizeLower("Buy MILK"); got != "buy milk" {
		t.Errorf("expected %q, got %q", "buy milk", got)
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  Study FOR Exam "); got != "study for exam" {
		t.Errorf("expected %q, got %q", "study for exam", got)
	}
	if got := NormalizeLowerTrimSpace(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "crlf", input: "a\r\nb", want: "a\nb"},
		{name: "cr", input: "a\rb", want: "a\nb"},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeNewlines(tc.input); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("notes\r\n\n"); got != "notes" {
		t.Errorf("expected %q, got %q", "notes", got)
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t\n") {
		t.Error("expected blank inputs to report true")
	}
	if IsBlank(" x ") {
		t.Error("expected non-blank input to report false")
	}
}
