package parser

import (
	"testing"
)

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5", "5"},
		{"x", "x"},
		{"-x", "(-x)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"2*x + 1", "((2 * x) + 1)"},
		{"a / b % c", "((a / b) % c)"},
		{"a - b - c", "((a - b) - c)"},
		{"min(x, 4)", "min(x, 4)"},
		{"max(x, y) + 1", "(max(x, y) + 1)"},
		{"min(a + 1, max(b, 2))", "min((a + 1), max(b, 2))"},
		{"x + 1 < 10", "((x + 1) < 10)"},
		{"x == y", "(x == y)"},
		{"x != y", "(x != y)"},
		{"x <= y", "(x <= y)"},
		{"x >= y", "(x >= y)"},
		{"-x * 2", "((-x) * 2)"},
		{"- (x + 1)", "(-(x + 1))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"1 +",
		"(1 + 2",
		"min(x)",
		"min(x, y, z)",
		"1 2",
		"x @ y",
		"* 3",
		"99999999999999999999",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}

func TestMinMaxAsPlainIdentifiers(t *testing.T) {
	// Without a call, min/max are ordinary variable names.
	expr, err := Parse("min + max")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := expr.String(); got != "(min + max)" {
		t.Errorf("got %q, want %q", got, "(min + max)")
	}
}
