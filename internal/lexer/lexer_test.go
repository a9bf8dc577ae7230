package lexer

import (
	"testing"

	"github.com/funvibe/symshape/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `2*x + 1 <= max(y_1, 10) % 3 != -4 / (z)`

	tests := []struct {
		wantType   token.TokenType
		wantLexeme string
	}{
		{token.INT, "2"},
		{token.ASTERISK, "*"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.INT, "1"},
		{token.LE, "<="},
		{token.IDENT, "max"},
		{token.LPAREN, "("},
		{token.IDENT, "y_1"},
		{token.COMMA, ","},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.PERCENT, "%"},
		{token.INT, "3"},
		{token.NOT_EQ, "!="},
		{token.MINUS, "-"},
		{token.INT, "4"},
		{token.SLASH, "/"},
		{token.LPAREN, "("},
		{token.IDENT, "z"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("tests[%d] - wrong type. got %q, want %q", i, tok.Type, tt.wantType)
		}
		if tok.Lexeme != tt.wantLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. got %q, want %q", i, tok.Lexeme, tt.wantLexeme)
		}
	}
}

func TestComparisonOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"==", token.EQ},
		{"!=", token.NOT_EQ},
		{"<", token.LT},
		{"<=", token.LE},
		{">", token.GT},
		{">=", token.GE},
	}
	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != tt.want {
			t.Errorf("lexing %q: got %q, want %q", tt.input, tok.Type, tt.want)
		}
	}
}

func TestIllegalTokens(t *testing.T) {
	for _, input := range []string{"=", "!", "@"} {
		tok := New(input).NextToken()
		if tok.Type != token.ILLEGAL {
			t.Errorf("lexing %q: got %q, want ILLEGAL", input, tok.Type)
		}
	}
}

func TestLineColumnTracking(t *testing.T) {
	l := New("x +\ny")
	l.NextToken() // x
	l.NextToken() // +
	tok := l.NextToken()
	if tok.Line != 2 {
		t.Errorf("token %q on line %d, want 2", tok.Lexeme, tok.Line)
	}
}
