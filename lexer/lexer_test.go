package lexer_test

import (
	"lisp/lexer"
	"reflect"
	"testing"
)

func lexemes(tokens []lexer.Token) []string {
	out := []string{}
	for _, tok := range tokens {
		out = append(out, tok.Lexeme)
	}
	return out
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"token", []string{"token"}},
		{"(1)", []string{"(", "1", ")"}},
		{"(1 2 3)) 1 token", []string{"(", "1", "2", "3", ")", ")", "1", "token"}},
		{"( 1 2    3) ) () ) 1 token", []string{"(", "1", "2", "3", ")", ")", "(", ")", ")", "1", "token"}},
		{"( 1 2 3\n\t\t)", []string{"(", "1", "2", "3", ")"}},
		{"(1 2 3)(1)", []string{"(", "1", "2", "3", ")", "(", "1", ")"}},
		{"(define (add x y)\r\n  (if (eq? x y) x y))", []string{
			"(", "define", "(", "add", "x", "y", ")",
			"(", "if", "(", "eq?", "x", "y", ")", "x", "y", ")", ")",
		}},
		{"#t #f -1.5e3", []string{"#t", "#f", "-1.5e3"}},
	}
	for i, test := range tests {
		got := lexemes(lexer.Tokenize(test.input))
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("tests[%d] (%q) failed", i, test.input)
			t.Errorf("expected=%q, got=%q", test.expected, got)
		}
	}
}

func TestLexerTokenTypes(t *testing.T) {
	tokens := lexer.Tokenize("(f x)")
	expected := []lexer.TokenType{lexer.LEFT_PAREN, lexer.ATOM, lexer.ATOM, lexer.RIGHT_PAREN}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got=%d", len(expected), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("tokens[%d]: expected=%s, got=%s", i, expected[i], tok.Type)
		}
	}
}

func TestLexerIdempotent(t *testing.T) {
	inputs := []string{
		"(define x (if #t 1))",
		"((a)(b c))   d\n(e\tf)",
		"(1 2 3)) 1",
		"",
	}
	for i, input := range inputs {
		once := lexer.Tokenize(input)
		twice := lexer.Tokenize(lexer.Join(once))
		if !reflect.DeepEqual(lexemes(once), lexemes(twice)) {
			t.Errorf("tests[%d] (%q) failed", i, input)
			t.Errorf("expected=%q, got=%q", lexemes(once), lexemes(twice))
		}
	}
}
