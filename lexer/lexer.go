package lexer

import "strings"

//go:generate stringer -type=TokenType

type TokenType uint8

const (
	_ = TokenType(iota)
	LEFT_PAREN
	RIGHT_PAREN
	// any other run of non-space characters: a literal or an identifier.
	ATOM
)

type Token struct {
	Type   TokenType
	Lexeme string
}

func (t Token) String() string { return t.Lexeme }

// padding makes sure every paren is split off as its own token, even
// when it touches an atom, e.g. "(1)" or "(f)(g)". Newlines, tabs and
// carriage returns all count as a single space.
var padding = strings.NewReplacer(
	"(", " ( ",
	")", " ) ",
	"\n", " ",
	"\t", " ",
	"\r", " ",
)

type Lexer struct {
	source string  // the complete source code
	Tokens []Token // list of tokens produced
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		Tokens: []Token{},
	}
}

// ScanTokens splits the source into tokens. There is no quoting, no
// escaping and no comment syntax, so scanning cannot fail.
func (l *Lexer) ScanTokens() {
	for _, frag := range strings.Split(padding.Replace(l.source), " ") {
		if frag == "" {
			continue
		}
		l.emit(frag)
	}
}

func (l *Lexer) emit(lexeme string) {
	typ := ATOM
	switch lexeme {
	case "(":
		typ = LEFT_PAREN
	case ")":
		typ = RIGHT_PAREN
	}
	l.Tokens = append(l.Tokens, Token{Type: typ, Lexeme: lexeme})
}

// Tokenize is a shortcut for New(source).ScanTokens().
func Tokenize(source string) []Token {
	l := New(source)
	l.ScanTokens()
	return l.Tokens
}

// Join re-joins tokens with single spaces. Tokenize(Join(ts)) == ts.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Lexeme
	}
	return strings.Join(parts, " ")
}
