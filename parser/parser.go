package parser

import "lisp/lexer"

type Parser struct {
	tokens []lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is a shortcut for New(tokens).Parse().
func Parse(tokens []lexer.Token) ([]Node, error) {
	return New(tokens).Parse()
}

// =====
// utils
// =====

// closingParen returns the index of the ')' matching the '(' at start,
// or -1 if there is none. Nested groups inside the span are skipped
// over by the depth counter; the first time it returns to zero is the
// partner.
func (p *Parser) closingParen(start, end int) int {
	depth := 0
	for i := start; i < end; i++ {
		switch p.tokens[i].Type {
		case lexer.LEFT_PAREN:
			depth++
		case lexer.RIGHT_PAREN:
			depth--
		}
		if depth == 0 {
			return i
		}
	}
	return -1
}

// ===========
// entry point
// ===========

// program → expr*
// expr    → ATOM | "(" expr* ")"

func (p *Parser) Parse() ([]Node, error) {
	return p.sequence(0, len(p.tokens))
}

// sequence parses tokens[start:end] into a list of sibling nodes.
func (p *Parser) sequence(start, end int) ([]Node, error) {
	nodes := []Node{}
	for curr := start; curr < end; {
		tok := p.tokens[curr]
		switch tok.Type {
		case lexer.RIGHT_PAREN:
			return nil, p.error(curr, false, "unexpected ')'")
		case lexer.LEFT_PAREN:
			closing := p.closingParen(curr, end)
			if closing < 0 {
				return nil, p.error(curr, true, "unterminated '('")
			}
			children, err := p.sequence(curr+1, closing)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, newGroup(children))
			curr = closing + 1
		default:
			nodes = append(nodes, newLeaf(tok.Lexeme))
			curr++
		}
	}
	return nodes, nil
}
