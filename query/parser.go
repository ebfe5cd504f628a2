package query

import "fmt"

// Parser consumes a token stream and builds the unresolved query AST
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// syntaxErr builds an ErrSyntax carrying the expected token and the
// position of the token actually found.
func (p *Parser) syntaxErr(expected string) error {
	tok := p.current()
	if tok.Type == TokenError {
		return fmt.Errorf("%w: %s at offset %d", ErrSyntax, tok.Value, tok.Pos)
	}
	return fmt.Errorf("%w: expected %s at offset %d, got %s", ErrSyntax, expected, tok.Pos, describeToken(tok))
}

func describeToken(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenString:
		return fmt.Sprintf("literal %q", tok.Value)
	default:
		return fmt.Sprintf("%q", tok.Value)
	}
}

// Parse parses a query string into an unresolved Query.
//
// The grammar is:
//
//	PROJECT col, col, ... [FILTER expr op expr, ...]
//
// where an expression is a bare alphabetic column name or a double-quoted
// alphanumeric literal, and op is =, > or >=. The keywords are
// case-sensitive and reserved. The projection list needs at least one
// entry; the FILTER clause is wholly optional; anything left over after the
// query is a syntax error.
//
// Parse is pure and needs no schema, so it can be tested without a table.
func Parse(input string) (*Query, error) {
	p := NewParser(Tokenize(input))
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, p.syntaxErr("end of input")
	}
	return q, nil
}

// parseQuery parses: PROJECT ColumnList [FILTER FilterList]
func (p *Parser) parseQuery() (*Query, error) {
	if p.current().Type != TokenProject {
		return nil, p.syntaxErr(`keyword "PROJECT"`)
	}
	p.advance()

	projections, err := p.parseColumnList()
	if err != nil {
		return nil, err
	}

	q := &Query{Projections: projections}
	if p.current().Type == TokenEOF {
		return q, nil
	}
	if p.current().Type != TokenFilter {
		return nil, p.syntaxErr(`keyword "FILTER" or end of input`)
	}
	p.advance()

	q.Filters, err = p.parseFilterList()
	if err != nil {
		return nil, err
	}
	return q, nil
}

// parseColumnList parses one or more comma-separated projection names.
// Projection names may contain digits, unlike filter operand identifiers.
func (p *Parser) parseColumnList() ([]string, error) {
	var cols []string
	for {
		tok := p.current()
		if tok.Type != TokenIdent {
			return nil, p.syntaxErr("column name")
		}
		cols = append(cols, tok.Value)
		p.advance()

		if p.current().Type != TokenComma {
			return cols, nil
		}
		p.advance()
	}
}

// parseFilterList parses one or more comma-separated filters
func (p *Parser) parseFilterList() ([]Filter, error) {
	var filters []Filter
	for {
		f, err := p.parseFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)

		if p.current().Type != TokenComma {
			return filters, nil
		}
		p.advance()
	}
}

// parseFilter parses: Expr Operator Expr
func (p *Parser) parseFilter() (Filter, error) {
	left, err := p.parseExpr()
	if err != nil {
		return Filter{}, err
	}

	var op Comparison
	switch p.current().Type {
	case TokenEqual:
		op = CompareEqual
	case TokenGreaterEqual:
		op = CompareGreaterOrEqual
	case TokenGreater:
		op = CompareGreater
	default:
		return Filter{}, p.syntaxErr(`operator "=", ">" or ">="`)
	}
	p.advance()

	right, err := p.parseExpr()
	if err != nil {
		return Filter{}, err
	}
	return Filter{Left: left, Op: op, Right: right}, nil
}

// parseExpr parses one filter operand: a quoted literal or a column
// identifier. Identifiers in filters must be purely alphabetic.
func (p *Parser) parseExpr() (Expr, error) {
	tok := p.current()
	switch tok.Type {
	case TokenString:
		p.advance()
		return Literal{Value: tok.Value}, nil
	case TokenIdent:
		if !isAlphabetic(tok.Value) {
			return nil, p.syntaxErr("column name or quoted literal")
		}
		p.advance()
		return ColumnRef{Name: tok.Value}, nil
	default:
		return nil, p.syntaxErr("column name or quoted literal")
	}
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return s != ""
}
