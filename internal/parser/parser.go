// Package parser implements a recursive-descent parser for JSONPath:
// path := '$' steps; step := '.' childKey | '.' '*' | '.' '.' descendant |
// '[' bracket ']' | ε. A Parser holds a Lexer with current/peek tokens and
// feeds them through parseExpr/parseOr/parseAnd/parseCmp for the filter
// sub-grammar.
package parser

import (
	"strconv"

	"github.com/474420502/xjsonpath/internal/ast"
	"github.com/474420502/xjsonpath/internal/token"
	"github.com/474420502/xjsonpath/internal/xerr"
)

type Parser struct {
	lx *token.Lexer
}

// Parse compiles a JSONPath string into its path-expression tree.
func Parse(path string) (*ast.Node, error) {
	if path == "" {
		return nil, xerr.Empty()
	}
	p := &Parser{lx: token.New(path)}

	root, err := p.parsePath()
	if err != nil {
		return nil, err
	}

	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.EOF {
		return nil, xerr.Syntax(tok.Start, "unexpected trailing token %v", tok.Kind)
	}
	return root, nil
}

func (p *Parser) parsePath() (*ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Absolute {
		return nil, xerr.Syntax(tok.Start, "path must start with '$'")
	}
	root := &ast.Node{Kind: ast.KAbsolute}
	if err := p.parseSteps(root); err != nil {
		return nil, err
	}
	return root, nil
}

// parseSteps appends the step chain that follows head, mutating head.Next
// (and the chain after it) in place.
func (p *Parser) parseSteps(head *ast.Node) error {
	tail := head
	for {
		tok, err := p.peekSignificant()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case token.Dot:
			if _, err := p.next(); err != nil {
				return err
			}
			tok2, err := p.peekSignificant()
			if err != nil {
				return err
			}
			if tok2.Kind == token.Dot {
				if _, err := p.next(); err != nil {
					return err
				}
				desc := &ast.Node{Kind: ast.KDescendant}
				tail.Next = desc
				target, err := p.parseStepTarget()
				if err != nil {
					return err
				}
				desc.Next = target
				tail = target
				continue
			}
			target, err := p.parseStepTarget()
			if err != nil {
				return err
			}
			tail.Next = target
			tail = target
			continue
		case token.OpenArray:
			target, err := p.parseBracket()
			if err != nil {
				return err
			}
			tail.Next = target
			tail = target
			continue
		default:
			return nil
		}
	}
}

// parseStepTarget parses the thing immediately after a single '.' (or the
// second '.' of a descendant step): a bareword key, '*', or a bracket.
func (p *Parser) parseStepTarget() (*ast.Node, error) {
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Asterisk:
		p.next()
		return &ast.Node{Kind: ast.KAll}, nil
	case token.OpenArray:
		return p.parseBracket()
	case token.Key:
		p.next()
		return &ast.Node{Kind: ast.KChild, Keys: []string{tok.Literal}}, nil
	default:
		return nil, xerr.Syntax(tok.Start, "expected a key, '*' or '[' after '.'")
	}
}

// parseBracket parses '[' bracket ']': '*' | number-union | slice |
// string-list | '?(' expr ')' | number.
func (p *Parser) parseBracket() (*ast.Node, error) {
	if _, err := p.expect(token.OpenArray); err != nil {
		return nil, err
	}
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Asterisk:
		p.next()
		if _, err := p.expect(token.CloseArray); err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KAll}, nil
	case token.Question:
		p.next()
		if _, err := p.expect(token.OpenParen); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseArray); err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KFilter, Filter: expr}, nil
	case token.DoubleQuoted, token.SingleQuoted:
		keys := []string{tok.Literal}
		p.next()
		for {
			tok2, err := p.peekSignificant()
			if err != nil {
				return nil, err
			}
			if tok2.Kind != token.Comma {
				break
			}
			p.next()
			tok3, err := p.expectQuoted()
			if err != nil {
				return nil, err
			}
			keys = append(keys, tok3.Literal)
		}
		if _, err := p.expect(token.CloseArray); err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KChild, Keys: keys}, nil
	default:
		return p.parseNumericBracket()
	}
}

func (p *Parser) parseNumericBracket() (*ast.Node, error) {
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}

	if tok.Kind == token.Split {
		p.next()
		node, err := p.parseSliceTail(nil)
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	if tok.Kind != token.Key {
		return nil, xerr.Syntax(tok.Start, "expected an index, slice or ']'")
	}
	n, ok := parseIntLiteral(tok.Literal)
	if !ok {
		return nil, xerr.Syntax(tok.Start, "expected an integer, found %q", tok.Literal)
	}
	p.next()

	tok2, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	switch tok2.Kind {
	case token.CloseArray:
		p.next()
		return &ast.Node{Kind: ast.KIndexUnion, Indices: []int{n}}, nil
	case token.Comma:
		indices := []int{n}
		for {
			tok3, err := p.peekSignificant()
			if err != nil {
				return nil, err
			}
			if tok3.Kind != token.Comma {
				break
			}
			p.next()
			tok4, err := p.expect(token.Key)
			if err != nil {
				return nil, err
			}
			v, ok := parseIntLiteral(tok4.Literal)
			if !ok {
				return nil, xerr.Syntax(tok4.Start, "expected an integer, found %q", tok4.Literal)
			}
			indices = append(indices, v)
		}
		if _, err := p.expect(token.CloseArray); err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KIndexUnion, Indices: indices}, nil
	case token.Split:
		p.next()
		return p.parseSliceTail(&n)
	default:
		return nil, xerr.Syntax(tok2.Start, "expected ',', ':' or ']' after index")
	}
}

// parseSliceTail parses the remainder of a slice after the leading ':' has
// already been consumed: end? (':' step)? ']'.
func (p *Parser) parseSliceTail(start *int) (*ast.Node, error) {
	var end *int
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Key {
		n, ok := parseIntLiteral(tok.Literal)
		if !ok {
			return nil, xerr.Syntax(tok.Start, "expected an integer slice bound, found %q", tok.Literal)
		}
		end = &n
		p.next()
	}

	var step *int
	tok2, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	if tok2.Kind == token.Split {
		p.next()
		tok3, err := p.expect(token.Key)
		if err != nil {
			return nil, err
		}
		n, ok := parseIntLiteral(tok3.Literal)
		if !ok {
			return nil, xerr.Syntax(tok3.Start, "expected an integer slice step, found %q", tok3.Literal)
		}
		if n <= 0 {
			return nil, xerr.Syntax(tok3.Start, "slice step must be positive, found %d", n)
		}
		step = &n
	}

	if _, err := p.expect(token.CloseArray); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KSlice, Start: start, End: end, Step: step}, nil
}

func parseIntLiteral(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i >= len(s) {
		return 0, false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// --- filter expressions: orExpr / andExpr / cmpExpr / term ---

func (p *Parser) parseExpr() (*ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peekSignificant()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.Or {
			return left, nil
		}
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Node{Kind: ast.KBinOp, Op: ast.OpOr, Left: left, Right: right}
	}
}

func (p *Parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseCmp()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peekSignificant()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.And {
			return left, nil
		}
		p.next()
		right, err := p.parseCmp()
		if err != nil {
			return nil, err
		}
		left = &ast.Node{Kind: ast.KBinOp, Op: ast.OpAnd, Left: left, Right: right}
	}
}

func (p *Parser) parseCmp() (*ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	if op, ok := cmpOp(tok.Kind); ok {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KBinOp, Op: op, Left: left, Right: right}, nil
	}
	if tok.Kind == token.Key && tok.Literal == "in" {
		p.next()
		if _, err := p.expect(token.OpenArray); err != nil {
			return nil, err
		}
		var list []*ast.Node
		for {
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			list = append(list, lit)
			tok2, err := p.peekSignificant()
			if err != nil {
				return nil, err
			}
			if tok2.Kind != token.Comma {
				break
			}
			p.next()
		}
		if _, err := p.expect(token.CloseArray); err != nil {
			return nil, err
		}
		return &ast.Node{Kind: ast.KIn, Left: left, List: list}, nil
	}
	return left, nil
}

func cmpOp(k token.Kind) (ast.Op, bool) {
	switch k {
	case token.Equal:
		return ast.OpEq, true
	case token.NotEqual:
		return ast.OpNe, true
	case token.Less:
		return ast.OpLt, true
	case token.LessEq:
		return ast.OpLe, true
	case token.Greater:
		return ast.OpGt, true
	case token.GreaterEq:
		return ast.OpGe, true
	default:
		return 0, false
	}
}

func (p *Parser) parseTerm() (*ast.Node, error) {
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Relative:
		p.next()
		root := &ast.Node{Kind: ast.KRelative}
		if err := p.parseSteps(root); err != nil {
			return nil, err
		}
		return root, nil
	case token.Absolute:
		p.next()
		root := &ast.Node{Kind: ast.KAbsolute}
		if err := p.parseSteps(root); err != nil {
			return nil, err
		}
		return root, nil
	case token.OpenParen:
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.CloseParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return p.parseLiteral()
	}
}

func (p *Parser) parseLiteral() (*ast.Node, error) {
	tok, err := p.peekSignificant()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.DoubleQuoted, token.SingleQuoted:
		p.next()
		return &ast.Node{Kind: ast.KString, Str: tok.Literal}, nil
	case token.Key:
		if tok.Literal == "true" {
			p.next()
			return &ast.Node{Kind: ast.KBool, Bool: true}, nil
		}
		if tok.Literal == "false" {
			p.next()
			return &ast.Node{Kind: ast.KBool, Bool: false}, nil
		}
		p.next()
		return p.parseNumberLiteral(tok)
	default:
		return nil, xerr.Syntax(tok.Start, "expected a literal, '$' or '@'")
	}
}

// parseNumberLiteral handles the integer-part Key token already consumed,
// stitching on a fractional part if a contiguous '.' digits follows with no
// intervening whitespace (so "1 .5" is two tokens, not one float).
func (p *Parser) parseNumberLiteral(intPart token.Token) (*ast.Node, error) {
	numStr := intPart.Literal

	dotTok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if dotTok.Kind == token.Dot && dotTok.Start == intPart.End {
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}
		fracTok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if fracTok.Kind == token.Key && fracTok.Start == dotTok.End && isAllDigits(fracTok.Literal) {
			if _, err := p.lx.Next(); err != nil {
				return nil, err
			}
			numStr = numStr + "." + fracTok.Literal
		} else {
			return nil, xerr.Syntax(dotTok.Start, "invalid number literal")
		}
	}

	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, xerr.Syntax(intPart.Start, "invalid number literal %q", intPart.Literal)
	}
	return &ast.Node{Kind: ast.KNumber, Num: f}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// --- lexer plumbing ---

func (p *Parser) peekSignificant() (token.Token, error) {
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return token.Token{}, err
		}
		if tok.Kind != token.Whitespace {
			return tok, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return token.Token{}, err
		}
	}
}

func (p *Parser) next() (token.Token, error) {
	if _, err := p.peekSignificant(); err != nil {
		return token.Token{}, err
	}
	return p.lx.Next()
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != k {
		return tok, xerr.Syntax(tok.Start, "expected %v, found %v", k, tok.Kind)
	}
	return tok, nil
}

func (p *Parser) expectQuoted() (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != token.DoubleQuoted && tok.Kind != token.SingleQuoted {
		return tok, xerr.Syntax(tok.Start, "expected a quoted string, found %v", tok.Kind)
	}
	return tok, nil
}
