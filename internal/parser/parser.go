// Package parser implements the recursive-descent parser described in
// spec §4.2: tokens → per-module AST, with local error recovery and a
// never-throws contract on malformed input.
package parser

import (
	"github.com/elematic/zena-sub003/internal/ast"
	"github.com/elematic/zena-sub003/internal/diagnostics"
	"github.com/elematic/zena-sub003/internal/lexer"
	"github.com/elematic/zena-sub003/internal/token"
)

// Precedence levels, lowest to highest, following the teacher's
// precedence-climbing Pratt parser shape (internal/parser/operators.go).
const (
	precLowest = iota
	precAssign
	precOr
	precAnd
	precEquals
	precCompare
	precShift
	precBitOr
	precBitAnd
	precAddSub
	precMulDiv
	precIsAsCast
	precUnary
	precCall
)

var binaryPrecedence = map[token.Kind]int{
	token.Assign: precAssign,
	token.PipePipe: precOr,
	token.AmpAmp:   precAnd,
	token.Eq:       precEquals,
	token.NotEq:    precEquals,
	token.Lt:       precCompare,
	token.Gt:       precCompare,
	token.LtEq:     precCompare,
	token.GtEq:     precCompare,
	token.Shl:      precShift,
	token.Shr:      precShift,
	token.UShr:     precShift,
	token.Pipe:     precBitOr,
	token.Amp:      precBitAnd,
	token.Caret:    precBitAnd,
	token.Plus:     precAddSub,
	token.Minus:    precAddSub,
	token.Star:     precMulDiv,
	token.Slash:    precMulDiv,
	token.Percent:  precMulDiv,
	token.KwIs:     precIsAsCast,
	token.KwAs:     precIsAsCast,
	token.LParen:   precCall,
	token.LBracket: precCall,
	token.Dot:      precCall,
	// A template literal immediately following an expression is a
	// tagged template call, e.g. `html\`<div>${x}</div>\`` (spec §4.2).
	token.TemplateHead:           precCall,
	token.TemplateNoSubstitution: precCall,
}

var assignOps = map[token.Kind]bool{token.Assign: true}

// Parser turns a token stream into a Program, recovering from syntax
// errors by skipping to the next statement boundary rather than
// aborting (spec §4.2).
//
// Tokens are pulled from the lexer on demand into a growing buffer
// rather than tokenized up front in one pass: template-literal
// substitutions (spec §4.2) need the lexer to switch back and forth
// between ordinary token scanning (inside `${ … }`) and raw template
// text scanning, which only works if the parser's lookahead never runs
// further ahead than the lexer has actually been asked to scan.
type Parser struct {
	lex  *lexer.Lexer
	toks []token.Token
	pos  int
	path string
	bag  *diagnostics.Bag
}

// Parse parses source into a Program plus any parser diagnostics. It
// never panics on malformed input.
func Parse(source, path string) (*ast.Program, *diagnostics.Bag) {
	p := &Parser{
		lex:  lexer.New(source),
		path: path,
		bag:  diagnostics.NewBag(),
	}
	return p.parseProgram(), p.bag
}

// fill grows toks until index n is populated, pulling fresh tokens from
// the lexer lazily so lookahead never outpaces what parsing actually
// needs (see the continueTemplate caveat below).
func (p *Parser) fill(n int) {
	for len(p.toks) <= n {
		p.toks = append(p.toks, p.lex.Next())
	}
}

func (p *Parser) cur() token.Token {
	p.fill(p.pos)
	return p.toks[p.pos]
}
func (p *Parser) peek(n int) token.Token {
	p.fill(p.pos + n)
	return p.toks[p.pos+n]
}
func (p *Parser) advance() token.Token {
	t := p.cur()
	p.pos++
	return t
}

// continueTemplate discards any buffered lookahead beyond the current
// position and asks the lexer to resume scanning raw template text
// instead of ordinary tokens. It must be called immediately after
// consuming the `}` that closes a `${ … }` substitution, before any
// further lookahead has pulled tokens from the literal text that
// follows — parseTemplateLiteral is the only caller and upholds this.
func (p *Parser) continueTemplate(pos token.Position) token.Token {
	if len(p.toks) > p.pos {
		p.toks = p.toks[:p.pos]
	}
	tok := p.lex.ScanTemplateContinuation(pos)
	p.toks = append(p.toks, tok)
	return tok
}
func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }
func (p *Parser) atEOF() bool          { return p.cur().Kind == token.EOF }

func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur().Kind == k {
		return p.advance()
	}
	p.errorf(diagnostics.ExpectedToken, p.cur().Pos, "expected %s, got %s", k, p.cur().Kind)
	return p.cur()
}

func (p *Parser) accept(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) errorf(code diagnostics.Code, pos token.Position, format string, args ...interface{}) {
	p.bag.Error(code, &diagnostics.Location{File: p.path, Start: pos, Line: pos.Line, Column: pos.Column}, sprintf(format, args...))
}

// recover skips tokens until a likely statement boundary (`;`, `}`, or
// EOF), matching the teacher's error-recovery strategy of resyncing
// rather than aborting the whole parse.
func (p *Parser) recover() {
	for !p.atEOF() {
		if p.cur().Kind == token.Semicolon {
			p.advance()
			return
		}
		if p.cur().Kind == token.RBrace {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEOF() {
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}
