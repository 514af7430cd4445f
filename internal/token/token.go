// Package token defines the lexical token kinds shared by the lexer,
// parser, checker, and bundler.
package token

import "fmt"

// Kind enumerates every distinct token produced by the lexer.
type Kind int

const (
	EOF Kind = iota
	Unknown

	Ident
	Private // `#` prefixed name; not produced by the lexer, which emits Hash then the name

	IntLiteral
	FloatLiteral
	StringLiteral
	TemplateNoSubstitution
	TemplateHead   // `…${`
	TemplateMiddle // `}…${`
	TemplateTail   // `}…`

	// Keywords
	KwClass
	KwInterface
	KwMixin
	KwExtension
	KwExtends
	KwImplements
	KwOn
	KwWith
	KwFinal
	KwAbstract
	KwStatic
	KwPrivate
	KwLet
	KwVar
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwBreak
	KwContinue
	KwThrow
	KwTry
	KwCatch
	KwFinally
	KwNew
	KwThis
	KwNull
	KwTrue
	KwFalse
	KwVoid
	KwNever
	KwAny
	KwMatch
	KwCase
	KwDefault
	KwIs
	KwAs
	KwImport
	KwExport
	KwFrom
	KwDeclare
	KwSymbol
	KwType
	KwGet
	KwSet
	KwHole // `_`

	// Punctuation / operators
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	Semicolon
	Dot
	DotDotDot // ...
	Arrow     // =>
	Question
	At // @

	Assign
	Eq
	NotEq
	Lt
	Gt
	LtEq
	GtEq
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Bang
	AmpAmp
	PipePipe
	Shl    // <<
	Shr    // >>
	UShr   // >>>
	Hash   // #, always its own token; the parser joins it with the following name
)

var names = map[Kind]string{
	EOF: "EOF", Unknown: "Unknown", Ident: "Ident", Private: "Private",
	IntLiteral: "IntLiteral", FloatLiteral: "FloatLiteral", StringLiteral: "StringLiteral",
	TemplateNoSubstitution: "TemplateNoSubstitution", TemplateHead: "TemplateHead",
	TemplateMiddle: "TemplateMiddle", TemplateTail: "TemplateTail",
	KwClass: "class", KwInterface: "interface", KwMixin: "mixin", KwExtension: "extension",
	KwExtends: "extends", KwImplements: "implements", KwOn: "on", KwWith: "with",
	KwFinal: "final", KwAbstract: "abstract", KwStatic: "static", KwPrivate: "private",
	KwLet: "let", KwVar: "var", KwFunction: "function", KwReturn: "return",
	KwIf: "if", KwElse: "else", KwWhile: "while", KwFor: "for",
	KwBreak: "break", KwContinue: "continue", KwThrow: "throw", KwTry: "try",
	KwCatch: "catch", KwFinally: "finally", KwNew: "new", KwThis: "this",
	KwNull: "null", KwTrue: "true", KwFalse: "false", KwVoid: "void",
	KwNever: "never", KwAny: "any", KwMatch: "match", KwCase: "case",
	KwDefault: "default", KwIs: "is", KwAs: "as", KwImport: "import",
	KwExport: "export", KwFrom: "from", KwDeclare: "declare", KwSymbol: "symbol",
	KwType: "type", KwGet: "get", KwSet: "set", KwHole: "_",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Comma: ",", Colon: ":", Semicolon: ";", Dot: ".", DotDotDot: "...",
	Arrow: "=>", Question: "?", At: "@",
	Assign: "=", Eq: "==", NotEq: "!=", Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Bang: "!",
	AmpAmp: "&&", PipePipe: "||", Shl: "<<", Shr: ">>", UShr: ">>>", Hash: "#",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved-word lexemes to their keyword kind.
var Keywords = map[string]Kind{
	"class": KwClass, "interface": KwInterface, "mixin": KwMixin,
	"extension": KwExtension, "extends": KwExtends, "implements": KwImplements,
	"on": KwOn, "with": KwWith, "final": KwFinal, "abstract": KwAbstract,
	"static": KwStatic, "private": KwPrivate, "let": KwLet, "var": KwVar,
	"function": KwFunction, "return": KwReturn, "if": KwIf, "else": KwElse,
	"while": KwWhile, "for": KwFor, "break": KwBreak, "continue": KwContinue,
	"throw": KwThrow, "try": KwTry, "catch": KwCatch, "finally": KwFinally,
	"new": KwNew, "this": KwThis, "null": KwNull, "true": KwTrue, "false": KwFalse,
	"void": KwVoid, "never": KwNever, "any": KwAny, "match": KwMatch,
	"case": KwCase, "default": KwDefault, "is": KwIs, "as": KwAs,
	"import": KwImport, "export": KwExport, "from": KwFrom, "declare": KwDeclare,
	"symbol": KwSymbol, "type": KwType, "get": KwGet, "set": KwSet,
}

// Position is a source location: 1-based line/column plus a byte offset
// used for slicing source text when formatting diagnostics.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token is a single lexical token.
type Token struct {
	Kind    Kind
	Literal string // cooked lexeme (escapes processed for strings/templates)
	Raw     string // raw lexeme (no escape processing); set for template parts
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Literal, t.Pos.Line, t.Pos.Column)
}
