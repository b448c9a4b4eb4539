// Package parser turns infix algebra strings into algebra expression trees.
//
// Grammar, lowest precedence first:
//
//	expression     -> addition
//	addition       -> multiplication ( ("+" | "-") multiplication )*
//	multiplication -> unary ( ("*" | "/") unary | power )*
//	unary          -> "-" unary | power
//	power          -> primary ( "^" exponent )*
//	exponent       -> "-"? NUMBER | "(" "-"? NUMBER ")"
//	primary        -> NUMBER | VARIABLE | "(" expression ")"
//
// A primary directly following another operand multiplies it, so "3x^2y"
// reads as 3 * x^2 * y. Variables are single letters.
package parser

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrSyntax is wrapped by every *Error.
var ErrSyntax = errors.New("parser: syntax error")

// Error reports a malformed input at a byte offset.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("parser: %s at offset %d", e.Msg, e.Pos) }
func (e *Error) Unwrap() error { return ErrSyntax }

type Kind int

const (
	Number Kind = iota
	Variable
	Plus
	Minus
	Star
	Slash
	Caret
	LeftParen
	RightParen
	EOF
)

var kindNames = [...]string{
	Number:     "number",
	Variable:   "variable",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Caret:      "'^'",
	LeftParen:  "'('",
	RightParen: "')'",
	EOF:        "end of input",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Token struct {
	Kind Kind
	Text string
	Pos  int
}

var operators = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'^': Caret,
	'(': LeftParen,
	')': RightParen,
}

// Tokenize splits src into tokens, skipping whitespace. The result always
// ends with an EOF token.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	runes := []rune(src)
	offsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offsets[i] = off
		off += len(string(r))
	}
	offsets[len(runes)] = off

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsLetter(r):
			toks = append(toks, Token{Kind: Variable, Text: string(r), Pos: offsets[i]})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			dot := false
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					if dot {
						return nil, &Error{Pos: offsets[i], Msg: "too many decimal points in number"}
					}
					dot = true
				}
				i++
			}
			text := string(runes[start:i])
			if text == "." {
				return nil, &Error{Pos: offsets[start], Msg: "malformed number"}
			}
			toks = append(toks, Token{Kind: Number, Text: text, Pos: offsets[start]})
		default:
			k, ok := operators[r]
			if !ok {
				return nil, &Error{Pos: offsets[i], Msg: fmt.Sprintf("unrecognized character %q", r)}
			}
			toks = append(toks, Token{Kind: k, Text: string(r), Pos: offsets[i]})
			i++
		}
	}
	return append(toks, Token{Kind: EOF, Pos: off}), nil
}
