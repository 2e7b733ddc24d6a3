package lexer

import (
	"brainfuck/pkg/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column += 1
}

// NextToken returns the next command in source order, or an EOF token
// once the input is exhausted. Every consumed character advances the
// column and newlines advance the line, so positions stay accurate
// across the noise characters that emit nothing.
func (l *Lexer) NextToken() token.Token {
	for {
		if l.ch == 0 {
			return token.Token{Type: token.EOF, Literal: "", Line: l.line, Column: l.column}
		}

		if typ, ok := token.LookupCommand(l.ch); ok {
			tok := token.Token{Type: typ, Literal: string(l.ch), Line: l.line, Column: l.column}
			l.readChar()
			return tok
		}

		if l.ch == '\n' {
			l.readChar() // Consume \n
			l.line++
			l.column = 1
		} else {
			// Comment character: consumed for position tracking only
			l.readChar()
		}
	}
}

// Scan drains a fresh lexer over input and returns the full command
// sequence, without the trailing EOF token.
func Scan(input string) []token.Token {
	l := New(input)

	var program []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return program
		}
		program = append(program, tok)
	}
}
