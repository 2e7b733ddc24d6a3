package token

import "fmt"

type TokenType string

const (
	// Special
	EOF = "EOF"

	// Commands
	MOVE_RIGHT = ">"
	MOVE_LEFT  = "<"
	INCREMENT  = "+"
	DECREMENT  = "-"
	OUTPUT     = "."
	INPUT      = ","
	LOOP_START = "["
	LOOP_END   = "]"
)

// Token is one recognized command character together with the 1-based
// line and column of the character in the original source. Positions
// count every source character, not just commands, so diagnostics point
// at the real location even though noise characters are dropped.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d:%d)", t.Type, t.Literal, t.Line, t.Column)
}

var commands = map[byte]TokenType{
	'>': MOVE_RIGHT,
	'<': MOVE_LEFT,
	'+': INCREMENT,
	'-': DECREMENT,
	'.': OUTPUT,
	',': INPUT,
	'[': LOOP_START,
	']': LOOP_END,
}

// LookupCommand maps a source character to its command type. The second
// return value is false for every character outside the eight-command
// set; those characters count as whitespace.
func LookupCommand(ch byte) (TokenType, bool) {
	tok, ok := commands[ch]
	return tok, ok
}
