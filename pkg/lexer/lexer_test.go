package lexer

import (
	"brainfuck/pkg/token"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `++>+++<[->+<]`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.INCREMENT, "+"},
		{token.INCREMENT, "+"},
		{token.MOVE_RIGHT, ">"},
		{token.INCREMENT, "+"},
		{token.INCREMENT, "+"},
		{token.INCREMENT, "+"},
		{token.MOVE_LEFT, "<"},
		{token.LOOP_START, "["},
		{token.DECREMENT, "-"},
		{token.MOVE_RIGHT, ">"},
		{token.INCREMENT, "+"},
		{token.MOVE_LEFT, "<"},
		{token.LOOP_END, "]"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q, literal=%q",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestPositionTracking(t *testing.T) {
	// Noise characters emit nothing but still count toward positions
	input := "a+>\n,[-]x."

	tests := []struct {
		expectedType   token.TokenType
		expectedLine   int
		expectedColumn int
	}{
		{token.INCREMENT, 1, 2},
		{token.MOVE_RIGHT, 1, 3},
		{token.INPUT, 2, 1},
		{token.LOOP_START, 2, 2},
		{token.DECREMENT, 2, 3},
		{token.LOOP_END, 2, 4},
		{token.OUTPUT, 2, 6},
		{token.EOF, 2, 7},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Line != tt.expectedLine || tok.Column != tt.expectedColumn {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedLine, tt.expectedColumn, tok.Line, tok.Column)
		}
	}
}

func TestScanDropsNoise(t *testing.T) {
	input := "read a byte , then echo it .\nloop: [ - ] done\n"

	program := Scan(input)

	expected := []token.TokenType{
		token.INPUT,
		token.OUTPUT,
		token.LOOP_START,
		token.DECREMENT,
		token.LOOP_END,
	}

	if len(program) != len(expected) {
		t.Fatalf("wrong number of commands. expected=%d, got=%d", len(expected), len(program))
	}

	for i, typ := range expected {
		if program[i].Type != typ {
			t.Fatalf("program[%d] - tokentype wrong. expected=%q, got=%q", i, typ, program[i].Type)
		}
	}
}

func TestScanEmptySource(t *testing.T) {
	if program := Scan("nothing to see here"); len(program) != 0 {
		t.Fatalf("expected no commands, got %d", len(program))
	}
	if program := Scan(""); len(program) != 0 {
		t.Fatalf("expected no commands from empty input, got %d", len(program))
	}
}

func TestColumnResetsAfterNewline(t *testing.T) {
	input := "\n\n  +"

	program := Scan(input)
	if len(program) != 1 {
		t.Fatalf("wrong number of commands. expected=1, got=%d", len(program))
	}

	tok := program[0]
	if tok.Line != 3 || tok.Column != 3 {
		t.Fatalf("position wrong. expected=3:3, got=%d:%d", tok.Line, tok.Column)
	}
}
