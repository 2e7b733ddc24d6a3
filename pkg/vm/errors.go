package vm

import (
	"fmt"

	"brainfuck/pkg/token"
)

// ErrorKind categorizes the fatal conditions the machine can hit. Every
// kind aborts the run immediately; none is recoverable.
type ErrorKind int

const (
	// UnmatchedLoopStart is a '[' with no corresponding ']'.
	UnmatchedLoopStart ErrorKind = iota
	// UnmatchedLoopEnd is a ']' with no corresponding open '['.
	UnmatchedLoopEnd
	// ExcessiveLoopDepth means more than MaxLoopDepth loops were open at once.
	ExcessiveLoopDepth
	// TapePointerOutOfBounds means a pointer move would leave the tape.
	TapePointerOutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedLoopStart:
		return "UnmatchedLoopStart"
	case UnmatchedLoopEnd:
		return "UnmatchedLoopEnd"
	case ExcessiveLoopDepth:
		return "ExcessiveLoopDepth"
	case TapePointerOutOfBounds:
		return "TapePointerOutOfBounds"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) message() string {
	switch k {
	case UnmatchedLoopStart:
		return "Loop not closed"
	case UnmatchedLoopEnd:
		return "Unpaired ']'"
	case ExcessiveLoopDepth:
		return "Nested loop limit reached"
	case TapePointerOutOfBounds:
		return "Tape pointer out of range"
	default:
		return "Unknown error"
	}
}

// Error is a located fatal error. Line and Column are the 1-based
// position of the offending command character in the original source.
type Error struct {
	Kind   ErrorKind
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d: %d)", e.Kind.message(), e.Line, e.Column)
}

func newError(kind ErrorKind, tok token.Token) *Error {
	return &Error{Kind: kind, Line: tok.Line, Column: tok.Column}
}
