package vm

import (
	"io"
	"unicode/utf8"

	"brainfuck/pkg/token"
)

const TapeSize = 30000     // Canonical 30k memory cells
const MaxLoopDepth = 32767 // Simultaneously open loops

// VM runs a scanned command sequence against a fresh tape. The tape,
// pointer and loop stack belong to one VM value for the lifetime of a
// run; several machines can execute side by side in one process.
type VM struct {
	program []token.Token
	jumps   []int // partner index for every LOOP_START/LOOP_END

	tape      []uint32
	ptr       int
	pc        int
	loopStack []int

	input  io.Reader
	output io.Writer

	steps int
}

func New(program []token.Token, input io.Reader, output io.Writer) *VM {
	return &VM{
		program: program,
		tape:    make([]uint32, TapeSize),
		input:   input,
		output:  output,
	}
}

// Pointer returns the current cell index.
func (vm *VM) Pointer() int {
	return vm.ptr
}

// Cell returns the value of cell i.
func (vm *VM) Cell(i int) uint32 {
	return vm.tape[i]
}

// Steps returns the number of commands executed so far.
func (vm *VM) Steps() int {
	return vm.steps
}

// resolveLoops builds the bracket jump table in a single pass, mapping
// each '[' to its ']' and back. Any unmatched bracket is rejected here,
// before the first command runs. When several '[' are left open the
// first-opened one is reported.
func (vm *VM) resolveLoops() error {
	vm.jumps = make([]int, len(vm.program))
	var open []int

	for i, tok := range vm.program {
		switch tok.Type {
		case token.LOOP_START:
			open = append(open, i)
		case token.LOOP_END:
			if len(open) == 0 {
				return newError(UnmatchedLoopEnd, tok)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			vm.jumps[start] = i
			vm.jumps[i] = start
		}
	}

	if len(open) > 0 {
		return newError(UnmatchedLoopStart, vm.program[open[0]])
	}
	return nil
}

// Run executes the program to completion. It either finishes silently
// with a nil error, or stops at the first fatal condition and returns a
// *Error locating the offending command. Output is written as it is
// produced; input is read one byte at a time as ',' commands execute.
func (vm *VM) Run() error {
	if vm.jumps == nil {
		if err := vm.resolveLoops(); err != nil {
			return err
		}
	}

	// Cache frequently accessed fields
	program := vm.program
	tape := vm.tape
	ptr := vm.ptr
	pc := vm.pc

	// Main execution loop
	for pc < len(program) {
		tok := program[pc]
		vm.steps++

		switch tok.Type {
		case token.MOVE_RIGHT:
			if ptr == TapeSize-1 {
				vm.ptr, vm.pc = ptr, pc
				return newError(TapePointerOutOfBounds, tok)
			}
			ptr++

		case token.MOVE_LEFT:
			if ptr == 0 {
				vm.ptr, vm.pc = ptr, pc
				return newError(TapePointerOutOfBounds, tok)
			}
			ptr--

		case token.INCREMENT:
			tape[ptr]++ // uint32 wraps past max back to 0

		case token.DECREMENT:
			tape[ptr]-- // uint32 wraps past 0 back to max

		case token.OUTPUT:
			vm.writeCell(tape[ptr])

		case token.INPUT:
			tape[ptr] = vm.readCell()

		case token.LOOP_START:
			if tape[ptr] == 0 {
				// Skip the body: land on the partner ']' so the
				// advance below moves just past it
				pc = vm.jumps[pc]
			} else {
				if len(vm.loopStack) >= MaxLoopDepth {
					vm.ptr, vm.pc = ptr, pc
					return newError(ExcessiveLoopDepth, tok)
				}
				vm.loopStack = append(vm.loopStack, pc)
			}

		case token.LOOP_END:
			if len(vm.loopStack) == 0 {
				// Unreachable once resolveLoops has passed; kept so a
				// hand-built program slice still fails loudly
				vm.ptr, vm.pc = ptr, pc
				return newError(UnmatchedLoopEnd, tok)
			}
			if tape[ptr] != 0 {
				// Re-enter: land on the '[' so the advance below moves
				// just past it, without popping
				pc = vm.loopStack[len(vm.loopStack)-1]
			} else {
				vm.loopStack = vm.loopStack[:len(vm.loopStack)-1]
			}
		}

		pc++
	}

	// Save final state
	vm.ptr = ptr
	vm.pc = pc

	return nil
}

// writeCell emits the cell value as a UTF-8 encoded rune. Values outside
// the valid code point range are written as the replacement character.
// Write failures belong to the surrounding process, not the machine, and
// are deliberately dropped; the writer is flushed after every command so
// output interleaves deterministically with input prompts.
func (vm *VM) writeCell(val uint32) {
	r := rune(val)
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, _ = vm.output.Write(buf[:n])

	if f, ok := vm.output.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// readCell blocks for one byte of input, skipping newline bytes. At end
// of input the cell is assigned 0; that policy is fixed and applies to
// every ',' uniformly.
func (vm *VM) readCell() uint32 {
	var b [1]byte
	for {
		if _, err := io.ReadFull(vm.input, b[:]); err != nil {
			return 0
		}
		if b[0] != '\n' {
			return uint32(b[0])
		}
	}
}
