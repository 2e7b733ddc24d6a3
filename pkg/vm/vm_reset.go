package vm

import (
	"brainfuck/pkg/token"
)

// Reset rewinds the VM for another run, reusing the tape allocation. The
// jump table is recomputed on the next Run since the program may differ.
func (vm *VM) Reset(program []token.Token) {
	vm.program = program
	vm.jumps = nil
	vm.pc = 0
	vm.ptr = 0
	vm.loopStack = vm.loopStack[:0]
	vm.steps = 0

	for i := range vm.tape {
		vm.tape[i] = 0
	}
}
