package main

import (
	"fmt"
	"os"

	"brainfuck/pkg/lexer"
	"brainfuck/pkg/vm"
)

func main() {
	input := "++>+++<[->+<]"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	program := lexer.Scan(input)
	fmt.Printf("Commands: %d\n", len(program))

	machine := vm.New(program, os.Stdin, os.Stdout)
	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSteps: %d\n", machine.Steps())
	fmt.Printf("Pointer: %d\n", machine.Pointer())

	fmt.Println("Non-zero cells:")
	for i := 0; i < vm.TapeSize; i++ {
		if v := machine.Cell(i); v != 0 {
			fmt.Printf("  [%d] = %d\n", i, v)
		}
	}
}
