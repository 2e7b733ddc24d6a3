package main

import (
	"brainfuck/pkg/token"
)

type ProgramInsights struct {
	Total      int
	Counts     map[token.TokenType]int
	Loops      int
	MaxDepth   int
	Unbalanced bool
}

func analyzeProgram(program []token.Token) ProgramInsights {
	insights := ProgramInsights{
		Counts: make(map[token.TokenType]int),
	}

	depth := 0
	for _, tok := range program {
		insights.Total++
		insights.Counts[tok.Type]++

		switch tok.Type {
		case token.LOOP_START:
			insights.Loops++
			depth++
			if depth > insights.MaxDepth {
				insights.MaxDepth = depth
			}
		case token.LOOP_END:
			if depth == 0 {
				insights.Unbalanced = true
			} else {
				depth--
			}
		}
	}

	if depth != 0 {
		insights.Unbalanced = true
	}
	return insights
}
