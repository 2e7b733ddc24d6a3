package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"brainfuck/pkg/lexer"
	"brainfuck/pkg/token"
	"brainfuck/pkg/version"
	"brainfuck/pkg/vm"

	"github.com/joho/godotenv"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	setupLogging()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle flags
	switch command {
	case "--version", "-v", "version":
		printVersion()
		return
	case "--help", "-h", "help":
		printHelp()
		return
	}

	// If the first argument looks like a source file, run it directly
	if strings.HasSuffix(command, ".b") || strings.HasSuffix(command, ".bf") {
		runFile(command)
		return
	}

	// Handle subcommands
	switch command {
	case "run":
		if len(os.Args) < 3 {
			fmt.Println("Usage: bf run <file>")
			os.Exit(1)
		}
		runFile(os.Args[2])
	case "eval":
		if len(os.Args) < 3 {
			fmt.Println("Usage: bf eval '<code>'")
			os.Exit(1)
		}
		runSource(os.Args[2])
	case "tokens":
		if len(os.Args) < 3 {
			fmt.Println("Usage: bf tokens <file>")
			os.Exit(1)
		}
		printTokens(os.Args[2])
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("Usage: bf inspect <file>")
			os.Exit(1)
		}
		inspectFile(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printHelp()
		os.Exit(1)
	}
}

// setupLogging wires the process logger: a text handler on stderr, plus
// a JSON handler appending to BF_LOG_FILE when set. An optional .env in
// the working directory may supply both variables. Program output never
// goes through the logger; it is written straight to stdout by the VM.
func setupLogging() {
	_ = godotenv.Load()

	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("BF_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if path := os.Getenv("BF_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", path, err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		}
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

func runFile(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	runSource(string(data))
}

func runSource(src string) {
	start := time.Now()

	program := lexer.Scan(src)
	slog.Debug("scanned program", "commands", len(program))

	machine := vm.New(program, os.Stdin, os.Stdout)
	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	slog.Debug("execution finished",
		"steps", machine.Steps(),
		"elapsed", time.Since(start))
}

func printTokens(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	for _, tok := range lexer.Scan(string(data)) {
		fmt.Printf("%-12s (line %d, col %d)\n", tok.Type, tok.Line, tok.Column)
	}
}

func inspectFile(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	insights := analyzeProgram(lexer.Scan(string(data)))
	printInsights(insights)
}

func printInsights(insights ProgramInsights) {
	fmt.Printf("Commands (%d)\n", insights.Total)
	for _, typ := range commandOrder {
		if n := insights.Counts[typ]; n > 0 {
			fmt.Printf("  · %-3q %d\n", string(typ), n)
		}
	}

	fmt.Printf("Loops (%d)\n", insights.Loops)
	if insights.Loops > 0 {
		fmt.Printf("  · Deepest nesting: %d\n", insights.MaxDepth)
	}
	if insights.Unbalanced {
		fmt.Println("  · Brackets are unbalanced — the program will not run.")
	}
}

var commandOrder = []token.TokenType{
	token.MOVE_RIGHT, token.MOVE_LEFT,
	token.INCREMENT, token.DECREMENT,
	token.OUTPUT, token.INPUT,
	token.LOOP_START, token.LOOP_END,
}

func printVersion() {
	fmt.Printf("bf %s\n", version.Version)
	fmt.Printf("Build Date: %s\n", version.BuildDate)
	fmt.Printf("Git Commit: %s\n", version.GitCommit)
}

func printUsage() {
	fmt.Println("bf — brainfuck interpreter v" + version.Version)
	fmt.Println("\nUsage:")
	fmt.Println("  bf <file.b>           Run a program")
	fmt.Println("  bf run <file>         Run a program (explicit)")
	fmt.Println("  bf eval '<code>'      Run code given on the command line")
	fmt.Println("  bf tokens <file>      Print the scanned command stream")
	fmt.Println("  bf inspect <file>     Summarize commands and loop nesting")
	fmt.Println("  bf version            Show version information")
	fmt.Println("  bf help               Show this help message")
	fmt.Println("\nFlags:")
	fmt.Println("  -v, --version         Show version information")
	fmt.Println("  -h, --help            Show this help message")
}

func printHelp() {
	fmt.Println("bf — brainfuck interpreter")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bf <file.b>           Run a program (shortcut for 'bf run')")
	fmt.Println("  bf run <file>         Execute a program")
	fmt.Println("  bf eval '<code>'      Execute code from the command line")
	fmt.Println("  bf tokens <file>      Print commands with source positions")
	fmt.Println("  bf inspect <file>     Summarize commands and loop nesting")
	fmt.Println("  bf version            Display build metadata")
	fmt.Println("  bf help               Show this help message")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  BF_LOG                debug|info|error — diagnostics level")
	fmt.Println("  BF_LOG_FILE           Append JSON diagnostics to a file")
}
