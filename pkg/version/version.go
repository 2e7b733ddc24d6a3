package version

// Set at build time via -ldflags "-X brainfuck/pkg/version.Version=..."
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)
