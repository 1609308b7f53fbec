// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("json", false, "Output position snapshots in JSON format")

	// Position options
	startFEN  = flag.String("fen", "", "Starting position FEN (default: standard start)")
	strictFEN = flag.Bool("strict", false, "Reject malformed FEN instead of loading best-effort")

	// Persistence
	storeDir = flag.String("db", "", "Record every final position in a store at this directory")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no line count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)
