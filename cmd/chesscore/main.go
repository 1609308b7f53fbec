// chesscore is a tool for replaying chess game lines onto bitboard
// positions, reporting the resulting FEN and Zobrist key.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/store"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	out := setupOutputFile()
	logW := setupLogFile()
	posStore := setupStore()
	if posStore != nil {
		defer posStore.Close() //nolint:errcheck // cleanup on exit
	}

	items, err := collectInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	results := replayAll(items)

	replayed, failed := 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(logW, "line %d: %v\n", res.Index+1, res.Error)
			continue
		}
		replayed++
		if err := outputResult(out, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		if posStore != nil {
			if _, err := posStore.Record(res.Board); err != nil {
				fmt.Fprintf(os.Stderr, "Error recording position: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "%d line(s) replayed, %d failed out of %d.\n", replayed, failed, len(results))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// replayAll runs every work item through the worker pool and returns
// the results in input order.
func replayAll(items []worker.WorkItem) []worker.ProcessResult {
	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pool := worker.NewPool(replayLine,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(2*numWorkers))
	pool.Start()

	results := make([]worker.ProcessResult, 0, len(items))

	var g errgroup.Group
	g.Go(func() error {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
		return nil
	})
	g.Go(func() error {
		for res := range pool.Results() {
			results = append(results, res)
		}
		return nil
	})
	g.Wait() //nolint:errcheck // both goroutines always return nil

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// collectInputs reads game lines from the named files, or stdin when
// none are given. Each non-empty line becomes one work item.
func collectInputs(args []string) ([]worker.WorkItem, error) {
	if len(args) == 0 {
		return readLines(os.Stdin, nil)
	}

	var items []worker.WorkItem
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		items, err = readLines(file, items)
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// readLines appends one work item per non-empty, non-comment line.
func readLines(r io.Reader, items []worker.WorkItem) ([]worker.WorkItem, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Moves: strings.Fields(line),
			Index: len(items),
		})
	}
	return items, scanner.Err()
}

// outputResult writes one replayed line, as text or JSON.
func outputResult(w io.Writer, res worker.ProcessResult) error {
	if *jsonOutput {
		return engine.WritePositionJSON(w, res.Board)
	}
	_, err := fmt.Fprintf(w, "%s 0x%016x repeats=%d\n", res.FEN, res.Zobrist, res.Repeats)
	return err
}

// setupOutputFile opens the output destination from the -o flag.
func setupOutputFile() io.Writer {
	if *outputFile == "" {
		return os.Stdout
	}

	var file *os.File
	var err error
	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// setupLogFile opens the diagnostics destination from the -l flag.
func setupLogFile() io.Writer {
	if *logFile == "" {
		return os.Stderr
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	return file
}

// setupStore opens the position store from the -db flag.
func setupStore() *store.PositionStore {
	if *storeDir == "" {
		return nil
	}
	s, err := store.Open(*storeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening position store %s: %v\n", *storeDir, err)
		os.Exit(1)
	}
	return s
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays lines of SAN moves and prints the final position.\n")
	fmt.Fprintf(os.Stderr, "Each input line holds one game's moves; move numbers and\n")
	fmt.Fprintf(os.Stderr, "result markers are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
