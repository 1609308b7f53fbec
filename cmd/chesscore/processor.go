// processor.go - Game-line replay and output functions
package main

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// resultTokens are game terminators that may follow the move list.
var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// cleanToken normalises one move token: move-number prefixes ("3." or
// "3...") and trailing check, mate, and annotation marks are removed.
// An empty result means the token carries no move.
func cleanToken(tok string) string {
	if resultTokens[tok] || strings.HasPrefix(tok, "$") {
		return ""
	}

	// Strip a leading move number glued to the move ("12.e4", "12...e5").
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i > 0 {
		for i < len(tok) && tok[i] == '.' {
			i++
		}
		tok = tok[i:]
	}

	return strings.TrimRight(tok, "+#!?")
}

// startingBoard builds the initial board for a work item.
func startingBoard(fen string) (*chess.Board, error) {
	if fen == "" {
		fen = *startFEN
	}
	if fen == "" {
		return chess.NewBoard(), nil
	}
	if *strictFEN {
		return engine.NewBoardFromFEN(fen)
	}
	b := chess.NewBoard()
	engine.LoadFEN(b, fen)
	return b, nil
}

// replayLine replays one line of SAN moves and reports the final
// position, counting positions the line revisits along the way. A move
// that fails to resolve aborts the line with the offending token
// preserved in the error.
func replayLine(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index}

	board, err := startingBoard(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	table := hashing.NewPositionTable(0)
	table.CheckAndAdd(board)

	for _, tok := range item.Moves {
		san := cleanToken(tok)
		if san == "" {
			continue
		}
		if err := engine.MakeMoveSAN(board, san); err != nil {
			result.Error = errors.Wrap(err, "replay")
			return result
		}
		result.Plies++
		table.CheckAndAdd(board)
	}

	result.Board = board
	result.FEN = engine.BoardToFEN(board)
	result.Zobrist = hashing.GenerateZobristHash(board)
	result.Repeats = table.RepeatCount()
	return result
}
