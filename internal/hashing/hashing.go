// Package hashing provides Zobrist position keys and transposition
// tracking for chess positions.
package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// GenerateZobristHash computes the Zobrist key for a position. The key
// folds in every occupied square, the side to move when Black, each
// castling right still held, and the en passant target file when one
// is set. Positions equal in those components hash equal regardless of
// how they were reached.
func GenerateZobristHash(b *chess.Board) uint64 {
	var hash uint64

	for c := chess.White; c <= chess.Black; c++ {
		for p := chess.Pawn; p <= chess.King; p++ {
			bb := b.Pieces[c][p]
			for bb != 0 {
				var sq chess.Square
				sq, bb = bb.PopLSB()
				hash ^= pieceKeys[sq][pieceSlot(p, c)]
			}
		}
	}

	if b.ToMove == chess.Black {
		hash ^= sideKey
	}

	if b.Rights.WhiteKingside {
		hash ^= castleKeys[0]
	}
	if b.Rights.WhiteQueenside {
		hash ^= castleKeys[1]
	}
	if b.Rights.BlackKingside {
		hash ^= castleKeys[2]
	}
	if b.Rights.BlackQueenside {
		hash ^= castleKeys[3]
	}

	if b.EnPassant != chess.NoSquare {
		hash ^= epFileKeys[b.EnPassant.File()]
	}

	return hash
}

// PositionTable tracks seen positions by Zobrist key for transposition
// detection.
type PositionTable struct {
	// seen stores the occurrence count for each key
	seen map[uint64]int
	// repeatCount tracks the number of repeated positions recorded
	repeatCount int
	// maxCapacity bounds the number of distinct keys; 0 is unlimited
	maxCapacity int
}

// NewPositionTable creates a new position table.
// maxCapacity of 0 means unlimited capacity.
func NewPositionTable(maxCapacity int) *PositionTable {
	return &PositionTable{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records the position and reports whether it was seen
// before. When the table is full, new keys are not added and false is
// returned.
func (t *PositionTable) CheckAndAdd(b *chess.Board) bool {
	return t.CheckAndAddKey(GenerateZobristHash(b))
}

// CheckAndAddKey records an already-computed key and reports whether
// it was seen before.
func (t *PositionTable) CheckAndAddKey(key uint64) bool {
	if n, ok := t.seen[key]; ok {
		t.seen[key] = n + 1
		t.repeatCount++
		return true
	}
	if t.IsFull() {
		return false
	}
	t.seen[key] = 1
	return false
}

// Count returns the number of times the position has been recorded.
func (t *PositionTable) Count(b *chess.Board) int {
	return t.seen[GenerateZobristHash(b)]
}

// RepeatCount returns the number of repeated positions recorded.
func (t *PositionTable) RepeatCount() int {
	return t.repeatCount
}

// UniqueCount returns the number of distinct positions recorded.
func (t *PositionTable) UniqueCount() int {
	return len(t.seen)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PositionTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.seen) >= t.maxCapacity
}

// Reset clears the table.
func (t *PositionTable) Reset() {
	t.seen = make(map[uint64]int)
	t.repeatCount = 0
}
