package engine

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// PieceSet holds one side's piece bitboards as raw 64-bit masks.
type PieceSet struct {
	Pawns   uint64 `json:"pawns"`
	Knights uint64 `json:"knights"`
	Bishops uint64 `json:"bishops"`
	Rooks   uint64 `json:"rooks"`
	Queens  uint64 `json:"queens"`
	Kings   uint64 `json:"kings"`
}

// Position is a read-only snapshot of a board, suitable for JSON
// output or inspection without exposing the board itself.
type Position struct {
	SideToMove     string   `json:"sideToMove"`
	White          PieceSet `json:"white"`
	Black          PieceSet `json:"black"`
	WhiteOccupancy uint64   `json:"whiteOccupancy"`
	BlackOccupancy uint64   `json:"blackOccupancy"`
	AllOccupancy   uint64   `json:"allOccupancy"`
	Castling       string   `json:"castling"`
	EnPassant      string   `json:"enPassant"`
	HalfmoveClock  uint     `json:"halfmoveClock"`
	MoveNumber     uint     `json:"moveNumber"`
	Zobrist        uint64   `json:"zobrist"`
	FEN            string   `json:"fen"`
}

// Snapshot captures the current position of a board.
func Snapshot(b *chess.Board) *Position {
	return &Position{
		SideToMove:     b.ToMove.String(),
		White:          pieceSet(b, chess.White),
		Black:          pieceSet(b, chess.Black),
		WhiteOccupancy: uint64(b.Occupancy(chess.White)),
		BlackOccupancy: uint64(b.Occupancy(chess.Black)),
		AllOccupancy:   uint64(b.AllOccupancy()),
		Castling:       b.Rights.String(),
		EnPassant:      b.EnPassant.String(),
		HalfmoveClock:  b.HalfmoveClock,
		MoveNumber:     b.MoveNumber,
		Zobrist:        hashing.GenerateZobristHash(b),
		FEN:            BoardToFEN(b),
	}
}

func pieceSet(b *chess.Board, c chess.Colour) PieceSet {
	return PieceSet{
		Pawns:   uint64(b.Pieces[c][chess.Pawn]),
		Knights: uint64(b.Pieces[c][chess.Knight]),
		Bishops: uint64(b.Pieces[c][chess.Bishop]),
		Rooks:   uint64(b.Pieces[c][chess.Rook]),
		Queens:  uint64(b.Pieces[c][chess.Queen]),
		Kings:   uint64(b.Pieces[c][chess.King]),
	}
}

// WritePositionJSON writes an indented JSON snapshot of the board.
func WritePositionJSON(w io.Writer, b *chess.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot(b))
}
