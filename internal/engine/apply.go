package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ApplyMove applies an already-resolved move to the board. It trusts
// the move completely: no bounds or legality checks are made. Use
// MakeMove for caller-constructed moves.
func ApplyMove(b *chess.Board, m chess.Move) {
	if m.Castle != chess.NoCastle {
		applyCastle(b, m)
		return
	}

	side := b.ToMove
	enemy := side.Opposite()
	fromBB := chess.SquareBB(m.From)
	toBB := chess.SquareBB(m.To)

	// En passant removes the pawn behind the destination square.
	if m.EnPassant {
		captured := m.To - 8
		if side == chess.Black {
			captured = m.To + 8
		}
		b.Pieces[enemy][chess.Pawn] = b.Pieces[enemy][chess.Pawn].Clear(captured)
	}

	// Ordinary captures: clear the destination on every enemy board.
	for p := chess.Pawn; p <= chess.King; p++ {
		b.Pieces[enemy][p] &^= toBB
	}

	// Locate the moving piece by which bitboard holds the from bit.
	moved := chess.Empty
	for p := chess.Pawn; p <= chess.King; p++ {
		if b.Pieces[side][p]&fromBB != 0 {
			moved = p
			break
		}
	}
	b.Pieces[side][moved] ^= fromBB
	b.Pieces[side][moved] |= toBB

	if m.Promotion != chess.Empty {
		b.Pieces[side][chess.Pawn] &^= toBB
		b.Pieces[side][m.Promotion] |= toBB
	}

	// A double pawn push leaves the skipped square as the en passant
	// target; every other move clears it.
	if moved == chess.Pawn && (m.To-m.From == 16 || m.From-m.To == 16) {
		b.EnPassant = (m.From + m.To) / 2
	} else {
		b.EnPassant = chess.NoSquare
	}

	if moved == chess.King {
		b.Rights.RevokeColour(side)
	}
	if moved == chess.Rook {
		revokeRookRight(b, m.From)
	}

	b.ToMove = enemy
	if b.ToMove == chess.White {
		b.MoveNumber++
	}
}

// applyCastle toggles the king's and rook's square bits, revokes both
// of the side's rights, and switches the move.
func applyCastle(b *chess.Board, m chess.Move) {
	side := b.ToMove

	b.Pieces[side][chess.King] ^= chess.SquareBB(m.From) | chess.SquareBB(m.To)

	var rookFrom, rookTo chess.Square
	if m.Castle == chess.Kingside {
		rookFrom, rookTo = chess.H1, chess.F1
		if side == chess.Black {
			rookFrom, rookTo = chess.H8, chess.F8
		}
	} else {
		rookFrom, rookTo = chess.A1, chess.D1
		if side == chess.Black {
			rookFrom, rookTo = chess.A8, chess.D8
		}
	}
	b.Pieces[side][chess.Rook] ^= chess.SquareBB(rookFrom) | chess.SquareBB(rookTo)

	b.Rights.RevokeColour(side)
	b.EnPassant = chess.NoSquare
	b.ToMove = side.Opposite()
	if b.ToMove == chess.White {
		b.MoveNumber++
	}
}

// revokeRookRight clears the single castling right belonging to a rook
// that moved off its original home square.
func revokeRookRight(b *chess.Board, from chess.Square) {
	switch from {
	case chess.A1:
		b.Rights.WhiteQueenside = false
	case chess.H1:
		b.Rights.WhiteKingside = false
	case chess.A8:
		b.Rights.BlackQueenside = false
	case chess.H8:
		b.Rights.BlackKingside = false
	}
}

// MakeMove validates and applies a caller-constructed move. The squares
// must be on the board and the from square must hold a piece of the
// side to move; chess legality beyond that is the caller's concern.
// On failure the board is unchanged and the error wraps
// errors.ErrInvalidMove.
func MakeMove(b *chess.Board, m chess.Move) error {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return &errors.MoveError{Err: errors.ErrInvalidMove, From: int(m.From), To: int(m.To)}
	}
	mover := b.Occupancy(b.ToMove)
	if !mover.Occupied(m.From) {
		return &errors.MoveError{Err: errors.ErrInvalidMove, From: int(m.From), To: int(m.To)}
	}
	if m.Castle != chess.NoCastle && !b.Pieces[b.ToMove][chess.King].Occupied(m.From) {
		return &errors.MoveError{Err: errors.ErrInvalidMove, From: int(m.From), To: int(m.To)}
	}
	ApplyMove(b, m)
	return nil
}

// MakeMoveSAN resolves a SAN token and applies the resulting move.
// On failure the board is unchanged.
func MakeMoveSAN(b *chess.Board, san string) error {
	m, err := ResolveSAN(b, san)
	if err != nil {
		return err
	}
	ApplyMove(b, m)
	return nil
}
