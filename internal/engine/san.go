package engine

import (
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// sanToken is the decoded form of a SAN string before it is resolved
// against a position.
type sanToken struct {
	piece      chess.Piece  // chess.Pawn for pawn moves
	target     chess.Square // destination square
	disambFile int          // 0-7 or -1
	disambRank int          // 0-7 or -1
	promotion  chess.Piece  // chess.Empty if none
	castle     chess.CastleSide
}

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the piece identified by a SAN piece letter, or
// chess.Empty when c is not a piece letter.
func isPiece(c byte) chess.Piece {
	switch c {
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'R':
		return chess.Rook
	case 'Q':
		return chess.Queen
	case 'K':
		return chess.King
	}
	return chess.Empty
}

// decodeSAN scans a SAN token into its components. The board is not
// consulted: castling squares and candidate pieces are filled in by
// ResolveSAN. Check, mate, and annotation suffixes ('+', '#', '!',
// '?') are not stripped and make the destination parse fail; callers
// must remove them first.
func decodeSAN(san string) (sanToken, bool) {
	tok := sanToken{
		target:     chess.NoSquare,
		disambFile: -1,
		disambRank: -1,
	}

	s := strings.TrimLeftFunc(san, unicode.IsSpace)
	if strings.HasPrefix(s, "O-O-O") {
		tok.piece = chess.King
		tok.castle = chess.Queenside
		return tok, true
	}
	if strings.HasPrefix(s, "O-O") {
		tok.piece = chess.King
		tok.castle = chess.Kingside
		return tok, true
	}

	if len(s) < 2 {
		return tok, false
	}

	// Promotion suffix "=X" with X in {N,B,R,Q}; the destination square
	// is the two characters before it.
	destEnd := len(s)
	if len(s) >= 4 && s[len(s)-2] == '=' {
		promo := isPiece(s[len(s)-1])
		if promo == chess.Empty || promo == chess.King {
			return tok, false
		}
		tok.promotion = promo
		destEnd = len(s) - 2
	}
	if destEnd < 2 {
		return tok, false
	}
	destFile, destRank := s[destEnd-2], s[destEnd-1]
	if !isCol(destFile) || !isRank(destRank) {
		return tok, false
	}
	tok.target = chess.NewSquare(int(destFile-'a'), int(destRank-'1'))

	// The remaining prefix holds an optional piece letter and
	// disambiguators; trailing capture markers are ignored.
	rest := s[:destEnd-2]
	for len(rest) > 0 && rest[len(rest)-1] == 'x' {
		rest = rest[:len(rest)-1]
	}
	if len(rest) == 0 {
		tok.piece = chess.Pawn
		return tok, true
	}

	if p := isPiece(rest[0]); p != chess.Empty {
		tok.piece = p
		if len(rest) >= 2 && isCol(rest[1]) {
			tok.disambFile = int(rest[1] - 'a')
		}
		if isRank(rest[len(rest)-1]) {
			tok.disambRank = int(rest[len(rest)-1] - '1')
		}
	} else {
		tok.piece = chess.Pawn
		if isCol(rest[0]) {
			tok.disambFile = int(rest[0] - 'a')
		} else {
			return tok, false
		}
		if isRank(rest[len(rest)-1]) {
			tok.disambRank = int(rest[len(rest)-1] - '1')
		}
	}

	// A two-character file+rank prefix is a full source square.
	if len(rest) == 2 && isCol(rest[0]) && isRank(rest[1]) {
		tok.disambFile = int(rest[0] - 'a')
		tok.disambRank = int(rest[1] - '1')
	}

	return tok, true
}

// castleMove builds the castling move for the side to move.
func castleMove(side chess.Colour, cs chess.CastleSide) chess.Move {
	m := chess.Move{Castle: cs}
	if side == chess.White {
		m.From = chess.E1
		m.To = chess.G1
		if cs == chess.Queenside {
			m.To = chess.C1
		}
	} else {
		m.From = chess.E8
		m.To = chess.G8
		if cs == chess.Queenside {
			m.To = chess.C8
		}
	}
	return m
}

// pawnCandidates computes the candidate source squares for a pawn move
// to target. A file disambiguator marks a capture: the sources are the
// reverse pawn-capture squares on that file. Without one the source is
// the square one step behind the target, or two steps behind for a
// double push over an empty square.
func pawnCandidates(b *chess.Board, tok sanToken, occ chess.Bitboard) chess.Bitboard {
	side := b.ToMove
	pawns := b.Pieces[side][chess.Pawn]

	if tok.disambFile >= 0 {
		return chess.PawnCaptureSources(side, tok.target) & pawns & chess.FileMask(tok.disambFile)
	}

	oneBack := tok.target - 8
	twoBack := tok.target - 16
	doubleRank := 3
	if side == chess.Black {
		oneBack = tok.target + 8
		twoBack = tok.target + 16
		doubleRank = 4
	}
	if pawns.Occupied(oneBack) {
		return chess.SquareBB(oneBack)
	}
	if tok.target.Rank() == doubleRank && pawns.Occupied(twoBack) && !occ.Occupied(oneBack) {
		return chess.SquareBB(twoBack)
	}
	return chess.EmptyBB
}

// candidateSources computes the bitboard of pieces of the moving side
// that can reach the target square.
func candidateSources(b *chess.Board, tok sanToken, occ chess.Bitboard) chess.Bitboard {
	side := b.ToMove
	switch tok.piece {
	case chess.King:
		return chess.KingAttacks(tok.target) & b.Pieces[side][chess.King]
	case chess.Knight:
		return chess.KnightAttacks(tok.target) & b.Pieces[side][chess.Knight]
	case chess.Rook:
		return chess.RookAttacks(tok.target, occ) & b.Pieces[side][chess.Rook]
	case chess.Bishop:
		return chess.BishopAttacks(tok.target, occ) & b.Pieces[side][chess.Bishop]
	case chess.Queen:
		return chess.QueenAttacks(tok.target, occ) & b.Pieces[side][chess.Queen]
	default:
		return pawnCandidates(b, tok, occ)
	}
}

// ResolveSAN resolves a SAN token against the current position into a
// concrete move. It verifies notation-level correctness only (square
// reachability and disambiguation), not chess legality, and never
// mutates the board. Failures are reported as errors wrapping
// errors.ErrInvalidNotation or errors.ErrAmbiguousMove.
func ResolveSAN(b *chess.Board, san string) (chess.Move, error) {
	tok, ok := decodeSAN(san)
	if !ok {
		return chess.Move{}, errors.NotationError(errors.ErrInvalidNotation, san)
	}

	if tok.castle != chess.NoCastle {
		return castleMove(b.ToMove, tok.castle), nil
	}

	occ := b.AllOccupancy()
	candidates := candidateSources(b, tok, occ)
	if tok.disambFile >= 0 {
		candidates &= chess.FileMask(tok.disambFile)
	}
	if tok.disambRank >= 0 {
		candidates &= chess.RankMask(tok.disambRank)
	}

	switch candidates.PopCount() {
	case 0:
		return chess.Move{}, errors.NotationError(errors.ErrInvalidNotation, san)
	case 1:
	default:
		return chess.Move{}, errors.NotationError(errors.ErrAmbiguousMove, san)
	}

	// A pawn capture notated onto an empty square is en passant.
	enPassant := tok.piece == chess.Pawn && tok.disambFile >= 0 && !occ.Occupied(tok.target)

	return chess.Move{
		From:      candidates.LSB(),
		To:        tok.target,
		Promotion: tok.promotion,
		EnPassant: enPassant,
	}, nil
}
