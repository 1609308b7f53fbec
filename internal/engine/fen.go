// Package engine provides SAN resolution, move application, and the
// FEN codec for bitboard positions.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type and
// colour. It returns chess.Empty for characters that are not pieces.
func ConvertFENCharToPiece(c byte) (chess.Piece, chess.Colour) {
	colour := chess.White
	if unicode.IsLower(rune(c)) {
		colour = chess.Black
	}
	switch c {
	case 'P', 'p':
		return chess.Pawn, colour
	case 'N', 'n':
		return chess.Knight, colour
	case 'B', 'b':
		return chess.Bishop, colour
	case 'R', 'r':
		return chess.Rook, colour
	case 'Q', 'q':
		return chess.Queen, colour
	case 'K', 'k':
		return chess.King, colour
	default:
		return chess.Empty, chess.White
	}
}

// fenLetter returns the FEN letter for a coloured piece.
func fenLetter(p chess.Piece, c chess.Colour) byte {
	letter := p.Letter()
	if c == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(b *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, b)
	sb.WriteByte(' ')
	writeSideToMove(&sb, b)
	sb.WriteByte(' ')
	sb.WriteString(b.Rights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock, b.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement field: rank 8 down to
// rank 1, files a to h, runs of empty squares collapsed to a digit.
func writePiecePositions(sb *strings.Builder, b *chess.Board) {
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece, colour := b.PieceAt(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(piece, colour))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move field.
func writeSideToMove(sb *strings.Builder, b *chess.Board) {
	if b.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewBoardFromFEN creates a board from a FEN string, validating every
// field. Use LoadFEN for the lenient, best-effort behaviour.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	b := chess.NewEmptyBoard()

	if err := parsePiecePositionsStrict(b, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMoveStrict(b, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRightsStrict(b, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassantStrict(b, parts); err != nil {
		return nil, err
	}
	if err := parseClocksStrict(b, parts); err != nil {
		return nil, err
	}

	return b, nil
}

// parsePiecePositionsStrict parses the placement field, requiring
// exactly eight ranks each covering exactly eight files.
func parsePiecePositionsStrict(b *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("placement has %d ranks, want 8: %w", len(ranks), errors.ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, colour := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows 8 files: %w", rank+1, errors.ErrInvalidFEN)
			}
			b.Pieces[colour][piece] = b.Pieces[colour][piece].Set(chess.NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d covers %d files, want 8: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMoveStrict parses the side to move field.
func parseSideToMoveStrict(b *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		b.ToMove = chess.White
	case "b":
		b.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRightsStrict parses the castling availability field.
func parseCastlingRightsStrict(b *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			b.Rights.WhiteKingside = true
		case 'Q':
			b.Rights.WhiteQueenside = true
		case 'k':
			b.Rights.BlackKingside = true
		case 'q':
			b.Rights.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassantStrict parses the en passant target square field.
func parseEnPassantStrict(b *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := parseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	b.EnPassant = sq
	return nil
}

// parseClocksStrict parses the halfmove clock and fullmove number.
func parseClocksStrict(b *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		b.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		b.MoveNumber = uint(n)
	}
	return nil
}

// LoadFEN installs a position in place, best-effort. Unrecognised
// placement characters are skipped, the side defaults to White unless
// the field is "b", and missing or malformed clocks default to 0 and 1.
// It never fails; use NewBoardFromFEN when validation is wanted.
func LoadFEN(b *chess.Board, fen string) {
	b.Clear()

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return
	}

	rank := 7
	file := 0
	for i := 0; i < len(parts[0]) && rank >= 0; i++ {
		c := parts[0][i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, colour := ConvertFENCharToPiece(c)
			if piece != chess.Empty && file < 8 {
				b.Pieces[colour][piece] = b.Pieces[colour][piece].Set(chess.NewSquare(file, rank))
			}
			file++
		}
	}

	if len(parts) >= 2 && parts[1] == "b" {
		b.ToMove = chess.Black
	}
	if len(parts) >= 3 {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				b.Rights.WhiteKingside = true
			case 'Q':
				b.Rights.WhiteQueenside = true
			case 'k':
				b.Rights.BlackKingside = true
			case 'q':
				b.Rights.BlackQueenside = true
			}
		}
	}
	if len(parts) >= 4 {
		if sq, ok := parseSquare(parts[3]); ok {
			b.EnPassant = sq
		}
	}
	if len(parts) >= 5 {
		if n, err := strconv.Atoi(parts[4]); err == nil && n >= 0 {
			b.HalfmoveClock = uint(n)
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n >= 1 {
			b.MoveNumber = uint(n)
		}
	}
}

// parseSquare converts file+rank text ("e4") to a square index.
func parseSquare(s string) (chess.Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, false
	}
	return chess.NewSquare(int(s[0]-'a'), int(s[1]-'1')), true
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewBoard()
}
