// Package chess provides the core bitboard position types.
package chess

// Colour represents the colour of a piece or player.
// White is 0 and Black is 1 so a Colour can index per-colour tables.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // Empty square / no piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) > 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Square is a board square index: rank*8 + file, a1 = 0 ... h8 = 63.
type Square int

// NoSquare marks an absent square (e.g. no en passant target).
const NoSquare Square = -1

// Named squares used by castling and the castling-rights bookkeeping.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from 0-based file and rank indices.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the 0-based file index (0 = file a).
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the 0-based rank index (0 = rank 1).
func (sq Square) Rank() int {
	return int(sq) / 8
}

// OnBoard reports whether the square index is within 0..63.
func (sq Square) OnBoard() bool {
	return sq >= 0 && sq < 64
}

// String returns the square in file+rank form, e.g. "e4".
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// CastleSide identifies the board edge of a castling move.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// CastleRights holds the four independent castling permissions.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastleRights returns the rights of the starting position.
func AllCastleRights() CastleRights {
	return CastleRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Any reports whether at least one right is still held.
func (r CastleRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// RevokeColour clears both rights of the given colour.
func (r *CastleRights) RevokeColour(c Colour) {
	if c == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
}

// String returns the FEN representation of the rights ("KQkq" subset or "-").
func (r CastleRights) String() string {
	var buf []byte
	if r.WhiteKingside {
		buf = append(buf, 'K')
	}
	if r.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if r.BlackKingside {
		buf = append(buf, 'k')
	}
	if r.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Move is a concrete, already-resolved move. It carries no text and is
// not retained by the board; callers needing undo must snapshot the
// board themselves (see Board.SaveState).
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// The castling side (NoCastle for ordinary moves). From and To
	// still hold the king's squares for castling moves.
	Castle CastleSide

	// Whether this is an en passant capture.
	EnPassant bool
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}
