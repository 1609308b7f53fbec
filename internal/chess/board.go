package chess

// Board represents a chess position with all state needed to apply
// moves, serialise FEN, and hash. Each Board is an independent,
// exclusively-owned mutable value: no locking is done here, a host
// serialising access to each Board is responsible for any cross-thread
// coordination.
type Board struct {
	// Piece bitboards indexed by [Colour][Piece]; the Empty slot is
	// unused. At most one bit is set across all twelve boards for any
	// square.
	Pieces [2][King + 1]Bitboard

	// Who has the next move.
	ToMove Colour

	// The four castling permissions.
	Rights CastleRights

	// En passant target square, NoSquare unless the immediately
	// preceding move was a two-square pawn advance.
	EnPassant Square

	// The half-move clock since the last pawn move or capture. The
	// engine stores and serialises it; maintaining it is caller-driven.
	HalfmoveClock uint

	// The current full move number, incremented after each Black move.
	MoveNumber uint
}

// Starting-position piece masks.
const (
	whitePawnsStart   Bitboard = 0x000000000000FF00
	whiteKnightsStart Bitboard = 0x0000000000000042
	whiteBishopsStart Bitboard = 0x0000000000000024
	whiteRooksStart   Bitboard = 0x0000000000000081
	whiteQueensStart  Bitboard = 0x0000000000000008
	whiteKingsStart   Bitboard = 0x0000000000000010
	blackPawnsStart   Bitboard = 0x00FF000000000000
	blackKnightsStart Bitboard = 0x4200000000000000
	blackBishopsStart Bitboard = 0x2400000000000000
	blackRooksStart   Bitboard = 0x8100000000000000
	blackQueensStart  Bitboard = 0x0800000000000000
	blackKingsStart   Bitboard = 0x1000000000000000
)

// NewBoard creates a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard creates a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	return &Board{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// Reset restores the standard starting position in place.
func (b *Board) Reset() {
	*b = Board{
		ToMove:     White,
		Rights:     AllCastleRights(),
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	b.Pieces[White][Pawn] = whitePawnsStart
	b.Pieces[White][Knight] = whiteKnightsStart
	b.Pieces[White][Bishop] = whiteBishopsStart
	b.Pieces[White][Rook] = whiteRooksStart
	b.Pieces[White][Queen] = whiteQueensStart
	b.Pieces[White][King] = whiteKingsStart
	b.Pieces[Black][Pawn] = blackPawnsStart
	b.Pieces[Black][Knight] = blackKnightsStart
	b.Pieces[Black][Bishop] = blackBishopsStart
	b.Pieces[Black][Rook] = blackRooksStart
	b.Pieces[Black][Queen] = blackQueensStart
	b.Pieces[Black][King] = blackKingsStart
}

// Clear removes every piece and resets the metadata to an empty board.
func (b *Board) Clear() {
	*b = *NewEmptyBoard()
}

// Occupancy returns the union of the given colour's piece bitboards.
func (b *Board) Occupancy(c Colour) Bitboard {
	occ := EmptyBB
	for p := Pawn; p <= King; p++ {
		occ |= b.Pieces[c][p]
	}
	return occ
}

// AllOccupancy returns the union of both colours' occupancy.
func (b *Board) AllOccupancy() Bitboard {
	return b.Occupancy(White) | b.Occupancy(Black)
}

// PieceAt returns the piece and colour occupying sq, or (Empty, White)
// for a vacant or off-board square.
func (b *Board) PieceAt(sq Square) (Piece, Colour) {
	bit := SquareBB(sq)
	if bit == 0 {
		return Empty, White
	}
	for _, c := range []Colour{White, Black} {
		for p := Pawn; p <= King; p++ {
			if b.Pieces[c][p]&bit != 0 {
				return p, c
			}
		}
	}
	return Empty, White
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// BoardState captures all mutable board state for save/restore. The
// board is a plain value, so saving is a struct copy; this is the
// snapshot primitive for callers that need undo.
type BoardState Board

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState(*b)
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	*b = Board(s)
}
