package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit board mask: bit i represents square i.
type Bitboard uint64

const (
	EmptyBB Bitboard = 0

	// FileABB masks file a; other files are left shifts of it.
	FileABB Bitboard = 0x0101010101010101
	// Rank1BB masks rank 1; other ranks are 8-bit shifts of it.
	Rank1BB Bitboard = 0xFF
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return 1 << sq
}

// FileMask returns the mask of the eight squares on the 0-based file.
func FileMask(file int) Bitboard {
	if file < 0 || file > 7 {
		return EmptyBB
	}
	return FileABB << file
}

// RankMask returns the mask of the eight squares on the 0-based rank.
func RankMask(rank int) Bitboard {
	if rank < 0 || rank > 7 {
		return EmptyBB
	}
	return Rank1BB << (rank * 8)
}

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Occupied checks if the square's bit is set.
func (b Bitboard) Occupied(sq Square) bool { return b&SquareBB(sq) != 0 }

// IsEmpty checks if no bits are set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare when empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the highest set square, or NoSquare when empty.
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB returns the lowest set square and the bitboard with it cleared.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	if b == 0 {
		return NoSquare, b
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1)
}

// Draw returns a string visualising the bitboard on a chessboard grid.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Occupied(NewSquare(file, rank)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Ray directions, ordered so the opposite of dir is (dir+4)%8.
const (
	north = iota
	northEast
	east
	southEast
	south
	southWest
	west
	northWest
	numDirections
)

// Precomputed attack tables. Built once by package init, immutable and
// safe for unsynchronised concurrent reads afterwards.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	// pawnAttacks[c][sq]: squares a pawn of colour c on sq attacks.
	pawnAttacks [2][64]Bitboard
	// pawnCaptureSources[c][sq]: squares a pawn of colour c must stand
	// on to capture into sq (the reverse of pawnAttacks).
	pawnCaptureSources [2][64]Bitboard

	// rays[sq][dir]: squares from sq in dir to the board edge,
	// excluding sq itself.
	rays [64][numDirections]Bitboard
)

func init() {
	initLeaperAttacks()
	initPawnAttacks()
	initRays()
}

func onGrid(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// initLeaperAttacks fills the knight and king tables from their move
// offsets, filtered to stay on the 8x8 grid.
func initLeaperAttacks() {
	knightOffsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for sq := Square(0); sq < 64; sq++ {
		file, rank := sq.File(), sq.Rank()

		bb := EmptyBB
		for _, d := range knightOffsets {
			if onGrid(file+d[0], rank+d[1]) {
				bb = bb.Set(NewSquare(file+d[0], rank+d[1]))
			}
		}
		knightAttacks[sq] = bb

		bb = EmptyBB
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				if onGrid(file+df, rank+dr) {
					bb = bb.Set(NewSquare(file+df, rank+dr))
				}
			}
		}
		kingAttacks[sq] = bb
	}
}

// initPawnAttacks fills the per-colour forward-diagonal capture tables
// and their reverse lookups.
func initPawnAttacks() {
	for sq := Square(0); sq < 64; sq++ {
		file, rank := sq.File(), sq.Rank()
		for _, c := range []Colour{White, Black} {
			forward := 1
			if c == Black {
				forward = -1
			}
			attacks := EmptyBB
			sources := EmptyBB
			for _, df := range []int{-1, 1} {
				if onGrid(file+df, rank+forward) {
					attacks = attacks.Set(NewSquare(file+df, rank+forward))
				}
				if onGrid(file+df, rank-forward) {
					sources = sources.Set(NewSquare(file+df, rank-forward))
				}
			}
			pawnAttacks[c][sq] = attacks
			pawnCaptureSources[c][sq] = sources
		}
	}
}

// initRays walks each direction to the board edge, checking file/rank
// deltas to detect wrap-around.
func initRays() {
	steps := [numDirections]int{8, 9, 1, -7, -8, -9, -1, 7}
	for sq := Square(0); sq < 64; sq++ {
		for dir := 0; dir < numDirections; dir++ {
			ray := EmptyBB
			prev := sq
			for {
				next := prev + Square(steps[dir])
				if !next.OnBoard() {
					break
				}
				df := next.File() - prev.File()
				dr := next.Rank() - prev.Rank()
				if df < -1 || df > 1 || dr < -1 || dr > 1 {
					break
				}
				ray = ray.Set(next)
				prev = next
			}
			rays[sq][dir] = ray
		}
	}
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of the given colour on sq
// attacks (forward diagonals only).
func PawnAttacks(c Colour, sq Square) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return pawnAttacks[c][sq]
}

// PawnCaptureSources returns the squares a pawn of the given colour
// must occupy to capture into sq.
func PawnCaptureSources(c Colour, sq Square) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return pawnCaptureSources[c][sq]
}

func isPositiveDir(dir int) bool {
	return dir == north || dir == northEast || dir == east || dir == northWest
}

// sliderAttacks ray-casts from sq in the given directions, stopping at
// (and including) the first occupied square of occ along each ray.
// Slider attacks depend on occupancy and must be recomputed whenever
// occupancy changes, so they are never precomputed.
func sliderAttacks(sq Square, occ Bitboard, dirs []int) Bitboard {
	attacks := EmptyBB
	for _, dir := range dirs {
		ray := rays[sq][dir]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first Square
		if isPositiveDir(dir) {
			first = blockers.LSB()
		} else {
			first = blockers.MSB()
		}
		attacks |= ray &^ rays[first][dir]
	}
	return attacks
}

// RookAttacks returns rook attacks from sq against the given occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return sliderAttacks(sq, occ, []int{north, east, south, west})
}

// BishopAttacks returns bishop attacks from sq against the given occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	if !sq.OnBoard() {
		return EmptyBB
	}
	return sliderAttacks(sq, occ, []int{northEast, southEast, southWest, northWest})
}

// QueenAttacks returns queen attacks from sq against the given occupancy.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}
