package hashing

import "github.com/lgbarn/chesscore-go/internal/chess"

// zobristSeed seeds the key generator. It is fixed so the same
// position always hashes to the same key across runs and hosts.
const zobristSeed = 0x5eed

// mulberry32 is a small deterministic 32-bit PRNG used only to fill
// the Zobrist key tables.
type mulberry32 struct {
	state uint32
}

func (m *mulberry32) next() uint32 {
	m.state += 0x6d2b79f5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t >> 7
	t ^= t >> 12
	return t
}

// next64 builds a 64-bit key from two successive 32-bit draws, low
// word first.
func (m *mulberry32) next64() uint64 {
	lo := uint64(m.next())
	hi := uint64(m.next())
	return lo | hi<<32
}

// Zobrist key tables. pieceKeys is indexed by square, then by piece
// slot: the six white pieces pawn through king, then the six black
// pieces in the same order.
var (
	pieceKeys  [64][12]uint64
	sideKey    uint64
	castleKeys [4]uint64
	epFileKeys [8]uint64
)

func init() {
	rng := mulberry32{state: zobristSeed}
	for sq := 0; sq < 64; sq++ {
		for slot := 0; slot < 12; slot++ {
			pieceKeys[sq][slot] = rng.next64()
		}
	}
	sideKey = rng.next64()
	for i := range castleKeys {
		castleKeys[i] = rng.next64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.next64()
	}
}

// pieceSlot maps a coloured piece to its index in pieceKeys.
func pieceSlot(p chess.Piece, c chess.Colour) int {
	return int(p-chess.Pawn) + 6*int(c)
}
