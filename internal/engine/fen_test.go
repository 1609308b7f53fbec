package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestBoardToFENInitial(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(chess.NewBoard()), InitialFEN)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4",
		"8/8/8/8/8/4k3/8/4K2R w K - 12 60",
		"8/P7/8/8/8/8/k6K/8 w - - 0 70",
	}
	for _, fen := range fens {
		b, err := NewBoardFromFEN(fen)
		testutil.AssertNoError(t, err, "parse %q", fen)
		testutil.AssertEqual(t, BoardToFEN(b), fen, "round trip")
	}
}

func TestNewBoardFromFENFields(t *testing.T) {
	b, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, b.ToMove, chess.Black)
	testutil.AssertEqual(t, b.EnPassant, chess.NewSquare(4, 2))
	testutil.AssertTrue(t, b.Pieces[chess.White][chess.Pawn].Occupied(chess.NewSquare(4, 3)), "pawn on e4")
	testutil.AssertEqual(t, b.Rights, chess.AllCastleRights())
}

func TestNewBoardFromFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", "   "},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1"},
		{"overfull rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w KQxq - 0 1"},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - e9 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"zero fullmove", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertError(t, err)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestLoadFENLenient(t *testing.T) {
	b := chess.NewBoard()

	// Unknown placement characters are skipped but still advance the
	// file, and malformed clocks fall back to the defaults.
	LoadFEN(b, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x y")
	testutil.AssertEqual(t, b.HalfmoveClock, uint(0))
	testutil.AssertEqual(t, b.MoveNumber, uint(1))
	testutil.AssertEqual(t, BoardToFEN(b), InitialFEN)

	LoadFEN(b, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e6 3 9")
	testutil.AssertEqual(t, b.ToMove, chess.Black)
	testutil.AssertEqual(t, b.EnPassant, chess.NewSquare(4, 5))
	testutil.AssertEqual(t, b.HalfmoveClock, uint(3))
	testutil.AssertEqual(t, b.MoveNumber, uint(9))
}

func TestLoadFENClearsPrevious(t *testing.T) {
	b := chess.NewBoard()
	LoadFEN(b, "8/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, b.AllOccupancy().PopCount(), 1)
	testutil.AssertFalse(t, b.Rights.Any(), "rights should be cleared")
}

func TestLoadFENEmptyInput(t *testing.T) {
	b := chess.NewBoard()
	LoadFEN(b, "")
	testutil.AssertTrue(t, b.AllOccupancy().IsEmpty(), "empty input leaves an empty board")
}

func TestConvertFENCharToPiece(t *testing.T) {
	p, c := ConvertFENCharToPiece('Q')
	testutil.AssertEqual(t, p, chess.Queen)
	testutil.AssertEqual(t, c, chess.White)

	p, c = ConvertFENCharToPiece('n')
	testutil.AssertEqual(t, p, chess.Knight)
	testutil.AssertEqual(t, c, chess.Black)

	p, _ = ConvertFENCharToPiece('z')
	testutil.AssertEqual(t, p, chess.Empty)
}
