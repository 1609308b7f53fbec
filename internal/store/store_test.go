package store

import (
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func openTestStore(t *testing.T) *PositionStore {
	t.Helper()
	s, err := Open(t.TempDir())
	testutil.AssertNoError(t, err, "open store")
	t.Cleanup(func() { s.Close() }) //nolint:errcheck
	return s
}

func TestRecordAndLoad(t *testing.T) {
	s := openTestStore(t)
	b := chess.NewBoard()

	key, err := s.Record(b)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, key, hashing.GenerateZobristHash(b))

	rec, err := s.Load(key)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, rec.Zobrist, key)
	testutil.AssertEqual(t, rec.Seen, 1)
}

func TestRecordIncrementsSeen(t *testing.T) {
	s := openTestStore(t)
	b := chess.NewBoard()

	key, err := s.Record(b)
	testutil.AssertNoError(t, err)
	_, err = s.Record(b)
	testutil.AssertNoError(t, err)

	rec, err := s.Load(key)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Seen, 2)
}

func TestHas(t *testing.T) {
	s := openTestStore(t)
	b := chess.NewBoard()

	ok, err := s.Has(hashing.GenerateZobristHash(b))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok, "unrecorded position")

	key, err := s.Record(b)
	testutil.AssertNoError(t, err)

	ok, err = s.Has(key)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "recorded position")
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load(0xdeadbeef)
	testutil.AssertErrorIs(t, err, badger.ErrKeyNotFound)
}

func TestBoardRoundTrip(t *testing.T) {
	s := openTestStore(t)

	b, err := engine.NewBoardFromFEN("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")
	testutil.AssertNoError(t, err)

	key, err := s.Record(b)
	testutil.AssertNoError(t, err)

	got, err := s.Board(key)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, *got, *b)
}

func TestLen(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Len()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 0)

	b := chess.NewBoard()
	_, err = s.Record(b)
	testutil.AssertNoError(t, err)

	b2, err := engine.NewBoardFromFEN("8/8/8/8/8/4k3/8/4K2R w K - 12 60")
	testutil.AssertNoError(t, err)
	_, err = s.Record(b2)
	testutil.AssertNoError(t, err)

	// Re-recording an existing position adds no new key.
	_, err = s.Record(b)
	testutil.AssertNoError(t, err)

	n, err = s.Len()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 2)
}
