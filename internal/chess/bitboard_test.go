package chess

import "testing"

func TestSquareBBAndMasks(t *testing.T) {
	if SquareBB(A1) != 1 {
		t.Errorf("SquareBB(A1) = %x, want 1", SquareBB(A1))
	}
	if SquareBB(H8) != 1<<63 {
		t.Errorf("SquareBB(H8) = %x, want bit 63", SquareBB(H8))
	}
	if SquareBB(NoSquare) != EmptyBB {
		t.Error("SquareBB(NoSquare) should be empty")
	}
	if FileMask(4) != FileABB<<4 {
		t.Errorf("FileMask(4) = %x", FileMask(4))
	}
	if RankMask(0) != Rank1BB {
		t.Errorf("RankMask(0) = %x", RankMask(0))
	}
	if FileMask(8) != EmptyBB || RankMask(-1) != EmptyBB {
		t.Error("out-of-range masks should be empty")
	}
}

func TestBitboardOps(t *testing.T) {
	bb := EmptyBB.Set(E1).Set(E1).Set(A8)
	if bb.PopCount() != 2 {
		t.Errorf("PopCount = %d, want 2", bb.PopCount())
	}
	if !bb.Occupied(E1) || !bb.Occupied(A8) {
		t.Error("expected e1 and a8 occupied")
	}
	if bb.LSB() != E1 {
		t.Errorf("LSB = %v, want e1", bb.LSB())
	}
	if bb.MSB() != A8 {
		t.Errorf("MSB = %v, want a8", bb.MSB())
	}

	sq, rest := bb.PopLSB()
	if sq != E1 || rest != SquareBB(A8) {
		t.Errorf("PopLSB = %v, %x", sq, rest)
	}

	if !bb.Clear(E1).Clear(A8).IsEmpty() {
		t.Error("expected empty after clearing both squares")
	}
	if sq, _ := EmptyBB.PopLSB(); sq != NoSquare {
		t.Error("PopLSB on empty should return NoSquare")
	}
}

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq      Square
		squares []Square
	}{
		{A1, []Square{NewSquare(1, 2), NewSquare(2, 1)}},
		{NewSquare(4, 3), []Square{ // e4
			NewSquare(3, 5), NewSquare(5, 5), NewSquare(2, 4), NewSquare(6, 4),
			NewSquare(2, 2), NewSquare(6, 2), NewSquare(3, 1), NewSquare(5, 1),
		}},
		{H8, []Square{NewSquare(5, 6), NewSquare(6, 5)}},
	}
	for _, tt := range tests {
		want := EmptyBB
		for _, sq := range tt.squares {
			want = want.Set(sq)
		}
		if got := KnightAttacks(tt.sq); got != want {
			t.Errorf("KnightAttacks(%v):\ngot\n%s\nwant\n%s", tt.sq, got.Draw(), want.Draw())
		}
	}
}

func TestKingAttacks(t *testing.T) {
	if got := KingAttacks(A1).PopCount(); got != 3 {
		t.Errorf("corner king attacks %d squares, want 3", got)
	}
	if got := KingAttacks(E1).PopCount(); got != 5 {
		t.Errorf("edge king attacks %d squares, want 5", got)
	}
	if got := KingAttacks(NewSquare(4, 3)).PopCount(); got != 8 {
		t.Errorf("central king attacks %d squares, want 8", got)
	}
}

func TestPawnAttacks(t *testing.T) {
	e4 := NewSquare(4, 3)
	want := EmptyBB.Set(NewSquare(3, 4)).Set(NewSquare(5, 4))
	if got := PawnAttacks(White, e4); got != want {
		t.Errorf("white pawn on e4 attacks:\n%s", got.Draw())
	}

	// No wrap-around on the a file.
	a4 := NewSquare(0, 3)
	if got := PawnAttacks(White, a4); got != EmptyBB.Set(NewSquare(1, 4)) {
		t.Errorf("white pawn on a4 attacks:\n%s", got.Draw())
	}

	// Capture sources are the reverse lookup.
	want = EmptyBB.Set(NewSquare(3, 2)).Set(NewSquare(5, 2))
	if got := PawnCaptureSources(White, e4); got != want {
		t.Errorf("capture sources into e4:\n%s", got.Draw())
	}

	want = EmptyBB.Set(NewSquare(3, 4)).Set(NewSquare(5, 4))
	if got := PawnCaptureSources(Black, e4); got != want {
		t.Errorf("black capture sources into e4:\n%s", got.Draw())
	}
}

func TestRookAttacksBlockers(t *testing.T) {
	e4 := NewSquare(4, 3)

	// Empty board: full rank and file minus the rook's square.
	want := (FileMask(4) | RankMask(3)) &^ SquareBB(e4)
	if got := RookAttacks(e4, EmptyBB); got != want {
		t.Errorf("rook on empty board:\n%s", got.Draw())
	}

	// A blocker on e6 stops the northern ray at e6 inclusive.
	occ := EmptyBB.Set(NewSquare(4, 5))
	got := RookAttacks(e4, occ)
	if !got.Occupied(NewSquare(4, 5)) {
		t.Error("attack set should include the blocker square")
	}
	if got.Occupied(NewSquare(4, 6)) || got.Occupied(NewSquare(4, 7)) {
		t.Error("attack set should stop at the blocker")
	}
}

func TestBishopAttacksBlockers(t *testing.T) {
	c1 := NewSquare(2, 0)
	occ := EmptyBB.Set(NewSquare(4, 2)) // blocker on e3

	got := BishopAttacks(c1, occ)
	if !got.Occupied(NewSquare(3, 1)) || !got.Occupied(NewSquare(4, 2)) {
		t.Error("bishop should reach d2 and the blocker on e3")
	}
	if got.Occupied(NewSquare(5, 3)) {
		t.Error("bishop should not see past the blocker")
	}
	if !got.Occupied(NewSquare(1, 1)) || !got.Occupied(NewSquare(0, 2)) {
		t.Error("bishop should see the unblocked b2-a3 diagonal")
	}
}

func TestQueenAttacks(t *testing.T) {
	d4 := NewSquare(3, 3)
	if got, want := QueenAttacks(d4, EmptyBB), RookAttacks(d4, EmptyBB)|BishopAttacks(d4, EmptyBB); got != want {
		t.Error("queen attacks should be the rook and bishop union")
	}
	if got := QueenAttacks(d4, EmptyBB).PopCount(); got != 27 {
		t.Errorf("queen on d4, empty board: %d squares, want 27", got)
	}
}
