package chess

import "testing"

func TestSquareAccessors(t *testing.T) {
	e4 := NewSquare(4, 3)
	if e4 != 28 {
		t.Errorf("e4 index = %d, want 28", e4)
	}
	if e4.File() != 4 || e4.Rank() != 3 {
		t.Errorf("e4 file/rank = %d/%d", e4.File(), e4.Rank())
	}
	if e4.String() != "e4" {
		t.Errorf("e4.String() = %q", e4.String())
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
	if NoSquare.OnBoard() || Square(64).OnBoard() {
		t.Error("off-board squares reported as on board")
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is not an involution")
	}
}

func TestCastleRightsString(t *testing.T) {
	tests := []struct {
		rights CastleRights
		want   string
	}{
		{AllCastleRights(), "KQkq"},
		{CastleRights{WhiteKingside: true, BlackQueenside: true}, "Kq"},
		{CastleRights{}, "-"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRevokeColour(t *testing.T) {
	r := AllCastleRights()
	r.RevokeColour(White)
	if r.WhiteKingside || r.WhiteQueenside {
		t.Error("white rights should be revoked")
	}
	if !r.BlackKingside || !r.BlackQueenside {
		t.Error("black rights should be untouched")
	}
	r.RevokeColour(Black)
	if r.Any() {
		t.Error("no rights should remain")
	}
}

func TestMovePredicates(t *testing.T) {
	if (Move{}).IsCastle() || (Move{}).IsPromotion() {
		t.Error("zero move should be neither castle nor promotion")
	}
	if !(Move{Castle: Kingside}).IsCastle() {
		t.Error("kingside move should report IsCastle")
	}
	if !(Move{Promotion: Queen}).IsPromotion() {
		t.Error("promotion move should report IsPromotion")
	}
}
