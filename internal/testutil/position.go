package testutil

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/variant-core/internal/chess"
)

// MustBoard builds a board from a FEN piece-placement field and calls
// t.Fatal if the placement is invalid.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	b, err := chess.NewBoardFromPlacement(placement)
	if err != nil {
		t.Fatalf("NewBoardFromPlacement(%q): %v", placement, err)
	}
	return b
}

// BlankWith returns a blank 8x8 board holding exactly the given pieces and
// calls t.Fatal if any of them cannot be placed.
func BlankWith(t *testing.T, pieces ...chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBlankBoard()
	for _, p := range pieces {
		if err := b.Place(p); err != nil {
			t.Fatalf("Place(%v): %v", p, err)
		}
	}
	return b
}

// MustPieceAt returns the piece on loc and calls t.Fatal if the square is
// empty.
func MustPieceAt(t *testing.T, b *chess.Board, loc chess.Location) chess.BoardPiece {
	t.Helper()
	bp, ok := b.PieceAt(loc)
	if !ok {
		t.Fatalf("PieceAt(%v): no piece", loc)
	}
	return bp
}

// AssertSight fails unless got has the wanted kind. For Sees and IllegalSees
// the occupant is compared against occupant when occupant is non-nil.
func AssertSight(t *testing.T, got chess.Sight, want chess.SightKind, occupant *chess.Piece, msgAndArgs ...interface{}) {
	t.Helper()
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		msg = "sight"
	}
	if got.Kind() != want {
		t.Errorf("%s = %v, want %v", msg, got, want)
		return
	}
	if occupant == nil {
		return
	}
	bp, ok := got.PieceAt()
	if !ok {
		t.Errorf("%s = %v, want occupant %v", msg, got, *occupant)
		return
	}
	if diff := cmp.Diff(*occupant, bp.Piece()); diff != "" {
		t.Errorf("%s occupant mismatch (-want +got):\n%s", msg, diff)
	}
}

// Pieces collects the piece values of a sequence of board pieces.
func Pieces(seq iter.Seq[chess.BoardPiece]) []chess.Piece {
	var out []chess.Piece
	for bp := range seq {
		out = append(out, bp.Piece())
	}
	return out
}
