package chess

import (
	"iter"

	"github.com/lgbarn/variant-core/internal/errors"
)

// FindAttackersOf returns every piece, of either colour, whose AttackSight
// on loc is legal. Pass checkLegal=false for plain check detection; with
// checkLegal=true pinned attackers are excluded.
func (b *Board) FindAttackersOf(loc Location, checkLegal bool) iter.Seq[BoardPiece] {
	return b.attackers(b.Pieces(), loc, checkLegal)
}

// FindAttackersOfColour is FindAttackersOf restricted to one colour.
func (b *Board) FindAttackersOfColour(loc Location, checkLegal bool, colour Colour) iter.Seq[BoardPiece] {
	pieces := b.PiecesWhere(func(p Piece) bool { return p.Colour == colour })
	return b.attackers(pieces, loc, checkLegal)
}

func (b *Board) attackers(pieces iter.Seq[BoardPiece], loc Location, checkLegal bool) iter.Seq[BoardPiece] {
	return func(yield func(BoardPiece) bool) {
		for bp := range pieces {
			if !bp.AttackSight(loc, checkLegal).IsLegal() {
				continue
			}
			if !yield(bp) {
				return
			}
		}
	}
}

// IsAttackedBy returns true if any piece of the given colour attacks loc.
func (b *Board) IsAttackedBy(loc Location, colour Colour) bool {
	for range b.FindAttackersOfColour(loc, false, colour) {
		return true
	}
	return false
}

// InCheck returns true if the given colour's king is attacked. It panics if
// the colour does not have exactly one king.
func (b *Board) InCheck(colour Colour) bool {
	return b.IsAttackedBy(b.mustFindKing(colour, "in check"), colour.Opposite())
}

// FindKing returns the location of the given colour's king. ok is false if
// there is no king of that colour; with several, the first is returned.
func (b *Board) FindKing(colour Colour) (loc Location, ok bool) {
	for _, p := range b.pieces {
		if p.Colour == colour && p.Shape == King {
			return p.Location, true
		}
	}
	return Location{}, false
}

// mustFindKing returns the location of the only king of the given colour.
// Anything other than exactly one king is a broken caller invariant and
// panics with a *errors.RuleError.
func (b *Board) mustFindKing(colour Colour, op string) Location {
	var (
		loc   Location
		found int
	)
	for _, p := range b.pieces {
		if p.Colour == colour && p.Shape == King {
			loc = p.Location
			found++
		}
	}
	switch found {
	case 1:
		return loc
	case 0:
		panic(&errors.RuleError{Err: errors.ErrMissingKing, Op: op, Piece: colour.String()})
	default:
		panic(&errors.RuleError{Err: errors.ErrMultipleKings, Op: op, Piece: colour.String()})
	}
}

// leavesKingAttacked reports whether moving mover to dest would leave the
// mover's king attacked by the opponent. The move is played on a scratch
// copy: the source is vacated, any occupant of dest is removed and the mover
// stands on dest. Attackers are found with checkLegal=false so the test does
// not recurse.
//
// This covers both ways of exposing a king: a king stepping onto an attacked
// square (the king then stands on dest) and another piece leaving or
// capturing on a line that was shielding the king.
func (b *Board) leavesKingAttacked(mover Piece, dest Location) bool {
	king := b.mustFindKing(mover.Colour, "king safety")
	switch {
	case mover.Shape == King:
		king = dest
	case dest == king:
		// Taking your own king can never leave it safe.
		return true
	}
	return b.withMove(mover.Location, dest).IsAttackedBy(king, mover.Colour.Opposite())
}
