package chess

// BoardPiece is a piece viewed in the context of the board it stands on. It
// holds a copy of the piece and a reference to the board, and is only valid
// until the board is next mutated.
type BoardPiece struct {
	piece Piece
	board *Board
}

// Piece returns the underlying piece value.
func (bp BoardPiece) Piece() Piece { return bp.piece }

// Colour returns the piece's colour.
func (bp BoardPiece) Colour() Colour { return bp.piece.Colour }

// Shape returns the piece's shape.
func (bp BoardPiece) Shape() Shape { return bp.piece.Shape }

// Location returns where the piece stands.
func (bp BoardPiece) Location() Location { return bp.piece.Location }

// Board returns the board the piece belongs to.
func (bp BoardPiece) Board() *Board { return bp.board }

// MoveSight reports whether the piece can move to dest.
//
// Geometry is checked first: pawns step one rank forward on their own file,
// rooks and bishops slide along unblocked lines and diagonals, queens do
// either, knights jump, kings step one square. A destination that fails this
// check, is off the board or is the piece's own square gives CannotSee.
//
// With checkLegal set, a reachable destination is then tested against the
// mover's king safety: if the move would leave that king attacked the result
// is IllegalSees or IllegalSeesEmpty instead of Sees or SeesEmpty. Without
// checkLegal every reachable destination is reported as legal.
//
// The colour of an occupant is not inspected; callers reject captures of
// their own pieces.
func (bp BoardPiece) MoveSight(dest Location, checkLegal bool) Sight {
	return bp.sight(dest, checkLegal, false)
}

// AttackSight reports whether the piece threatens dest. It differs from
// MoveSight only for pawns, which attack one square diagonally forward and
// never straight ahead.
func (bp BoardPiece) AttackSight(dest Location, checkLegal bool) Sight {
	return bp.sight(dest, checkLegal, true)
}

func (bp BoardPiece) sight(dest Location, checkLegal, attack bool) Sight {
	from := bp.Location()
	if dest == from || !bp.board.Contains(dest) {
		return Sight{}
	}
	if !canPieceReach(bp.board, bp.Shape(), bp.Colour(), from, dest, attack) {
		return Sight{}
	}

	illegal := checkLegal && bp.board.leavesKingAttacked(bp.piece, dest)

	occupant, occupied := bp.board.PieceAt(dest)
	return newSight(occupant, occupied, illegal)
}
