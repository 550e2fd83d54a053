package chess

// canPieceReach checks whether a piece of the given shape and colour standing
// on from reaches to on b. attack selects the pawn's capture geometry. from
// and to are assumed distinct.
func canPieceReach(b *Board, shape Shape, colour Colour, from, to Location, attack bool) bool {
	colDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)

	switch shape {
	case Pawn:
		if to.Rank-from.Rank != colour.Forward() {
			return false
		}
		if attack {
			return colDiff == 1
		}
		return colDiff == 0

	case Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(b, from, to)

	case Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(b, from, to)

	case Queen:
		if colDiff == rankDiff || colDiff == 0 || rankDiff == 0 {
			return isPathClear(b, from, to)
		}
		return false

	case King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must lie on a common rank, file or diagonal.
func isPathClear(b *Board, from, to Location) bool {
	colDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	for loc := from.Offset(colDir, rankDir); loc != to; loc = loc.Offset(colDir, rankDir) {
		if b.occupied(loc) {
			return false
		}
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
