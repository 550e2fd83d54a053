package chess

// SightKind enumerates the possible outcomes of a sight query.
type SightKind int

const (
	// CannotSee means the destination is out of the piece's reach: wrong
	// geometry, blocked line, off the board or the piece's own square.
	CannotSee SightKind = iota
	// SeesEmpty means the piece legally reaches an empty destination.
	SeesEmpty
	// Sees means the piece legally reaches an occupied destination.
	Sees
	// IllegalSeesEmpty means the piece reaches an empty destination but doing
	// so would leave its own king attacked.
	IllegalSeesEmpty
	// IllegalSees means the piece reaches an occupied destination but doing
	// so would leave its own king attacked.
	IllegalSees
)

// String returns the string representation of a sight kind.
func (k SightKind) String() string {
	names := []string{"CannotSee", "SeesEmpty", "Sees", "IllegalSeesEmpty", "IllegalSees"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Sight is the result of a MoveSight or AttackSight query. The occupant is
// only present for Sees and IllegalSees; the zero value is CannotSee.
type Sight struct {
	kind     SightKind
	occupant BoardPiece
}

// newSight builds the final result once geometry and legality are known.
func newSight(occupant BoardPiece, occupied, illegal bool) Sight {
	switch {
	case occupied && !illegal:
		return Sight{kind: Sees, occupant: occupant}
	case occupied && illegal:
		return Sight{kind: IllegalSees, occupant: occupant}
	case illegal:
		return Sight{kind: IllegalSeesEmpty}
	default:
		return Sight{kind: SeesEmpty}
	}
}

// Kind returns which of the five outcomes this is.
func (s Sight) Kind() SightKind {
	return s.kind
}

// IsLegal reports whether the piece can legally reach the destination.
func (s Sight) IsLegal() bool {
	return s.kind == Sees || s.kind == SeesEmpty
}

// Sees reports whether the piece reaches the destination at all, legally
// or not.
func (s Sight) Sees() bool {
	return s.kind != CannotSee
}

// PieceAt returns the piece on the destination for Sees and IllegalSees.
func (s Sight) PieceAt() (BoardPiece, bool) {
	if s.kind == Sees || s.kind == IllegalSees {
		return s.occupant, true
	}
	return BoardPiece{}, false
}

// String returns e.g. "Sees(Black Queen (-1,3))" or "SeesEmpty".
func (s Sight) String() string {
	if p, ok := s.PieceAt(); ok {
		return s.kind.String() + "(" + p.Piece().String() + ")"
	}
	return s.kind.String()
}
