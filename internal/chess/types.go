// Package chess provides the board model and movement rules of the variant
// engine: pieces on a zero-centred grid, per-shape sight queries, attacker
// enumeration and the king-safety legality gate.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step a pawn of this colour advances by:
// +1 for White, -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Shape identifies the kind of a piece.
type Shape int

const (
	Pawn Shape = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// Shapes lists every shape in declaration order.
var Shapes = [...]Shape{Pawn, Rook, Knight, Bishop, Queen, King}

// String returns the string representation of a shape.
func (s Shape) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a shape (uppercase).
func (s Shape) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if s >= 0 && int(s) < len(letters) {
		return letters[s]
	}
	return '?'
}

// Location is a square on the board. Coordinates are centred on the middle
// of the board: on 8x8 both File and Rank run from -4 to 3, with White's back
// rank at -4.
type Location struct {
	File int
	Rank int
}

// Loc is shorthand for Location{File: file, Rank: rank}.
func Loc(file, rank int) Location {
	return Location{File: file, Rank: rank}
}

// Offset returns the location df files and dr ranks away.
func (l Location) Offset(df, dr int) Location {
	return Location{File: l.File + df, Rank: l.Rank + dr}
}

// String returns the coordinate pair, e.g. "(0,-4)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.File, l.Rank)
}

// Square returns the algebraic name of the location on a standard 8x8 board,
// e.g. "e1" for (0,-4). Locations outside that board fall back to String.
func (l Location) Square() string {
	col := l.File + 4
	rank := l.Rank + 4
	if col < 0 || col >= 8 || rank < 0 || rank >= 8 {
		return l.String()
	}
	return string([]byte{byte('a' + col), byte('1' + rank)})
}

// ParseSquare converts an algebraic square name such as "e1" to a location
// on a standard 8x8 board.
func ParseSquare(s string) (Location, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Location{}, false
	}
	return Loc(int(s[0]-'a')-4, int(s[1]-'1')-4), true
}

// Piece is a piece on the board. It is a plain value; two pieces of the
// same colour and shape are told apart only by location.
type Piece struct {
	Colour   Colour
	Shape    Shape
	Location Location
}

// String returns e.g. "White Rook (0,-4)".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Shape, p.Location)
}

// CastleEntry records whether a colour's king and rooks have left their home
// squares. The core only stores these flags; the move-application layer sets
// them and they are never reset.
type CastleEntry struct {
	KingMoved          bool
	KingsideRookMoved  bool
	QueensideRookMoved bool
}

// CanCastleKingside reports whether neither the king nor the kingside rook
// has moved. It says nothing about check or occupied squares.
func (e CastleEntry) CanCastleKingside() bool {
	return !e.KingMoved && !e.KingsideRookMoved
}

// CanCastleQueenside reports whether neither the king nor the queenside rook
// has moved.
func (e CastleEntry) CanCastleQueenside() bool {
	return !e.KingMoved && !e.QueensideRookMoved
}

// CastleData holds one CastleEntry per colour.
type CastleData struct {
	White CastleEntry
	Black CastleEntry
}

// ForColour returns the entry for the given colour. The pointer aliases the
// CastleData so callers can update the flags in place.
func (c *CastleData) ForColour(colour Colour) *CastleEntry {
	if colour == White {
		return &c.White
	}
	return &c.Black
}
