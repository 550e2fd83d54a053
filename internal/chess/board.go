package chess

import (
	"fmt"
	"iter"

	"github.com/lgbarn/variant-core/internal/config"
	"github.com/lgbarn/variant-core/internal/errors"
)

// Board holds every piece in play together with the castling bookkeeping.
//
// Pieces are kept in insertion order, which is also the iteration order of
// Pieces, PiecesWhere and the attacker queries. At most one piece may stand
// on a location; Place and Relocate enforce this.
//
// Queries never modify the board. A Board may be read from several goroutines
// at once as long as nobody mutates it at the same time.
type Board struct {
	pieces   []Piece
	castling CastleData
	geometry *config.BoardConfig
}

// backRank lists the back-rank shapes by file, from file -4 to file 3.
var backRank = [...]Shape{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a board with the standard starting position on the
// centred 8x8 grid. White's back rank is -4 with pawns on -3; Black's back
// rank is 3 with pawns on 2.
func NewBoard() *Board {
	b := NewBlankBoard()
	b.pieces = make([]Piece, 0, 32)

	homeRanks := []struct {
		colour   Colour
		baseRank int
		pawnRank int
	}{
		{White, -4, -3},
		{Black, 3, 2},
	}

	for _, home := range homeRanks {
		for file := -4; file <= 3; file++ {
			b.pieces = append(b.pieces, Piece{home.colour, Pawn, Loc(file, home.pawnRank)})
		}
		for i, shape := range backRank {
			b.pieces = append(b.pieces, Piece{home.colour, shape, Loc(i-4, home.baseRank)})
		}
	}
	return b
}

// NewBlankBoard creates an empty 8x8 board with fresh castling bookkeeping.
func NewBlankBoard() *Board {
	return &Board{geometry: config.NewBoardConfig()}
}

// NewBlankBoardWithConfig creates an empty board with the given geometry.
func NewBlankBoardWithConfig(cfg *config.BoardConfig) (*Board, error) {
	if cfg == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "nil board config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	geometry := *cfg
	return &Board{geometry: &geometry}, nil
}

// Config returns the board geometry.
func (b *Board) Config() config.BoardConfig {
	return *b.geometry
}

// Contains reports whether loc lies on the board.
func (b *Board) Contains(loc Location) bool {
	return b.geometry.Contains(loc.File, loc.Rank)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// Castling returns the castling bookkeeping for in-place updates.
func (b *Board) Castling() *CastleData {
	return &b.castling
}

// PieceAt returns the piece standing on loc, if any.
func (b *Board) PieceAt(loc Location) (BoardPiece, bool) {
	if i := b.indexAt(loc); i >= 0 {
		return b.boardPiece(b.pieces[i]), true
	}
	return BoardPiece{}, false
}

// occupied reports whether any piece stands on loc.
func (b *Board) occupied(loc Location) bool {
	return b.indexAt(loc) >= 0
}

// indexAt returns the slice index of the piece on loc, or -1.
func (b *Board) indexAt(loc Location) int {
	for i := range b.pieces {
		if b.pieces[i].Location == loc {
			return i
		}
	}
	return -1
}

// Pieces returns every piece in storage order. The sequence may be ranged
// over any number of times.
func (b *Board) Pieces() iter.Seq[BoardPiece] {
	return func(yield func(BoardPiece) bool) {
		for _, p := range b.pieces {
			if !yield(b.boardPiece(p)) {
				return
			}
		}
	}
}

// PiecesWhere returns the pieces for which keep returns true, in storage
// order. keep is evaluated lazily as the sequence is consumed.
func (b *Board) PiecesWhere(keep func(Piece) bool) iter.Seq[BoardPiece] {
	return func(yield func(BoardPiece) bool) {
		for _, p := range b.pieces {
			if !keep(p) {
				continue
			}
			if !yield(b.boardPiece(p)) {
				return
			}
		}
	}
}

// Place adds a piece to the board. It fails if the location is off the board
// or already occupied.
func (b *Board) Place(p Piece) error {
	if !b.Contains(p.Location) {
		return &errors.RuleError{Err: errors.ErrOffBoard, Op: "place", Piece: pieceName(p), Location: p.Location.String()}
	}
	if occupant, ok := b.PieceAt(p.Location); ok {
		return &errors.RuleError{
			Err:      fmt.Errorf("%w by %s", errors.ErrOccupiedSquare, pieceName(occupant.Piece())),
			Op:       "place",
			Piece:    pieceName(p),
			Location: p.Location.String(),
		}
	}
	b.pieces = append(b.pieces, p)
	return nil
}

// Remove takes the piece on loc off the board and returns it. The order of
// the remaining pieces is preserved.
func (b *Board) Remove(loc Location) (Piece, bool) {
	i := b.indexAt(loc)
	if i < 0 {
		return Piece{}, false
	}
	p := b.pieces[i]
	b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
	return p, true
}

// Relocate moves the piece on from to to, removing whatever stood on to.
// It returns the captured piece, if any. Castling bookkeeping is left to the
// caller.
func (b *Board) Relocate(from, to Location) (captured Piece, didCapture bool, err error) {
	if !b.Contains(to) {
		return Piece{}, false, &errors.RuleError{Err: errors.ErrOffBoard, Op: "relocate", Location: to.String()}
	}
	if b.indexAt(from) < 0 {
		return Piece{}, false, &errors.RuleError{Err: errors.ErrEmptySquare, Op: "relocate", Location: from.String()}
	}
	if from == to {
		return Piece{}, false, nil
	}
	captured, didCapture = b.Remove(to)
	b.pieces[b.indexAt(from)].Location = to
	return captured, didCapture, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	pieces := make([]Piece, len(b.pieces))
	copy(pieces, b.pieces)
	return &Board{
		pieces:   pieces,
		castling: b.castling,
		geometry: b.geometry,
	}
}

// withMove returns a scratch board on which the piece at from stands on to
// and any piece previously on to is gone. The receiver is not modified.
func (b *Board) withMove(from, to Location) *Board {
	scratch := &Board{
		pieces:   make([]Piece, 0, len(b.pieces)),
		castling: b.castling,
		geometry: b.geometry,
	}
	for _, p := range b.pieces {
		switch p.Location {
		case from:
			p.Location = to
		case to:
			continue
		}
		scratch.pieces = append(scratch.pieces, p)
	}
	return scratch
}

func (b *Board) boardPiece(p Piece) BoardPiece {
	return BoardPiece{piece: p, board: b}
}

func pieceName(p Piece) string {
	return p.Colour.String() + " " + p.Shape.String()
}
