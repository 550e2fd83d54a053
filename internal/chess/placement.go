package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/variant-core/internal/errors"
)

// StartPlacement is the piece-placement field of the standard start position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ShapeFromLetter converts a placement character to a shape. Case is ignored.
func ShapeFromLetter(c byte) (Shape, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'P', 'p':
		return Pawn, true
	default:
		return 0, false
	}
}

// NewBoardFromPlacement builds an 8x8 board from the piece-placement field of
// a FEN string. Only the first whitespace-separated field is read, so a full
// FEN is accepted; side to move, castling and clocks are ignored. Ranks are
// listed from Black's back rank (3) down to White's (-4), files from -4.
//
// Castling bookkeeping starts fresh; callers set it through Castling.
func NewBoardFromPlacement(placement string) (*Board, error) {
	fields := strings.Fields(placement)
	if len(fields) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidPosition, "empty placement")
	}

	b := NewBlankBoard()
	geometry := b.Config()
	rank := geometry.MaxRank()
	file := geometry.MinFile()

	for _, c := range fields[0] {
		switch {
		case c == '/':
			if file != geometry.MaxFile()+1 {
				return nil, errors.Wrapf(errors.ErrInvalidPosition, "rank %d has %d files",
					rank, file-geometry.MinFile())
			}
			rank--
			file = geometry.MinFile()
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			shape, ok := ShapeFromLetter(byte(c))
			if !ok {
				return nil, errors.Wrapf(errors.ErrInvalidPosition, "invalid piece character: %c", c)
			}
			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			if err := b.Place(Piece{colour, shape, Loc(file, rank)}); err != nil {
				// Keeps both the placement sentinel and the Place failure.
				return nil, fmt.Errorf("%w: %w", errors.ErrInvalidPosition, err)
			}
			file++
		}
	}

	if rank != geometry.MinRank() || file != geometry.MaxFile()+1 {
		return nil, errors.Wrap(errors.ErrInvalidPosition, "placement does not cover the board")
	}
	return b, nil
}

// Placement renders the board as a FEN piece-placement field. Only
// meaningful for 8x8 boards.
func (b *Board) Placement() string {
	geometry := b.Config()
	var sb strings.Builder
	for rank := geometry.MaxRank(); rank >= geometry.MinRank(); rank-- {
		empty := 0
		for file := geometry.MinFile(); file <= geometry.MaxFile(); file++ {
			bp, ok := b.PieceAt(Loc(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := bp.Shape().Letter()
			if bp.Colour() == Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > geometry.MinRank() {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
