package chess_test

import (
	"testing"

	"github.com/lgbarn/variant-core/internal/chess"
	rcerrors "github.com/lgbarn/variant-core/internal/errors"
	"github.com/lgbarn/variant-core/internal/testutil"
)

func TestFindAttackersOf_RookOnOpenFile(t *testing.T) {
	t.Parallel()

	rook := piece(chess.White, chess.Rook, 0, -4)
	king := piece(chess.Black, chess.King, 0, 3)
	b := testutil.BlankWith(t, rook, king)

	got := testutil.Pieces(b.FindAttackersOfColour(king.Location, false, chess.White))
	testutil.AssertEqual(t, got, []chess.Piece{rook})

	got = testutil.Pieces(b.FindAttackersOf(king.Location, false))
	testutil.AssertEqual(t, got, []chess.Piece{rook}, "no colour filter")

	got = testutil.Pieces(b.FindAttackersOfColour(king.Location, false, chess.Black))
	testutil.AssertEqual(t, len(got), 0, "black attackers")
}

func TestFindAttackersOf_Mixed(t *testing.T) {
	t.Parallel()

	target := chess.Loc(0, 0)
	b := testutil.BlankWith(t,
		piece(chess.White, chess.King, 3, -4),
		piece(chess.Black, chess.King, -4, 3),
		piece(chess.White, chess.Pawn, -1, -1),   // attacks (0,0)
		piece(chess.White, chess.Pawn, 0, -1),    // straight ahead: no attack
		piece(chess.Black, chess.Pawn, 1, 1),     // black pawn attacks downward
		piece(chess.Black, chess.Knight, 2, 1),   // knight hop
		piece(chess.White, chess.Bishop, -3, -3), // blocked by the pawn on (-1,-1)
		piece(chess.Black, chess.Rook, -4, 0),    // open rank
		piece(chess.White, chess.Queen, 0, 3),    // open file
	)

	want := []chess.Piece{
		piece(chess.White, chess.Pawn, -1, -1),
		piece(chess.Black, chess.Pawn, 1, 1),
		piece(chess.Black, chess.Knight, 2, 1),
		piece(chess.Black, chess.Rook, -4, 0),
		piece(chess.White, chess.Queen, 0, 3),
	}
	testutil.AssertEqual(t, testutil.Pieces(b.FindAttackersOf(target, false)), want)

	seq := b.FindAttackersOfColour(target, false, chess.Black)
	first := testutil.Pieces(seq)
	second := testutil.Pieces(seq)
	testutil.AssertEqual(t, second, first, "sequence is restartable")
	testutil.AssertEqual(t, len(first), 3, "black attackers")

	testutil.AssertTrue(t, b.IsAttackedBy(target, chess.White), "attacked by White")
	testutil.AssertFalse(t, b.IsAttackedBy(chess.Loc(3, -3), chess.Black), "h2 attacked by Black")
}

func TestFindAttackersOf_CheckLegalDropsPinned(t *testing.T) {
	t.Parallel()

	// The white knight on (0,-2) is pinned to its king by the black rook.
	king := piece(chess.White, chess.King, 0, -4)
	knight := piece(chess.White, chess.Knight, 0, -2)
	rook := piece(chess.Black, chess.Rook, 0, 3)
	target := piece(chess.Black, chess.Bishop, 1, 0)
	b := testutil.BlankWith(t, king, knight, rook, target, piece(chess.Black, chess.King, -4, 3))

	got := testutil.Pieces(b.FindAttackersOfColour(target.Location, false, chess.White))
	testutil.AssertEqual(t, got, []chess.Piece{knight}, "pseudo-legal attackers")

	got = testutil.Pieces(b.FindAttackersOfColour(target.Location, true, chess.White))
	testutil.AssertEqual(t, len(got), 0, "legal attackers")
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	t.Parallel()

	king := piece(chess.White, chess.King, 0, -4)
	rook := piece(chess.Black, chess.Rook, 1, 3)
	b := testutil.BlankWith(t, king, rook, piece(chess.Black, chess.King, -4, 3))
	bp := testutil.MustPieceAt(t, b, king.Location)

	attacked := chess.Loc(1, -4)
	testutil.AssertSight(t, bp.MoveSight(attacked, true), chess.IllegalSeesEmpty, nil, "into the rook's file")
	testutil.AssertSight(t, bp.MoveSight(attacked, false), chess.SeesEmpty, nil, "without legality")
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(-1, -4), true), chess.SeesEmpty, nil, "away from the rook")
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(1, -3), true), chess.IllegalSeesEmpty, nil, "diagonal into the file")
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(2, -4), true), chess.CannotSee, nil, "two squares")
}

func TestKingCannotStepAlongAttackLine(t *testing.T) {
	t.Parallel()

	// Stepping away from a rook along its rank stays in the line once the
	// king no longer shields the square behind it.
	king := piece(chess.White, chess.King, 0, 0)
	rook := piece(chess.Black, chess.Rook, -4, 0)
	b := testutil.BlankWith(t, king, rook, piece(chess.Black, chess.King, 3, 3))
	bp := testutil.MustPieceAt(t, b, king.Location)

	testutil.AssertSight(t, bp.MoveSight(chess.Loc(1, 0), true), chess.IllegalSeesEmpty, nil, "along the rank")
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(1, 1), true), chess.SeesEmpty, nil, "off the rank")
}

func TestKingCaptures(t *testing.T) {
	t.Parallel()

	king := piece(chess.White, chess.King, 0, -4)
	loose := piece(chess.Black, chess.Pawn, 1, -3)
	defended := piece(chess.Black, chess.Knight, -1, -3)
	defender := piece(chess.Black, chess.Bishop, -3, -1)
	b := testutil.BlankWith(t, king, loose, defended, defender, piece(chess.Black, chess.King, 3, 3))
	bp := testutil.MustPieceAt(t, b, king.Location)

	testutil.AssertSight(t, bp.MoveSight(loose.Location, true), chess.Sees, &loose, "loose pawn")
	testutil.AssertSight(t, bp.MoveSight(defended.Location, true), chess.IllegalSees, &defended, "defended knight")
}

func TestDiscoveredAttack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attacker chess.Piece
		blocker  chess.Piece
		dest     chess.Location
		want     chess.SightKind
	}{
		{
			name:     "bishop leaves rook file",
			attacker: piece(chess.Black, chess.Rook, 0, 3),
			blocker:  piece(chess.White, chess.Bishop, 0, -2),
			dest:     chess.Loc(1, -1),
			want:     chess.IllegalSeesEmpty,
		},
		{
			name:     "knight leaves queen diagonal",
			attacker: piece(chess.Black, chess.Queen, 3, -1),
			blocker:  piece(chess.White, chess.Knight, 1, -3),
			dest:     chess.Loc(2, -1),
			want:     chess.IllegalSeesEmpty,
		},
		{
			name:     "pawn steps off bishop diagonal",
			attacker: piece(chess.Black, chess.Bishop, -3, -1),
			blocker:  piece(chess.White, chess.Pawn, -1, -3),
			dest:     chess.Loc(-1, -2),
			want:     chess.IllegalSeesEmpty,
		},
		{
			name:     "rook slides along the pin",
			attacker: piece(chess.Black, chess.Rook, 0, 3),
			blocker:  piece(chess.White, chess.Rook, 0, -2),
			dest:     chess.Loc(0, 1),
			want:     chess.SeesEmpty,
		},
		{
			name:     "rook captures the pinner",
			attacker: piece(chess.Black, chess.Rook, 0, 3),
			blocker:  piece(chess.White, chess.Rook, 0, -2),
			dest:     chess.Loc(0, 3),
			want:     chess.Sees,
		},
		{
			name:     "queen leaves rank to capture",
			attacker: piece(chess.Black, chess.Rook, -4, -4),
			blocker:  piece(chess.White, chess.Queen, -2, -4),
			dest:     chess.Loc(-2, 3),
			want:     chess.IllegalSees,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			king := piece(chess.White, chess.King, 0, -4)
			pieces := []chess.Piece{king, tt.attacker, tt.blocker, piece(chess.Black, chess.King, -4, 3)}
			if tt.want == chess.IllegalSees {
				pieces = append(pieces, chess.Piece{Colour: chess.Black, Shape: chess.Pawn, Location: tt.dest})
			}
			b := testutil.BlankWith(t, pieces...)
			testutil.AssertFalse(t, b.InCheck(chess.White), "king starts shielded")

			bp := testutil.MustPieceAt(t, b, tt.blocker.Location)
			testutil.AssertSight(t, bp.MoveSight(tt.dest, true), tt.want, nil, "checked move")

			got := bp.MoveSight(tt.dest, false)
			testutil.AssertTrue(t, got.IsLegal(), "unchecked move %v is legal", got)
		})
	}
}

func TestDiscoveredAttackLeavesBoardUnchanged(t *testing.T) {
	t.Parallel()

	b := testutil.MustBoard(t, "4r2k/8/8/8/8/8/4B3/4K3")
	before := b.Placement()

	bp := testutil.MustPieceAt(t, b, chess.Loc(0, -3))
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(1, -2), true), chess.IllegalSeesEmpty, nil, "pinned bishop")
	testutil.AssertEqual(t, b.Placement(), before, "placement after query")
}

func TestCapturingOwnKingIsIllegal(t *testing.T) {
	t.Parallel()

	king := piece(chess.White, chess.King, 0, -4)
	rook := piece(chess.White, chess.Rook, 0, 0)
	b := testutil.BlankWith(t, king, rook)
	bp := testutil.MustPieceAt(t, b, rook.Location)

	testutil.AssertSight(t, bp.MoveSight(king.Location, true), chess.IllegalSees, &king, "rook onto own king")
	testutil.AssertSight(t, bp.MoveSight(king.Location, false), chess.Sees, &king, "geometry only")

	// Defenders of the king's square do not trip the gate.
	got := testutil.Pieces(b.FindAttackersOf(king.Location, true))
	testutil.AssertEqual(t, len(got), 0, "legal attackers of own king")
}

func TestInCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      bool
	}{
		{"start position white", chess.StartPlacement, chess.White, false},
		{"start position black", chess.StartPlacement, chess.Black, false},
		{"rook check", "4k3/8/8/8/8/8/8/4R1K1", chess.Black, true},
		{"blocked rook", "4k3/4p3/8/8/8/8/8/4R1K1", chess.Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/6K1", chess.Black, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3", chess.White, true},
		{"pawn behind", "4k3/8/8/8/8/8/8/3pK3", chess.White, false},
		{"bishop check", "4k3/8/8/8/8/8/6b1/7K", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.placement)
			testutil.AssertEqual(t, b.InCheck(tt.colour), tt.want, "InCheck(%v)", tt.colour)
		})
	}
}

func TestMissingKingPanics(t *testing.T) {
	t.Parallel()

	rook := piece(chess.White, chess.Rook, 0, 0)
	b := testutil.BlankWith(t, rook, piece(chess.Black, chess.King, 3, 3))
	bp := testutil.MustPieceAt(t, b, rook.Location)

	testutil.AssertPanicsWith(t, rcerrors.ErrMissingKing, func() {
		bp.MoveSight(chess.Loc(0, 2), true)
	}, "legality without a king")
	testutil.AssertPanicsWith(t, rcerrors.ErrMissingKing, func() {
		b.InCheck(chess.White)
	}, "InCheck without a king")

	// Without legality checking no king is needed.
	testutil.AssertSight(t, bp.MoveSight(chess.Loc(0, 2), false), chess.SeesEmpty, nil, "geometry only")
}

func TestMultipleKingsPanics(t *testing.T) {
	t.Parallel()

	b := testutil.BlankWith(t,
		piece(chess.White, chess.King, 0, -4),
		piece(chess.White, chess.King, 0, 0),
		piece(chess.White, chess.Knight, 2, -2),
	)
	bp := testutil.MustPieceAt(t, b, chess.Loc(2, -2))

	testutil.AssertPanicsWith(t, rcerrors.ErrMultipleKings, func() {
		bp.MoveSight(chess.Loc(3, 0), true)
	})
}

func TestFindKing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pieces []chess.Piece
		colour chess.Colour
		want   chess.Location
		found  bool
	}{
		{
			name:   "present",
			pieces: []chess.Piece{piece(chess.White, chess.King, 0, -4), piece(chess.Black, chess.King, 0, 3)},
			colour: chess.Black,
			want:   chess.Loc(0, 3),
			found:  true,
		},
		{
			name:   "absent",
			pieces: []chess.Piece{piece(chess.White, chess.King, 0, -4), piece(chess.Black, chess.Queen, 0, 3)},
			colour: chess.Black,
			found:  false,
		},
		{
			name: "first of several",
			pieces: []chess.Piece{
				piece(chess.White, chess.Rook, -4, -4),
				piece(chess.White, chess.King, 2, 1),
				piece(chess.White, chess.King, 0, -4),
			},
			colour: chess.White,
			want:   chess.Loc(2, 1),
			found:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.BlankWith(t, tt.pieces...)
			got, ok := b.FindKing(tt.colour)
			testutil.AssertEqual(t, ok, tt.found, "found")
			testutil.AssertEqual(t, got, tt.want, "location")
		})
	}
}

func TestStartPositionQueriesAreReadOnly(t *testing.T) {
	t.Parallel()

	b := chess.NewBoard()
	legal := 0
	for bp := range b.PiecesWhere(func(p chess.Piece) bool { return p.Colour == chess.White }) {
		for rank := -4; rank <= 3; rank++ {
			for file := -4; file <= 3; file++ {
				dest := chess.Loc(file, rank)
				s := bp.MoveSight(dest, true)
				if s.IsLegal() {
					if occupant, ok := s.PieceAt(); ok && occupant.Colour() == chess.White {
						continue
					}
					legal++
				}
			}
		}
	}

	// Eight single pawn steps and four knight jumps.
	testutil.AssertEqual(t, legal, 12, "legal white moves from the start")
	testutil.AssertEqual(t, b.Placement(), chess.StartPlacement, "placement after queries")
}
