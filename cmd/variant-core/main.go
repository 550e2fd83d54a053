// variant-core reports what a piece can see on a board given as a FEN
// piece-placement field, or which pieces attack a square.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/variant-core/internal/chess"
	"github.com/lgbarn/variant-core/internal/config"
	"github.com/lgbarn/variant-core/internal/errors"
	"github.com/lgbarn/variant-core/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	placement  string
	square     string
	attack     bool
	checkLegal bool
	attackers  bool
	workers    int
	bufferSize int
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("variant-core", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.placement, "fen", chess.StartPlacement, "Board position (FEN piece placement)")
	fs.StringVar(&opts.square, "s", "", "Square to query, e.g. e2")
	fs.BoolVar(&opts.attack, "attack", false, "Report attack sight instead of move sight")
	fs.BoolVar(&opts.checkLegal, "legal", true, "Reject moves that leave the mover's king attacked")
	fs.BoolVar(&opts.attackers, "attackers", false, "List the pieces attacking the square")
	fs.IntVar(&opts.workers, "workers", 1, "Number of query workers")
	fs.IntVar(&opts.bufferSize, "buffer", 10, "Query channel buffer size")
	fs.BoolVar(&opts.version, "version", false, "Show version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "variant-core version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfigBuilder().
		WithWorkers(opts.workers).
		WithBufferSize(opts.bufferSize).
		Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	b, err := chess.NewBoardFromPlacement(opts.placement)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	loc, ok := chess.ParseSquare(opts.square)
	if !ok {
		fmt.Fprintf(stderr, "Error: invalid square %q\n", opts.square)
		return 1
	}

	if opts.attackers {
		attackers, err := findAttackers(b, loc, opts.checkLegal)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, bp := range attackers {
			fmt.Fprintf(stdout, "%s %s on %s\n", bp.Colour(), bp.Shape(), bp.Location().Square())
		}
		return 0
	}

	if _, ok := b.PieceAt(loc); !ok {
		fmt.Fprintf(stderr, "Error: no piece on %s\n", opts.square)
		return 1
	}
	return reportSights(b, loc, opts, cfg.Query, stdout, stderr)
}

// reportSights prints every destination the piece on from can see, in
// board order from a1 to h8.
func reportSights(b *chess.Board, from chess.Location, opts *options, cfg *config.QueryConfig, stdout, stderr io.Writer) int {
	var queries []worker.Query
	for rank := -4; rank <= 3; rank++ {
		for file := -4; file <= 3; file++ {
			queries = append(queries, worker.Query{
				From:       from,
				To:         chess.Loc(file, rank),
				Attack:     opts.attack,
				CheckLegal: opts.checkLegal,
			})
		}
	}

	results, err := worker.EvaluateUntilError(b, queries, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, res := range results {
		if !res.Sight.Sees() {
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", res.Query.To.Square(), res.Sight)
	}
	return 0
}

// findAttackers collects the attackers of loc. A legality check on a board
// without exactly one king per side panics inside the core; that panic is
// reported as an error instead.
func findAttackers(b *chess.Board, loc chess.Location, checkLegal bool) (attackers []chess.BoardPiece, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var ruleErr *errors.RuleError
		if e, ok := r.(error); ok && stderrors.As(e, &ruleErr) {
			attackers, err = nil, ruleErr
			return
		}
		panic(r)
	}()

	for bp := range b.FindAttackersOf(loc, checkLegal) {
		attackers = append(attackers, bp)
	}
	return attackers, nil
}
