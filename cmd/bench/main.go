package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gridchess/gridchess/internal/evalbuilder"
	"github.com/gridchess/gridchess/internal/tactic"
	"github.com/gridchess/gridchess/pkg/common"
	"github.com/gridchess/gridchess/pkg/engine"
	"golang.org/x/sync/errgroup"
)

var benchFENs = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w - - 0 1",
	"6k1/5ppp/8/8/8/8/8/R5K1 w",
}

type Config struct {
	Depth       int
	Eval        string
	Concurrency int
	TrimPlies   int
	TrimMoves   int
	Tree        bool
	Epd         string
}

var config Config

type benchResult struct {
	fen  string
	info engine.SearchInfo
	tree *engine.DecisionTree
}

func main() {
	flag.IntVar(&config.Depth, "depth", 5, "Search depth")
	flag.StringVar(&config.Eval, "eval", evalbuilder.DefaultKey, "Evaluation function")
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Number of positions searched at once")
	flag.IntVar(&config.TrimPlies, "trimplies", 0, "Remaining depth at which quiet moves are trimmed")
	flag.IntVar(&config.TrimMoves, "trimmoves", 0, "Moves kept when trimming")
	flag.BoolVar(&config.Tree, "tree", false, "Print the first two plies of each decision tree")
	flag.StringVar(&config.Epd, "epd", "", "Solve a best move suite instead of the bench positions")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	var err = run(logger)
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	logger.Println("bench started",
		"depth", config.Depth,
		"eval", config.Eval,
		"concurrency", config.Concurrency)
	defer logger.Println("bench finished")

	var evalBuilder, err = evalbuilder.Get(config.Eval)
	if err != nil {
		return err
	}
	if config.Epd != "" {
		return solveEpd(evalBuilder)
	}

	var results = make([]benchResult, len(benchFENs))
	var start = time.Now()

	g, ctx := errgroup.WithContext(context.Background())

	var indexes = make(chan int)
	g.Go(func() error {
		defer close(indexes)
		for i := range benchFENs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	for w := 0; w < config.Concurrency; w++ {
		g.Go(func() error {
			var options = engine.NewOptions(evalBuilder)
			options.MinDepth = 1
			options.TrimPlies = config.TrimPlies
			options.TrimMoves = config.TrimMoves
			var eng = engine.NewEngine(options)
			for i := range indexes {
				var res, err = searchPosition(ctx, eng, benchFENs[i])
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var nodes int64
	for _, res := range results {
		nodes += res.info.Nodes
		fmt.Println(res.fen)
		fmt.Println("Move", res.info.Move,
			"Score", res.info.Score,
			"Depth", res.info.Depth,
			"Nodes", res.info.Nodes,
			"Evaluations", res.info.Stats.Evaluations,
			"Cutoffs", res.info.Stats.Cutoffs,
			"Trimmed", res.info.Stats.Trimmed,
			"Time", res.info.Time)
		if res.tree != nil {
			res.tree.Print(os.Stdout)
		}
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	if ms := elapsed.Milliseconds(); ms > 0 {
		fmt.Println("kNPS", nodes/ms)
	}
	return nil
}

func searchPosition(ctx context.Context, eng *engine.Engine, fen string) (benchResult, error) {
	var board, side, err = common.ParseFEN(fen)
	if err != nil {
		return benchResult{}, err
	}
	var res = benchResult{fen: fen}
	var params = engine.SearchParams{
		Board:  board,
		Side:   side,
		Limits: engine.LimitsType{Depth: config.Depth},
	}
	if config.Tree {
		res.tree = &engine.DecisionTree{MaxHeight: 2}
		params.Tracer = res.tree
	}
	res.info = eng.Search(ctx, params)
	return res, nil
}

func solveEpd(evalBuilder func() engine.Evaluator) error {
	var tests, err = tactic.LoadEpd(config.Epd)
	if err != nil {
		return err
	}
	var options = engine.NewOptions(evalBuilder)
	options.TrimPlies = config.TrimPlies
	options.TrimMoves = config.TrimMoves
	var eng = engine.NewEngine(options)
	_, err = tactic.SolveTactic(context.Background(), tests, eng,
		engine.LimitsType{Depth: config.Depth})
	return err
}
