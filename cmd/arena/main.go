package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gridchess/gridchess/internal/arena"
	"github.com/gridchess/gridchess/internal/evalbuilder"
	"github.com/gridchess/gridchess/pkg/engine"
)

type Config struct {
	Concurrency int
	Games       int
	MoveTime    time.Duration
	MaxPlies    int
	EvalA       string
	EvalB       string
	MinDepth    int
	MaxDepth    int
	TrimPlies   int
	TrimMoves   int
	RandomTie   bool
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "Number of games played at once")
	flag.IntVar(&config.Games, "games", 24, "Number of games")
	flag.DurationVar(&config.MoveTime, "movetime", 200*time.Millisecond, "Time per move")
	flag.IntVar(&config.MaxPlies, "maxplies", 200, "Plies before a game is drawn")
	flag.StringVar(&config.EvalA, "evala", "pst", "Evaluation of engine A")
	flag.StringVar(&config.EvalB, "evalb", "material", "Evaluation of engine B")
	flag.IntVar(&config.MinDepth, "mindepth", 4, "First iteration depth")
	flag.IntVar(&config.MaxDepth, "maxdepth", 0, "Depth cap, 0 for none")
	flag.IntVar(&config.TrimPlies, "trimplies", 0, "Remaining depth at which quiet moves are trimmed")
	flag.IntVar(&config.TrimMoves, "trimmoves", 0, "Moves kept when trimming")
	flag.BoolVar(&config.RandomTie, "randomtie", true, "Break root ties at random")
	flag.Parse()

	log.Printf("%+v", config)

	evalA, err := evalbuilder.Get(config.EvalA)
	if err != nil {
		return err
	}
	evalB, err := evalbuilder.Get(config.EvalB)
	if err != nil {
		return err
	}
	openings, err := arena.LoadOpenings()
	if err != nil {
		return err
	}

	var seed atomic.Int64
	seed.Store(time.Now().UnixNano())
	var newPlayers = func() (arena.Player, arena.Player) {
		var s = seed.Add(1)
		return newPlayer(evalA, s), newPlayer(evalB, s)
	}

	score, err := arena.Run(context.Background(), config.Concurrency, config.Games,
		arena.TimeControl{MoveTime: config.MoveTime, MaxPlies: config.MaxPlies},
		openings, newPlayers)
	if err != nil {
		return err
	}
	log.Printf("%v vs %v: %+v points %v/%v", config.EvalA, config.EvalB,
		score, score.Points(), score.Games())
	return nil
}

func newPlayer(evalBuilder func() engine.Evaluator, seed int64) arena.Player {
	var options = engine.NewOptions(evalBuilder)
	options.MinDepth = config.MinDepth
	options.MaxDepth = config.MaxDepth
	options.TrimPlies = config.TrimPlies
	options.TrimMoves = config.TrimMoves
	options.RandomTieBreak = config.RandomTie
	options.Seed = seed
	return arena.NewEnginePlayer(engine.NewEngine(options))
}
