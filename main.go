package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/solvelab/cdcl-sat/internal/dimacs"
	"github.com/solvelab/cdcl-sat/internal/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagSeed       = flag.Int64("seed", sat.DefaultOptions.Seed, "branching RNG seed")
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		seed:         *flagSeed,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

type config struct {
	instanceFile string
	gzipped      bool
	seed         int64
	memProfile   bool
	cpuProfile   bool
}

// run loads cfg.instanceFile and solves it, reporting the outcome in
// the minimal DIMACS-adjacent form: "s SATISFIABLE"/"s UNSATISFIABLE"
// followed, on SAT, by a "v ..." model line of signed 1-based literals.
func run(cfg *config) error {
	s := sat.NewSolver(sat.Options{Seed: cfg.seed})

	if err := dimacs.LoadFile(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not load instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", s.NumOriginalClauses())

	t := time.Now()
	result := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", s.NumConflicts())
	fmt.Printf("c learnt:     %d\n", s.NumLearntClauses())

	if !result.Satisfiable {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}

	fmt.Println("s SATISFIABLE")
	fmt.Print("v")
	for v, val := range result.Model {
		if val {
			fmt.Printf(" %d", v+1)
		} else {
			fmt.Printf(" -%d", v+1)
		}
	}
	fmt.Println(" 0")
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
