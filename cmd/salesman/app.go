package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/katalvlaran/salesman/cityio"
	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/generator"
	"github.com/katalvlaran/salesman/logging"
	"github.com/katalvlaran/salesman/report"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/katalvlaran/salesman/ui"
)

// session is the state shared by all commands, filled in by the Before hook.
type session struct {
	in  io.Reader
	out io.Writer
	cfg config.Config
	log logging.Logger
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	rt := &session{in: in, out: out, log: logging.Nop()}

	app := cli.NewApp()
	app.Name = "salesman"
	app.Usage = "approximate Euclidean travelling salesman tours"
	app.Version = "0.1.0"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML configuration file", EnvVar: config.EnvConfig},
		cli.StringFlag{Name: "log-level", Usage: "override logging.level (debug, info, warn, error)"},
	}
	app.Before = rt.before
	app.Commands = []cli.Command{
		{
			Name:      "solve",
			Usage:     "solve a city file with one algorithm",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "algo, a", Usage: "nn, dijkstra or mst (default: solver.algorithm)"},
				cli.StringFlag{Name: "report, r", Usage: "write a JSON run report to this path"},
			},
			Action: rt.solve,
		},
		{
			Name:      "menu",
			Usage:     "choose the algorithm from an interactive menu",
			ArgsUsage: "<file>",
			Action:    rt.menu,
		},
		{
			Name:  "generate",
			Usage: "write a random city file",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "count, n", Usage: "number of cities (default: generator.count)"},
				cli.Uint64Flag{Name: "seed, s", Usage: "random seed (default: generator.seed)"},
				cli.Float64Flag{Name: "x-max", Usage: "exclusive x bound (default: generator.x_max)"},
				cli.Float64Flag{Name: "y-max", Usage: "exclusive y bound (default: generator.y_max)"},
				cli.StringFlag{Name: "out, o", Usage: "output file (default: stdout)"},
			},
			Action: rt.generate,
		},
	}

	return app
}

func (rt *session) before(c *cli.Context) error {
	cfg, err := config.LoadFile(c.String("config"))
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	rt.cfg = cfg
	rt.log = logging.New(cfg.Logging, os.Stderr)

	return nil
}

// loadCities reads the file named by the first argument. An empty result is
// reported to the user and returned as nil cities with no error.
func (rt *session) loadCities(c *cli.Context) ([]tsp.City, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.NewExitError("No file path provided.", 2)
	}
	cities, err := cityio.ReadFile(path, rt.log)
	if err != nil {
		return nil, cli.NewExitError(err.Error(), 1)
	}
	if len(cities) == 0 {
		fmt.Fprintln(rt.out, "No cities found in the file.")
		return nil, nil
	}

	return cities, nil
}

func (rt *session) solverOptions() []tsp.Option {
	return []tsp.Option{
		tsp.WithEps(rt.cfg.Solver.TwoOptEps),
		tsp.WithMaxPasses(rt.cfg.Solver.TwoOptMaxPasses),
	}
}

// run solves, prints and optionally reports one instance.
func (rt *session) run(cities []tsp.City, algo tsp.Algorithm, reportPath string) error {
	start := time.Now()
	res, err := tsp.Solve(cities, algo, rt.solverOptions()...)
	elapsed := time.Since(start)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	ui.DisplaySolution(rt.out, res.Tour, elapsed)
	rt.log.Info().
		Str("algorithm", algo.String()).
		Int("cities", len(cities)).
		Float64("length", res.Length).
		Dur("elapsed", elapsed).
		Msg("tour built")

	if reportPath == "" {
		return nil
	}
	bound, err := tsp.SpanningTreeBound(cities)
	if err != nil {
		rt.log.Warn().Err(err).Msg("lower bound unavailable")
	}
	rep := report.New(res, len(cities), bound, elapsed, report.CollectSysInfo())
	if err = rep.WriteFile(reportPath); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	rt.log.Info().Str("path", reportPath).Float64("gap", rep.Gap()).Msg("report written")

	return nil
}

func (rt *session) solve(c *cli.Context) error {
	name := c.String("algo")
	if name == "" {
		name = rt.cfg.Solver.Algorithm
	}
	algo, err := tsp.ParseAlgorithm(name)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	cities, err := rt.loadCities(c)
	if err != nil || cities == nil {
		return err
	}

	reportPath := c.String("report")
	if reportPath == "" {
		reportPath = rt.cfg.Output.Report
	}

	return rt.run(cities, algo, reportPath)
}

func (rt *session) menu(c *cli.Context) error {
	cities, err := rt.loadCities(c)
	if err != nil || cities == nil {
		return err
	}

	choice, err := ui.ChooseAlgorithm(rt.in, rt.out)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	algo, ok := choice.Algorithm()
	if !ok {
		fmt.Fprintln(rt.out, "Exiting...")
		return nil
	}
	fmt.Fprintf(rt.out, "Solving with Algorithm %d...\n", choice)

	return rt.run(cities, algo, rt.cfg.Output.Report)
}

func (rt *session) generate(c *cli.Context) error {
	gen := rt.cfg.Generator
	if c.IsSet("count") {
		gen.Count = c.Int("count")
	}
	if c.IsSet("seed") {
		gen.Seed = c.Uint64("seed")
	}
	if c.IsSet("x-max") {
		gen.XMax = c.Float64("x-max")
	}
	if c.IsSet("y-max") {
		gen.YMax = c.Float64("y-max")
	}
	if gen.Count < 0 || !(gen.XMax > 0) || !(gen.YMax > 0) {
		return cli.NewExitError(fmt.Sprintf("invalid generator settings: count=%d bounds=%vx%v", gen.Count, gen.XMax, gen.YMax), 2)
	}

	cities := generator.Generate(gen.Count, generator.WithSeed(gen.Seed), generator.WithBounds(gen.XMax, gen.YMax))

	w := rt.out
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		defer f.Close()
		w = f
	}
	if err := cityio.WriteCities(w, cities); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	rt.log.Debug().Int("count", gen.Count).Uint64("seed", gen.Seed).Msg("cities generated")

	return nil
}
