package app

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/salesman/config"
	"github.com/katalvlaran/salesman/report"
	"github.com/katalvlaran/salesman/tsp"
)

// Independent random streams derived from the run seed. Skipping brute
// force, or changing the sample count, leaves the other streams untouched.
const (
	streamNodes uint64 = iota + 1
	streamSamples
	streamHillClimb
	streamAnnealing
)

// App runs the solvers for one configuration.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer

	now func() time.Time
}

// New returns an App writing its report to out. A nil logger is replaced
// by a no-op one.
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{cfg: cfg, logger: logger, out: out, now: time.Now}
}

// Run executes one full pass and writes the report. The returned Run is the
// data that was rendered. ctx is checked between solver stages.
func (a *App) Run(ctx context.Context) (*report.Run, error) {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}

	run := &report.Run{
		ID:     uuid.NewString(),
		Seed:   seed,
		Anneal: a.cfg.AnnealOptions(),
	}
	log := a.logger.With(zap.String("run_id", run.ID), zap.Int64("seed", seed))

	inst, err := a.instance(seed)
	if err != nil {
		log.Error("building instance failed", zap.Error(err))
		return nil, err
	}
	n := inst.Len()
	run.Nodes = inst.Nodes()
	if dm := inst.Distances().Matrix(); dm != nil {
		run.Distances = dm
	}
	log.Info("run started",
		zap.Int("nodes", n),
		zap.String("matrix_file", a.cfg.MatrixFile),
		zap.Bool("seed_generated", a.cfg.Seed == 0),
	)

	run.Samples, run.SampleAverage = inst.SampleRoutes(tsp.DeriveRand(seed, streamSamples), a.cfg.Samples)
	log.Debug("sampled random routes",
		zap.Int("count", len(run.Samples)),
		zap.Float64("average", run.SampleAverage),
	)

	if a.cfg.RunBruteForce(n) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		res := a.timed(log, "brute force", nil, inst.BruteForce)
		run.BruteForce = &res
	} else {
		log.Info("brute force skipped",
			zap.Int("nodes", n),
			zap.Int("limit", a.cfg.BruteForceLimit),
		)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	run.HillClimb = a.timed(log, "hill climbing", run.BruteForce, func() tsp.Route {
		return inst.HillClimb(tsp.DeriveRand(seed, streamHillClimb))
	})

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	opts := a.cfg.AnnealOptions()
	run.Annealing = a.timed(log, "simulated annealing", run.BruteForce, func() tsp.Route {
		return inst.SimulatedAnnealing(tsp.DeriveRand(seed, streamAnnealing), opts)
	})

	if err := report.Write(a.out, a.cfg.Format, run); err != nil {
		log.Error("writing report failed", zap.Error(err))
		return nil, err
	}
	log.Info("run finished")

	return run, nil
}

// timed runs solve and logs its outcome. When the exact tour is known, the
// log line also says whether solve found the same cycle.
func (a *App) timed(log *zap.Logger, solver string, exact *report.Result, solve func() tsp.Route) report.Result {
	start := a.now()
	route := solve()
	elapsed := a.now().Sub(start)

	fields := []zap.Field{
		zap.String("solver", solver),
		zap.Float64("distance", route.Distance),
		zap.Duration("elapsed", elapsed),
	}
	if exact != nil {
		fields = append(fields, zap.Bool("same_tour_as_brute_force", tsp.SameCycle(route.Path, exact.Route.Path)))
	}
	log.Info("solver finished", fields...)

	return report.Result{Route: route, Elapsed: elapsed}
}
