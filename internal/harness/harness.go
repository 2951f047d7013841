package harness

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	th "github.com/pi/cods/internal/testhelpers"
)

// Env is what a suite gets to work with. Every suite owns its Env and
// the containers it builds.
type Env struct {
	Gen      th.SeqGen
	Elements int
	Log      *zap.Logger
}

type suiteFunc func(env *Env) error

var registry = map[string]suiteFunc{}

func register(name string, fn suiteFunc) {
	if _, dup := registry[name]; dup {
		panic("harness: duplicate suite " + name)
	}
	registry[name] = fn
}

// Suites returns the registered suite names in order.
func Suites() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of one suite.
type Result struct {
	Suite    string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// ErrSuitesFailed is returned by Run when at least one suite failed.
var ErrSuitesFailed = errors.New("harness: suites failed")

// Run executes the configured suites, at most cfg.Parallel at a time. A
// failing suite does not stop the others.
func Run(ctx context.Context, cfg Config, log *zap.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	names := cfg.Suites
	if len(names) == 0 {
		names = Suites()
	}
	log = log.With(zap.String("run", uuid.New().String()))
	startMem := th.TotalAlloc()
	results := make([]Result, len(names))
	sem := semaphore.NewWeighted(int64(cfg.Parallel))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = runSuite(name, cfg, log.With(zap.String("suite", name)))
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	log.Info("run finished",
		zap.Int("suites", len(results)),
		zap.Int("failed", failed),
		zap.String("allocated", th.MemDelta(startMem)))
	if failed > 0 {
		return results, errors.Wrapf(ErrSuitesFailed, "%d of %d", failed, len(results))
	}
	return results, nil
}

func runSuite(name string, cfg Config, log *zap.Logger) (r Result) {
	r.Suite = name
	gen := th.NewSeqGen(th.SgRand)
	gen.Seed(cfg.Seed)
	env := &Env{Gen: gen, Elements: cfg.Elements, Log: log}
	start := time.Now()
	defer func() {
		r.Duration = time.Since(start)
		if p := recover(); p != nil {
			r.Err = errors.Newf("panic: %v", p)
		}
		if r.Err != nil {
			log.Error("suite failed", zap.Error(r.Err), zap.Duration("took", r.Duration))
		} else {
			log.Debug("suite passed", zap.Duration("took", r.Duration))
		}
	}()
	r.Err = registry[name](env)
	return r
}

// check returns an error describing the failed expectation.
func check(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return errors.Newf(format, args...)
}
