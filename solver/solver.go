package solver

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/zof/internal/util"
	"github.com/hupe1980/zof/logging"
	"github.com/hupe1980/zof/method"
)

// MaxIterationsMsg is the terminal message for exhausted, unconverged solves.
const MaxIterationsMsg = "max iterations reached"

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger receives one info line per solve and a debug line per iteration.
	// Defaults to NoOpLogger.
	Logger logging.Logger
	// MaxTrace caps the effective iteration budget regardless of the
	// request's MaxIter, bounding trace memory. Set to 0 for no cap.
	MaxTrace int
}

// Engine drives the iteration loop for all six methods. It holds no per-call
// state; Solve is safe for concurrent use.
type Engine struct {
	logger   logging.Logger
	maxTrace int
}

// New constructs an Engine with optional overrides.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		MaxTrace: 10000,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		logger:   opts.Logger,
		maxTrace: opts.MaxTrace,
	}
}

// Solve runs one method to completion: converged, failed, or exhausted.
//
// The returned error is non-nil only for invalid requests; every numeric
// outcome, including fatal preconditions and zero denominators, is reported
// through the Result's ErrMsg so callers can still render the partial trace.
// Context cancellation is honored between iterations.
func (e *Engine) Solve(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	req = req.withDefaults()

	res := Result{
		ID:     util.NewID(),
		Method: req.Method.String(),
		Trace:  []method.Row{},
	}

	maxIter := req.MaxIter
	if e.maxTrace > 0 && maxIter > e.maxTrace {
		maxIter = e.maxTrace
	}

	state, err := req.Method.Init(req.Coeffs, req.X0, req.X1)
	if err != nil {
		res.ErrMsg = err.Error()
		res.Elapsed = time.Since(start)
		e.logSolve(res)
		return res, nil
	}

	extra := method.Extra{Delta: req.Delta}
	if req.Method == method.NewtonRaphson {
		extra.Deriv = req.Coeffs.Derivative()
	}

	var lastEstimate float64

	for i := 1; i <= maxIter; i++ {
		if ctx.Err() != nil {
			res.ErrMsg = ctx.Err().Error()
			break
		}

		next, row, errMag, estimate, err := req.Method.Step(req.Coeffs, state, extra)
		if err != nil {
			res.ErrMsg = err.Error()
			break
		}

		row.Iter = i
		res.Trace = append(res.Trace, row)
		lastEstimate = estimate

		e.logger.Debug("iteration step",
			"solve_id", res.ID, "method", res.Method, "iter", i,
			"estimate", estimate, "error", errMag)

		if e.converged(req, errMag, estimate) {
			root := estimate
			res.Root = &root
			res.Converged = true
			break
		}

		state = next
	}

	if !res.Converged && res.ErrMsg == "" {
		if len(res.Trace) > 0 {
			root := lastEstimate
			res.Root = &root
		}
		res.ErrMsg = MaxIterationsMsg
	}

	res.Elapsed = time.Since(start)
	e.logSolve(res)

	return res, nil
}

// converged applies the tolerance check: the error magnitude for every
// method, plus |f(x)| at the new estimate for bracketing methods, which
// expose the function value directly. Open methods converge on the error
// magnitude alone (Fixed Point's coefficients describe g, not f, so a
// residual check would be meaningless there).
func (e *Engine) converged(req Request, errMag, estimate float64) bool {
	if errMag < req.Tol {
		return true
	}
	if req.Method.IsBracketing() {
		return math.Abs(req.Coeffs.Evaluate(estimate)) < req.Tol
	}
	return false
}

func (e *Engine) logSolve(res Result) {
	if res.ErrMsg != "" && !res.Converged {
		e.logger.Warn("solve terminated",
			"solve_id", res.ID, "method", res.Method,
			"iterations", res.Iterations(), "error", res.ErrMsg,
			"duration", res.Elapsed)
		return
	}
	e.logger.Info("solve completed",
		"solve_id", res.ID, "method", res.Method,
		"iterations", res.Iterations(), "converged", res.Converged,
		"duration", res.Elapsed)
}
