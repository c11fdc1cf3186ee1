// Package zof provides a high-level façade over the solver engine, the six
// root-finding method variants and the logging abstraction. Most applications
// interact with this package by:
//  1. Creating a ZOF via New() (optionally overriding the logger)
//  2. Building a solver.Request (method, coefficients, guesses, tolerance)
//  3. Calling Solve and rendering the returned Result
//
// The façade delegates iteration to solver.Engine while keeping setup
// ergonomics concise. Defaults are safe for library embedding (silent
// logger); the bundled front ends supply a structured logger.
package zof

import (
	"context"

	"github.com/hupe1980/zof/logging"
	"github.com/hupe1980/zof/solver"
)

// Options configures the ZOF instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// MaxTrace caps the iteration budget of any single solve. Set to 0 for
	// no cap.
	MaxTrace int
}

// ZOF is the high-level façade aggregating the solver engine and its
// configuration.
type ZOF struct {
	opts   Options
	engine *solver.Engine
}

// New creates a new ZOF instance with optional overrides.
func New(optFns ...func(o *Options)) *ZOF {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		MaxTrace: 10000,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	engine := solver.New(func(o *solver.Options) {
		o.Logger = opts.Logger
		o.MaxTrace = opts.MaxTrace
	})

	return &ZOF{opts: opts, engine: engine}
}

// Solve runs one root-finding request to completion. See solver.Engine.Solve
// for the full contract.
func (z *ZOF) Solve(ctx context.Context, req solver.Request) (solver.Result, error) {
	return z.engine.Solve(ctx, req)
}

// Engine exposes the underlying solver engine for callers that wire it into
// their own front ends.
func (z *ZOF) Engine() *solver.Engine {
	return z.engine
}

// Solve is a package-level convenience using default options.
func Solve(ctx context.Context, req solver.Request) (solver.Result, error) {
	return New().Solve(ctx, req)
}
