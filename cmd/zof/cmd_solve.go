package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

func runSolve(cmd *cobra.Command, _ []string) error {
	m, err := method.Parse(flagMethod)
	if err != nil {
		return err
	}

	coeffs, err := polynomial.Parse(flagCoeffs)
	if err != nil {
		return fmt.Errorf("invalid coefficients: %w", err)
	}

	logger := newLogger()
	engine := solver.New(func(o *solver.Options) {
		o.Logger = logger.WithComponent("cli")
	})

	req := solver.Request{
		Method:  m,
		Coeffs:  coeffs,
		X0:      flagX0,
		X1:      flagX1,
		Delta:   flagDelta,
		Tol:     flagTol,
		MaxIter: flagMaxIter,
	}

	res, err := engine.Solve(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.WithComponent("cli").LogSolve(res.Method, res.Iterations(), res.Converged, res.Elapsed, res.ErrMsg)

	printResult(cmd, m, req, res)
	return nil
}

func printResult(cmd *cobra.Command, m method.Method, req solver.Request, res solver.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "--- %s ---\n", m.DisplayName())
	fmt.Fprintln(out, renderPolynomial(m, req))

	if len(res.Trace) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, renderTable(m, res.Trace))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, renderSummary(res))
}
