package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/zof/logging"
)

// --- Global Command Variables ---
var (
	flagLogLevel  string
	flagLogFormat string

	// solve flags
	flagMethod  string
	flagCoeffs  string
	flagX0      float64
	flagX1      float64
	flagDelta   float64
	flagTol     float64
	flagMaxIter int

	// serve flags
	flagAddr   string
	flagConfig string

	rootCmd = &cobra.Command{
		Use:   "zof",
		Short: "Locate polynomial roots with six classical iterative methods",
		Long: `zof is a polynomial root-finding tool. Given a coefficient vector
(highest degree first) it locates a root with Bisection, Regula Falsi,
Secant, Newton-Raphson, Fixed Point or Modified Secant iteration and
prints the full per-iteration trace.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Run a single solve and print the iteration table",
		Example: `  zof solve --method newton --coeffs "1 0 -2" --x0 1
  zof solve --method bisection --coeffs "1 0 -2" --x0 0 --x1 2 --tol 1e-4`,
		RunE: runSolve,
	}

	interactiveCmd = &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Prompt-driven solve loop (the classic ZOF menu)",
		RunE:    runInteractive,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the web front end",
		RunE:  runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format (text, json)")

	solveCmd.Flags().StringVar(&flagMethod, "method", "", "method identifier (bisection, regula_falsi, secant, newton, fixed_point, modified_secant)")
	solveCmd.Flags().StringVar(&flagCoeffs, "coeffs", "", "whitespace-delimited coefficients, highest degree first")
	solveCmd.Flags().Float64Var(&flagX0, "x0", 0, "initial guess / lower bracket bound")
	solveCmd.Flags().Float64Var(&flagX1, "x1", 0, "second guess / upper bracket bound")
	solveCmd.Flags().Float64Var(&flagDelta, "delta", 0.01, "perturbation fraction for modified secant")
	solveCmd.Flags().Float64Var(&flagTol, "tol", 1e-6, "convergence tolerance")
	solveCmd.Flags().IntVar(&flagMaxIter, "max-iter", 50, "iteration budget")
	_ = solveCmd.MarkFlagRequired("method")
	_ = solveCmd.MarkFlagRequired("coeffs")

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "path to YAML config file")

	rootCmd.AddCommand(solveCmd, interactiveCmd, serveCmd)
}

func newLogger() *logging.ZofLogger {
	return logging.NewSlogLogger(logging.ParseLevel(flagLogLevel), flagLogFormat, false)
}
