package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

const quitChoice = "quit"

// runInteractive is the classic ZOF menu loop: pick a method, enter the
// polynomial and parameters, watch the trace, repeat until quit.
func runInteractive(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	engine := solver.New(func(o *solver.Options) {
		o.Logger = logger.WithComponent("cli")
	})

	for {
		choice, err := promptMethod()
		if err != nil {
			return err
		}
		if choice == quitChoice {
			return nil
		}

		m, err := method.Parse(choice)
		if err != nil {
			return err
		}

		req, err := promptRequest(m)
		if err != nil {
			return err
		}

		res, err := engine.Solve(cmd.Context(), req)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error: "+err.Error()))
			continue
		}

		printResult(cmd, m, req, res)
		fmt.Fprintln(cmd.OutOrStdout())
	}
}

func promptMethod() (string, error) {
	options := make([]huh.Option[string], 0, len(method.Methods())+1)
	for _, m := range method.Methods() {
		options = append(options, huh.NewOption(m.DisplayName(), m.String()))
	}
	options = append(options, huh.NewOption("Quit", quitChoice))

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("ZOF Poly Solver").
			Description("Select a root-finding method").
			Options(options...).
			Value(&choice),
	))

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// promptRequest gathers the method's inputs, validating each field as it is
// typed so the loop never reaches the engine with malformed text.
func promptRequest(m method.Method) (solver.Request, error) {
	coeffsTitle := "Coefficients (an ... a0)"
	x0Title := "Initial guess (x0)"
	x1Title := "Second guess (x1)"
	if m == method.FixedPoint {
		coeffsTitle = "g(x) coefficients (an ... a0)"
	}
	if m.IsBracketing() {
		x0Title = "Lower bound (a)"
		x1Title = "Upper bound (b)"
	}

	var (
		coeffsText  = ""
		x0Text      = "0"
		x1Text      = "0"
		deltaText   = strconv.FormatFloat(solver.DefaultDelta, 'g', -1, 64)
		tolText     = "1e-6"
		maxIterText = "50"
	)

	fields := []huh.Field{
		huh.NewInput().
			Title(coeffsTitle).
			Placeholder("1 0 -2").
			Validate(validCoeffs).
			Value(&coeffsText),
		huh.NewInput().Title(x0Title).Validate(validFloat).Value(&x0Text),
	}
	if m.NeedsSecondPoint() {
		fields = append(fields, huh.NewInput().Title(x1Title).Validate(validFloat).Value(&x1Text))
	}
	if m.NeedsDelta() {
		fields = append(fields, huh.NewInput().Title("Delta").Validate(validFloat).Value(&deltaText))
	}
	fields = append(fields,
		huh.NewInput().Title("Tolerance").Validate(validFloat).Value(&tolText),
		huh.NewInput().Title("Max iterations").Validate(validInt).Value(&maxIterText),
	)

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return solver.Request{}, err
	}

	// Validated above; errors here are unreachable.
	coeffs, _ := polynomial.Parse(coeffsText)
	x0, _ := strconv.ParseFloat(x0Text, 64)
	x1, _ := strconv.ParseFloat(x1Text, 64)
	delta, _ := strconv.ParseFloat(deltaText, 64)
	tol, _ := strconv.ParseFloat(tolText, 64)
	maxIter, _ := strconv.Atoi(maxIterText)

	return solver.Request{
		Method:  m,
		Coeffs:  coeffs,
		X0:      x0,
		X1:      x1,
		Delta:   delta,
		Tol:     tol,
		MaxIter: maxIter,
	}, nil
}

func validCoeffs(s string) error {
	_, err := polynomial.Parse(s)
	return err
}

func validFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func validInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
