package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hupe1980/zof/internal/util"
	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/polynomial"
	"github.com/hupe1980/zof/solver"
)

// methodInfo is the metadata clients need to build an input form.
type methodInfo struct {
	Value            string `json:"value"`
	Name             string `json:"name"`
	NeedsSecondPoint bool   `json:"needs_second_point"`
	NeedsDelta       bool   `json:"needs_delta"`
}

func methodInfos() []methodInfo {
	infos := make([]methodInfo, 0, len(method.Methods()))
	for _, m := range method.Methods() {
		infos = append(infos, methodInfo{
			Value:            m.String(),
			Name:             m.DisplayName(),
			NeedsSecondPoint: m.NeedsSecondPoint(),
			NeedsDelta:       m.NeedsDelta(),
		})
	}
	return infos
}

// formInputs echoes the raw form values back into the re-rendered page.
type formInputs struct {
	Method  string
	Coeffs  string
	X0      string
	X1      string
	Delta   string
	Tol     string
	MaxIter string
}

// tableView is the render-ready iteration table: ordered headers and
// pre-formatted cells, shared shape with the terminal renderer.
type tableView struct {
	Headers []string
	Rows    [][]string
}

func buildTable(m method.Method, trace []method.Row) tableView {
	headers := m.Headers()

	view := tableView{Headers: append([]string{"iter"}, headers...)}
	for _, row := range trace {
		cells := make([]string, 0, len(headers)+1)
		cells = append(cells, strconv.Itoa(row.Iter))
		for _, h := range headers {
			cells = append(cells, util.FormatCell(row.Values[h]))
		}
		view.Rows = append(view.Rows, cells)
	}

	return view
}

// resultView is the page fragment for a completed solve.
type resultView struct {
	Poly      string
	Table     tableView
	Root      string
	Converged bool
	Msg       string
	PlotURL   string
}

type pageData struct {
	Methods []methodInfo
	Inputs  formInputs
	Error   string
	Result  *resultView
}

func (s *Server) defaultInputs() formInputs {
	return formInputs{
		Method:  method.Bisection.String(),
		Tol:     strconv.FormatFloat(s.defaults.Tol, 'g', -1, 64),
		MaxIter: strconv.Itoa(s.defaults.MaxIter),
		Delta:   strconv.FormatFloat(s.defaults.Delta, 'g', -1, 64),
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", pageData{
		Methods: methodInfos(),
		Inputs:  s.defaultInputs(),
	})
}

func (s *Server) handleForm(c *gin.Context) {
	inputs := formInputs{
		Method:  c.PostForm("method"),
		Coeffs:  c.PostForm("coeffs"),
		X0:      c.PostForm("x0"),
		X1:      c.PostForm("x1"),
		Delta:   c.PostForm("delta"),
		Tol:     c.PostForm("tol"),
		MaxIter: c.PostForm("max_iter"),
	}

	req, err := s.buildRequest(inputs)
	if err != nil {
		c.HTML(http.StatusOK, "index", pageData{
			Methods: methodInfos(),
			Inputs:  inputs,
			Error:   err.Error(),
		})
		return
	}

	res, err := s.engine.Solve(c.Request.Context(), req)
	if err != nil {
		c.HTML(http.StatusOK, "index", pageData{
			Methods: methodInfos(),
			Inputs:  inputs,
			Error:   err.Error(),
		})
		return
	}

	view := &resultView{
		Poly:      req.Coeffs.String(),
		Table:     buildTable(req.Method, res.Trace),
		Converged: res.Converged,
		Msg:       res.ErrMsg,
	}
	if res.Root != nil {
		view.Root = util.FormatCell(*res.Root)
		view.PlotURL = plotURL(inputs)
	}

	c.HTML(http.StatusOK, "index", pageData{
		Methods: methodInfos(),
		Inputs:  inputs,
		Result:  view,
	})
}

// buildRequest owns the text-to-numbers boundary for the form: it parses the
// coefficient text and numeric fields, applying the configured defaults for
// blanks the same way the original form did.
func (s *Server) buildRequest(inputs formInputs) (solver.Request, error) {
	m, err := method.Parse(inputs.Method)
	if err != nil {
		return solver.Request{}, err
	}

	coeffs, err := polynomial.Parse(inputs.Coeffs)
	if err != nil {
		return solver.Request{}, fmt.Errorf("invalid coefficients: %w", err)
	}

	x0, err := parseFloatField("x0", inputs.X0, 0)
	if err != nil {
		return solver.Request{}, err
	}
	x1, err := parseFloatField("x1", inputs.X1, 0)
	if err != nil {
		return solver.Request{}, err
	}
	delta, err := parseFloatField("delta", inputs.Delta, s.defaults.Delta)
	if err != nil {
		return solver.Request{}, err
	}
	tol, err := parseFloatField("tol", inputs.Tol, s.defaults.Tol)
	if err != nil {
		return solver.Request{}, err
	}

	maxIter := s.defaults.MaxIter
	if inputs.MaxIter != "" {
		maxIter, err = strconv.Atoi(inputs.MaxIter)
		if err != nil {
			return solver.Request{}, fmt.Errorf("invalid max_iter: %q", inputs.MaxIter)
		}
	}

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

func parseFloatField(name, value string, fallback float64) (float64, error) {
	if value == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, value)
	}
	return v, nil
}

func plotURL(inputs formInputs) string {
	q := url.Values{}
	q.Set("method", inputs.Method)
	q.Set("coeffs", inputs.Coeffs)
	q.Set("x0", inputs.X0)
	q.Set("x1", inputs.X1)
	q.Set("delta", inputs.Delta)
	q.Set("tol", inputs.Tol)
	q.Set("max_iter", inputs.MaxIter)
	return "/plot?" + q.Encode()
}

// solveRequest is the JSON API body. Coefficients arrive as the same
// whitespace-delimited text the form uses so both boundaries share one
// parser.
type solveRequest struct {
	Method  string  `json:"method" binding:"required"`
	Coeffs  string  `json:"coeffs" binding:"required"`
	X0      float64 `json:"x0"`
	X1      float64 `json:"x1"`
	Delta   float64 `json:"delta"`
	Tol     float64 `json:"tol" binding:"required,gt=0"`
	MaxIter int     `json:"max_iter" binding:"required,gt=0"`
}

func (s *Server) handleSolve(c *gin.Context) {
	start := time.Now()

	var body solveRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m, err := method.Parse(body.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coeffs, err := polynomial.Parse(body.Coeffs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid coefficients: %v", err)})
		return
	}

	res, err := s.engine.Solve(c.Request.Context(), solver.Request{
		Method:  m,
		Coeffs:  coeffs,
		X0:      body.X0,
		X1:      body.X1,
		Delta:   body.Delta,
		Tol:     body.Tol,
		MaxIter: body.MaxIter,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("api solve",
		"solve_id", res.ID, "method", res.Method,
		"iterations", res.Iterations(), "converged", res.Converged,
		"duration", time.Since(start))

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": methodInfos()})
}
