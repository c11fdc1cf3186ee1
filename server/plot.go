package server

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hupe1980/zof/solver"
)

// handlePlot re-runs the solve described by the query parameters and renders
// a PNG of the function curve with the per-iteration root estimates overlaid.
// Re-solving keeps the endpoint stateless, which the tiny iteration counts
// make affordable.
func (s *Server) handlePlot(c *gin.Context) {
	inputs := formInputs{
		Method:  c.Query("method"),
		Coeffs:  c.Query("coeffs"),
		X0:      c.Query("x0"),
		X1:      c.Query("x1"),
		Delta:   c.Query("delta"),
		Tol:     c.Query("tol"),
		MaxIter: c.Query("max_iter"),
	}

	req, err := s.buildRequest(inputs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.engine.Solve(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(res.Trace) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": res.ErrMsg})
		return
	}

	p, err := convergencePlot(req, res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if _, err := wt.WriteTo(c.Writer); err != nil {
		s.logger.Error("plot write failed", "error", err)
	}
}

func convergencePlot(req solver.Request, res solver.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = req.Method.DisplayName() + ": " + req.Coeffs.String()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	curve := plotter.NewFunction(req.Coeffs.Evaluate)
	curve.Samples = 200
	p.Add(curve)
	p.Legend.Add("f(x)", curve)

	pts := make(plotter.XYs, 0, len(res.Trace))
	lo, hi := req.X0, req.X0
	for _, row := range res.Trace {
		x := row.Values["x_val"]
		pts = append(pts, plotter.XY{X: x, Y: req.Coeffs.Evaluate(x)})
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if req.Method.NeedsSecondPoint() {
		lo = math.Min(lo, req.X1)
		hi = math.Max(hi, req.X1)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("estimates", scatter)

	// Pad the axis so endpoint markers stay inside the frame; a degenerate
	// range (single repeated estimate) gets a unit window instead.
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	p.X.Min, p.X.Max = lo-pad, hi+pad

	return p, nil
}
