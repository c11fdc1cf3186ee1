package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/zof/internal/util"
	"github.com/hupe1980/zof/method"
	"github.com/hupe1980/zof/solver"
)

const colWidth = 13

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	polyStyle      = lipgloss.NewStyle().Italic(true)
	convergedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	noticeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// renderTable prints the iteration trace as fixed-width columns, the layout
// the original terminal loop used.
func renderTable(m method.Method, trace []method.Row) string {
	headers := append([]string{"iter"}, m.Headers()...)

	var b strings.Builder

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = center(h, colWidth)
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, "|")))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", (colWidth+1)*len(headers)-1))
	b.WriteByte('\n')

	for _, row := range trace {
		cells = cells[:0]
		cells = append(cells, center(strconv.Itoa(row.Iter), colWidth))
		for _, h := range m.Headers() {
			cells = append(cells, center(util.FormatCell(row.Values[h]), colWidth))
		}
		b.WriteString(strings.Join(cells, "|"))
		b.WriteByte('\n')
	}

	return b.String()
}

// renderSummary prints the terminal line after the trace: converged root,
// best estimate on exhaustion, or the failure message.
func renderSummary(res solver.Result) string {
	switch {
	case res.Converged:
		return convergedStyle.Render(
			fmt.Sprintf("Converged: %s in %d iterations.", util.FormatCell(*res.Root), res.Iterations()))
	case res.Root != nil:
		return noticeStyle.Render(
			fmt.Sprintf("%s Approx root: %s", capitalize(res.ErrMsg), util.FormatCell(*res.Root)))
	default:
		return errorStyle.Render("Error: " + res.ErrMsg)
	}
}

func renderPolynomial(m method.Method, req solver.Request) string {
	label := "P(x)"
	if m == method.FixedPoint {
		label = "g(x)"
	}
	return polyStyle.Render(fmt.Sprintf("%s = %s", label, req.Coeffs.String()))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
