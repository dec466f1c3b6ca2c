package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI codes for the section headers.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
)

// colorEnabled reports whether ANSI codes should be emitted. Colors are
// suppressed when stdout is not a TTY or NO_COLOR is set.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Render formats the report as fixed-width terminal tables: explained
// shares per axis, then the loading (or category coordinate) table.
// Observation coordinates are omitted beyond maxObs rows to keep the
// output readable; pass maxObs <= 0 for all of them.
func Render(r *Report, maxObs int) string {
	var sb strings.Builder
	header := func(s string) {
		if colorEnabled() {
			sb.WriteString(colorBold + s + colorReset + "\n")
		} else {
			sb.WriteString(s + "\n")
		}
	}

	header(fmt.Sprintf("%s summary (%d axes)", r.Method, r.Axes))
	sb.WriteString(fmt.Sprintf("%-8s %-12s %-12s\n", "Axis", "Explained", "Cumulative"))
	for i := 0; i < r.Axes; i++ {
		sb.WriteString(fmt.Sprintf("%-8d %-12.4f %-12.4f\n", i+1, r.Explained[i], r.Cumulative[i]))
	}
	sb.WriteString("\n")

	label := "Loadings"
	if r.Method == "MCA" {
		label = "Category coordinates"
	}
	header(label)
	sb.WriteString(fmt.Sprintf("%-24s", "Variable"))
	for i := 0; i < r.Axes; i++ {
		sb.WriteString(fmt.Sprintf("%-12s", fmt.Sprintf("Dim %d", i+1)))
	}
	sb.WriteString("\n")
	for j, name := range r.VariableLabels {
		sb.WriteString(fmt.Sprintf("%-24s", truncate(name, 23)))
		for _, v := range r.Loadings[j] {
			sb.WriteString(fmt.Sprintf("%-12.4f", v))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	n := len(r.Observations)
	shown := n
	if maxObs > 0 && maxObs < n {
		shown = maxObs
	}
	header(fmt.Sprintf("Observation coordinates (%d of %d)", shown, n))
	sb.WriteString(fmt.Sprintf("%-24s", "Observation"))
	for i := 0; i < r.Axes; i++ {
		sb.WriteString(fmt.Sprintf("%-12s", fmt.Sprintf("Dim %d", i+1)))
	}
	sb.WriteString("\n")
	for i := 0; i < shown; i++ {
		sb.WriteString(fmt.Sprintf("%-24s", truncate(r.ObservationLabels[i], 23)))
		for _, v := range r.Observations[i] {
			sb.WriteString(fmt.Sprintf("%-12.4f", v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncate shortens s to at most n runes. Slicing runes rather than bytes
// keeps accented labels valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
