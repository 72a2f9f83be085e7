// Package tui renders attribute sheets and effect traces for the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"

	"clampvar/internal/attribute"
	"clampvar/internal/effect"
	"clampvar/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

// lowFraction is the fill below which a bar is drawn in the warning color.
const lowFraction = 0.25

// RenderSheet draws one line per attribute: name, value, a bar showing
// where the value sits in its range, and the range itself.
func RenderSheet(title string, values map[string]float64) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, name := range attribute.Names() {
		lo, hi, err := attribute.Bounds(name)
		if err != nil {
			continue
		}
		b.WriteString(renderAttributeLine(name, values[name], lo, hi))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderAttributeLine(name string, value, lo, hi float64) string {
	fraction := (value - lo) / (hi - lo)

	return fmt.Sprintf("  %s %s  %s  %s",
		labelStyle.Render(fmt.Sprintf("%-8s", name)),
		valueStyle.Render(fmt.Sprintf("%7.6g", value)),
		renderBar(fraction, barWidth),
		boundsStyle.Render(fmt.Sprintf("[%g, %g]", lo, hi)))
}

func renderBar(fraction float64, width int) string {
	filled := util.Clamp(int(math.Round(fraction*float64(width))), 0, width)
	empty := width - filled

	style := barStyle
	if fraction < lowFraction {
		style = barLowStyle
	}

	return style.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", empty))
}

// RenderSteps lists each effect with its outcome.
func RenderSteps(effects []effect.Effect, results []effect.Result) string {
	var b strings.Builder

	for i, e := range effects {
		var r effect.Result
		if i < len(results) {
			r = results[i]
		}
		b.WriteString(fmt.Sprintf("  %2d. %s %s", i+1, statusStyle(r.Status).Render(fmt.Sprintf("%-8s", r.Status)), e.Name()))
		if r.Error != nil {
			b.WriteString(failedStyle.Render(": " + r.Error.Error()))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderSummary shows effect outcome counts.
func RenderSummary(s effect.Summary) string {
	return fmt.Sprintf("  %s applied, %s skipped, %s failed",
		appliedStyle.Render(fmt.Sprint(s.Applied)),
		skippedStyle.Render(fmt.Sprint(s.Skipped)),
		failedStyle.Render(fmt.Sprint(s.Failed)))
}

func statusStyle(s effect.Status) lipgloss.Style {
	switch s {
	case effect.StatusApplied:
		return appliedStyle
	case effect.StatusFailed:
		return failedStyle
	}
	return skippedStyle
}
