package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Heights split the area by Ratios; a
// widget with a fixed Heights entry keeps it and the rest share what remains.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Heights []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := v.heights(max(1, height-spacingTotal))
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		part := splitToLines(w.Render(width, heights[i]), heights[i])
		for _, line := range part {
			lines = append(lines, padRight(line, width))
		}
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, strings.Repeat(" ", width))
			}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return joinLines(lines)
}

func (v VStack) heights(usable int) []int {
	n := len(v.Widgets)
	if len(v.Heights) != n {
		return splitWidths(usable, n, v.Ratios)
	}
	out := make([]int, n)
	flex := make([]int, 0, n)
	for i, h := range v.Heights {
		if h > 0 {
			out[i] = min(h, usable)
			usable -= out[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 {
		return out
	}
	shares := splitWidths(max(0, usable), len(flex), nil)
	for j, i := range flex {
		out[i] = shares[j]
	}
	return out
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += ratioOf(r)
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratioOf(ratios[i]) / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func ratioOf(r float64) float64 {
	if r <= 0 {
		return 1
	}
	return r
}

// Center pads s on both sides to width display columns.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
