package widgets

// Widget draws itself into a width x height cell area. Implementations may
// return fewer lines than height; callers pad.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget that renders a fixed string.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(string(t), min(height, lineCount(string(t))))
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return joinLines(lines)
}
