package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/platekbd/core"
	"github.com/jask/platekbd/widgets"
)

// Rows above the keyboard body: header, gap, plate, gap, pane border.
const keyboardTop = 5

func (a *App) keyboardWidth() int {
	slots := widgets.DefaultSlots
	return slots*a.keyWidth + (slots-1)*a.spacing
}

func (a *App) keyboardView() widgets.KeyboardView {
	return widgets.KeyboardView{
		Layout:   a.session.Layout(),
		Policy:   a.session.Policy(),
		FocusRow: a.focusRow,
		FocusCol: a.focusCol,
		Slots:    widgets.DefaultSlots,
		Spacing:  a.spacing,
		RowGap:   rowGap,
		Theme:    a.theme,
	}
}

// keyboardOrigin is the screen cell of the keyboard body's top-left corner.
func (a *App) keyboardOrigin() (x, y int) {
	paneWidth := a.keyboardWidth() + 4
	return max(0, (a.width-paneWidth)/2) + 2, keyboardTop
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width, height := max(1, a.width), max(1, a.height)

	t := a.session.Type()
	detail := fmt.Sprintf("%s  %d/%d", t, a.session.Index(), t.MaxLength())
	if a.session.ShowMore() {
		detail += "  more"
	}
	header := core.RenderHeader("platekbd", detail, width)
	field := widgets.PlateField{Text: a.session.Text(), Type: t, Focused: true}.Render(width, 1)

	kv := a.keyboardView()
	pane := widgets.Pane{Title: "Keyboard", Body: kv, Focused: a.picker == nil}
	paneWidth := a.keyboardWidth() + 4
	keyboardBlock := indent(pane.Render(paneWidth, kv.Height()+2), max(0, (width-paneWidth)/2))

	scope := core.ScopeKeyboard
	if a.picker != nil {
		scope = core.ScopePicker
	}
	body := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(header),
			widgets.Text(field),
			widgets.Text(keyboardBlock),
			widgets.Text(core.RenderStatusBar(a.status, a.statusErr, width)),
			widgets.Text(core.RenderFooter(a.keys.HelpBindings(scope), width)),
		},
		Heights: []int{1, 1, 0, 1, 1},
		Spacing: 1,
	}
	out := body.Render(width, height)
	if a.picker != nil {
		out = widgets.RenderPopup(out, a.renderPicker(), width, height)
	}
	return out
}

func (a *App) renderPicker() string {
	items := a.picker.Items()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprintf("%-14s %s", item.Label, item.Meta)
	}
	title := a.picker.Title()
	if q := a.picker.Query(); q != "" {
		title += ": " + q
	}
	return widgets.List{Title: title, Items: labels, Cursor: a.picker.Cursor()}.Render(34, max(1, len(labels))+1)
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > 0 {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
