package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/platekbd/core"
	"github.com/jask/platekbd/input"
	"github.com/jask/platekbd/internal/config"
	"github.com/jask/platekbd/internal/logging"
	"github.com/jask/platekbd/keyboard"
	"github.com/jask/platekbd/plate"
	"github.com/jask/platekbd/widgets"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	rowGap        = 1
)

// SaveFunc persists the plate type and returns where it was written.
type SaveFunc func(plate.Type) (string, error)

// Options configures an App. Nil and empty fields fall back to defaults; a nil
// Keyboard uses the geometry of config.Default, so an explicit zero spacing
// needs a non-nil Keyboard.
type Options struct {
	Session  *input.Session
	Bindings []core.KeyBinding
	Keyboard *config.KeyboardConfig
	Save     SaveFunc
	Logger   *slog.Logger
}

// App is the bubbletea model of the plate keyboard. It re-reads layout and
// policy from the session on every render.
type App struct {
	session  *input.Session
	keys     *core.KeyRegistry
	theme    widgets.Theme
	keyWidth int
	spacing  int
	save     SaveFunc
	log      *slog.Logger

	focusRow int
	focusCol int
	width    int
	height   int
	picker   *core.Picker

	status    string
	statusErr bool
	quitting  bool
}

func New(opts Options) *App {
	geometry := config.Default().Keyboard
	if opts.Keyboard != nil {
		geometry = *opts.Keyboard
	}
	a := &App{
		session:  opts.Session,
		keys:     core.NewKeyRegistry(opts.Bindings),
		theme:    widgets.DefaultTheme(),
		keyWidth: geometry.KeyWidth,
		spacing:  geometry.Spacing,
		save:     opts.Save,
		log:      opts.Logger,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if a.session == nil {
		a.session = input.New(plate.Civil)
	}
	if len(opts.Bindings) == 0 {
		a.keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if a.keyWidth <= 0 {
		a.keyWidth = config.Default().Keyboard.KeyWidth
	}
	if a.spacing < 0 {
		a.spacing = 0
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	a.ensureFocus()
	return a
}

func (a *App) Init() tea.Cmd {
	t := a.session.Type()
	return core.StatusCmd(fmt.Sprintf("plate type %s (%d characters)", t, t.MaxLength()))
}

// Result returns the plate text and whether it was confirmed.
func (a *App) Result() (string, bool) {
	return a.session.Text(), a.session.Confirmed()
}

func (a *App) Session() *input.Session { return a.session }

// Focus returns the key under the cursor.
func (a *App) Focus() keyboard.Key {
	layout := a.session.Layout()
	if a.focusRow < len(layout) && a.focusCol < len(layout[a.focusRow]) {
		return layout[a.focusRow][a.focusCol]
	}
	return keyboard.Empty
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		if a.picker != nil {
			return a.handlePickerKey(m)
		}
		return a.handleKeyboardKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	case core.StatusMsg:
		a.setStatus(m.Text, m.IsErr)
	case core.TypeSavedMsg:
		if m.Err != nil {
			a.setStatus("save failed: "+m.Err.Error(), true)
			break
		}
		a.setStatus("saved plate type to "+m.Path, false)
	}
	return a, nil
}

func (a *App) handleKeyboardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.ActionFor(m, core.ScopeKeyboard) {
	case core.ActionQuit:
		a.quitting = true
		return a, tea.Quit
	case core.ActionUp:
		a.moveFocus(-1, 0)
	case core.ActionDown:
		a.moveFocus(1, 0)
	case core.ActionLeft:
		a.moveFocus(0, -1)
	case core.ActionRight:
		a.moveFocus(0, 1)
	case core.ActionPress:
		return a.press(a.Focus())
	case core.ActionDelete:
		return a.press(keyboard.Delete)
	case core.ActionMore:
		if a.session.ShowMore() {
			return a.press(keyboard.Back)
		}
		return a.press(keyboard.ShowMore)
	case core.ActionConfirm:
		return a.press(keyboard.Confirm)
	case core.ActionNextType:
		a.setType(a.cycleType(1))
	case core.ActionPrevType:
		a.setType(a.cycleType(-1))
	case core.ActionPicker:
		a.openPicker()
	case core.ActionReset:
		a.session.Reset()
		a.ensureFocus()
		a.setStatus("cleared", false)
	case core.ActionSave:
		return a, a.saveCmd()
	default:
		if m.Type == tea.KeyRunes {
			return a.feed(string(m.Runes))
		}
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.ActionFor(m, core.ScopePicker) {
	case core.ActionQuit:
		a.quitting = true
		return a, tea.Quit
	case core.ActionClose:
		a.picker = nil
		return a, nil
	case core.ActionSelect:
		a.selectPicked()
		return a, nil
	}
	res := a.picker.HandleKey(m.String())
	switch res.Action {
	case core.PickerActionSelected:
		a.selectPicked()
	case core.PickerActionCancelled:
		a.picker = nil
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.picker != nil || m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return a, nil
	}
	x0, y0 := a.keyboardOrigin()
	row, col, ok := a.keyboardView().KeyAt(a.keyboardWidth(), m.X-x0, m.Y-y0)
	if !ok {
		return a, nil
	}
	a.focusRow, a.focusCol = row, col
	return a.press(a.Focus())
}

func (a *App) press(k keyboard.Key) (tea.Model, tea.Cmd) {
	ev, err := a.session.Press(k)
	if err != nil {
		a.setStatus(err.Error(), true)
		return a, nil
	}
	a.ensureFocus()
	switch ev {
	case input.EventConfirmed:
		a.setStatus("confirmed "+a.session.Text(), false)
		a.quitting = true
		return a, tea.Quit
	case input.EventAppended, input.EventDeleted:
		a.setStatus("", false)
	case input.EventMoreShown:
		a.setStatus("extended keys", false)
	case input.EventMoreHidden:
		a.setStatus("", false)
	}
	return a, nil
}

func (a *App) feed(text string) (tea.Model, tea.Cmd) {
	_, err := a.session.Feed(text)
	a.ensureFocus()
	if err != nil {
		a.setStatus(err.Error(), true)
		return a, nil
	}
	a.setStatus("", false)
	return a, nil
}

func (a *App) setType(t plate.Type) {
	a.session.SetType(t)
	a.ensureFocus()
	a.setStatus(fmt.Sprintf("plate type %s (%d characters)", t, t.MaxLength()), false)
}

func (a *App) cycleType(step int) plate.Type {
	types := plate.Types()
	for i, t := range types {
		if t == a.session.Type() {
			return types[(i+step+len(types))%len(types)]
		}
	}
	return types[0]
}

func (a *App) openPicker() {
	types := plate.Types()
	items := make([]core.PickerItem, 0, len(types))
	for _, t := range types {
		items = append(items, core.PickerItem{
			ID:     t.String(),
			Label:  t.String(),
			Meta:   fmt.Sprintf("%s, %d", t.Code(), t.MaxLength()),
			Search: t.String() + " " + strings.ToLower(t.Code()),
		})
	}
	a.picker = core.NewPicker("Plate type", items)
	a.picker.SelectID(a.session.Type().String())
}

func (a *App) selectPicked() {
	item, ok := a.picker.CurrentItem()
	a.picker = nil
	if !ok {
		return
	}
	t, err := plate.ParseType(item.ID)
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setType(t)
}

func (a *App) saveCmd() tea.Cmd {
	if a.save == nil {
		return core.ErrorCmd(fmt.Errorf("no config to save to"))
	}
	save, t := a.save, a.session.Type()
	return func() tea.Msg {
		path, err := save(t)
		return core.TypeSavedMsg{Path: path, Err: err}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
	if isErr {
		a.log.Debug("status error", "msg", text)
	}
}
