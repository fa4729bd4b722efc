// Package input turns key taps into plate text.
//
// A Session is what a keyboard front end keeps between keystrokes: the plate type,
// the characters entered so far and whether the extended layout is showing. After
// every Press the caller asks the session for a fresh Layout and Policy and
// re-renders. A Session is owned by one goroutine; it is not safe for concurrent
// mutation.
package input

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/width"

	"github.com/jask/platekbd/internal/logging"
	"github.com/jask/platekbd/keyboard"
	"github.com/jask/platekbd/plate"
)

// ErrConfirmIncomplete is returned by Press(Confirm) when the session requires a
// complete plate and the plate is still short.
var ErrConfirmIncomplete = errors.New("input: plate incomplete")

// Event describes what a successful Press did.
type Event int

const (
	EventNone Event = iota
	EventAppended
	EventDeleted
	EventMoreShown
	EventMoreHidden
	EventConfirmed
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventAppended:
		return "appended"
	case EventDeleted:
		return "deleted"
	case EventMoreShown:
		return "more_shown"
	case EventMoreHidden:
		return "more_hidden"
	case EventConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type Session struct {
	id                  string
	typ                 plate.Type
	keys                []keyboard.Key
	showMore            bool
	confirmed           bool
	confirmRequiresFull bool
	log                 *slog.Logger
}

type Option func(*Session)

// WithLogger sets the logger; records are tagged with the session ID.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithConfirmRequiresFull makes Confirm fail until the plate is complete.
func WithConfirmRequiresFull(v bool) Option {
	return func(s *Session) { s.confirmRequiresFull = v }
}

// WithText pre-fills the plate. Characters the policy rejects are dropped
// together with everything after them.
func WithText(text string) Option {
	return func(s *Session) {
		s.keys = s.keys[:0]
		_, _ = s.Feed(text)
	}
}

func New(t plate.Type, opts ...Option) *Session {
	s := &Session{
		id:  uuid.NewString(),
		typ: t,
		log: logging.Discard(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.log = logging.WithSession(s.log, s.id)
	s.log.Debug("session started", "type", t.String())
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Type() plate.Type { return s.typ }

// Index is the position of the next character: the number entered so far.
func (s *Session) Index() int { return len(s.keys) }

func (s *Session) Text() string {
	out := make([]rune, len(s.keys))
	for i, k := range s.keys {
		out[i] = rune(k)
	}
	return string(out)
}

func (s *Session) ShowMore() bool { return s.showMore }

func (s *Session) Confirmed() bool { return s.confirmed }

// Complete reports whether every character of the plate has been entered.
func (s *Session) Complete() bool {
	return len(s.keys) == s.typ.MaxLength()
}

// Layout returns the rows to show for the current state.
func (s *Session) Layout() keyboard.Layout {
	layout, err := keyboard.SelectLayout(s.Index(), s.showMore, s.typ)
	if err != nil {
		// Index is kept within [0, MaxLength] by Press and SetType.
		panic(err)
	}
	return layout
}

// Policy returns the enable policy for the current state.
func (s *Session) Policy() keyboard.Policy {
	return keyboard.PlateNumber{Type: s.typ, Index: s.Index()}
}

// Enabled is shorthand for Policy().Enabled(k).
func (s *Session) Enabled(k keyboard.Key) bool {
	return keyboard.IsKeyEnabled(k, s.Index(), s.typ)
}

// Press applies one key tap.
func (s *Session) Press(k keyboard.Key) (Event, error) {
	ev, err := s.press(k)
	if err != nil {
		s.log.Debug("key rejected", "key", k.String(), "index", s.Index(), "err", err)
		return ev, err
	}
	s.log.Debug("key pressed", "key", k.String(), "event", ev.String(), "text", s.Text())
	return ev, nil
}

func (s *Session) press(k keyboard.Key) (Event, error) {
	switch k {
	case keyboard.Empty:
		return EventNone, fmt.Errorf("press %s: %w", k, keyboard.ErrNotTappable)
	case keyboard.ShowMore:
		s.showMore = true
		return EventMoreShown, nil
	case keyboard.Back:
		s.showMore = false
		return EventMoreHidden, nil
	case keyboard.Confirm:
		if s.confirmRequiresFull && !s.Complete() {
			return EventNone, fmt.Errorf("confirm at %d of %d: %w", s.Index(), s.typ.MaxLength(), ErrConfirmIncomplete)
		}
		s.confirmed = true
		s.log.Info("plate confirmed", "type", s.typ.String(), "text", s.Text(), "complete", s.Complete())
		return EventConfirmed, nil
	case keyboard.Delete:
		if !s.Enabled(k) {
			return EventNone, fmt.Errorf("press %s at index 0: %w", k, keyboard.ErrKeyDisabled)
		}
		s.keys = s.keys[:len(s.keys)-1]
		s.confirmed = false
		return EventDeleted, nil
	}

	if s.Complete() {
		return EventNone, fmt.Errorf("press %s: %w", k, keyboard.ErrFull)
	}
	if !s.Enabled(k) {
		return EventNone, fmt.Errorf("press %s at index %d of %s plate: %w", k, s.Index(), s.typ, keyboard.ErrKeyDisabled)
	}
	s.keys = append(s.keys, k)
	s.confirmed = false
	return EventAppended, nil
}

// Feed presses every rune of text in order. Full-width forms are folded to their
// narrow equivalents and letters are upper-cased first. It stops at the first
// rejected rune and returns how many runes were accepted.
func (s *Session) Feed(text string) (int, error) {
	n := 0
	for _, r := range Normalize(text) {
		if _, err := s.Press(keyboard.Key(r)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// SetType switches the plate type, truncating the text to the new maximum
// length. The extended layout is closed.
func (s *Session) SetType(t plate.Type) {
	if t == s.typ {
		return
	}
	s.typ = t
	if len(s.keys) > t.MaxLength() {
		s.keys = s.keys[:t.MaxLength()]
	}
	s.showMore = false
	s.confirmed = false
	s.log.Info("plate type changed", "type", t.String(), "text", s.Text())
}

// Reset clears the text and closes the extended layout.
func (s *Session) Reset() {
	s.keys = s.keys[:0]
	s.showMore = false
	s.confirmed = false
}

// Normalize folds full-width characters to narrow and upper-cases letters, so
// text pasted from other input methods matches the keyboard's keys.
func Normalize(text string) string {
	text = width.Narrow.String(text)
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= 'a' && r <= 'z' {
			r = unicode.ToUpper(r)
		}
		out = append(out, r)
	}
	return string(out)
}

// Check validates a complete plate of type t by replaying it through the
// keyboard rules.
func Check(t plate.Type, text string) error {
	s := New(t)
	n, err := s.Feed(text)
	if err != nil {
		return fmt.Errorf("character %d of %q: %w", n+1, text, err)
	}
	if !s.Complete() {
		return fmt.Errorf("%q has %d of %d characters: %w", text, s.Index(), t.MaxLength(), ErrConfirmIncomplete)
	}
	return nil
}
