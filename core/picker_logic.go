package core

import (
	"sort"
	"strings"
)

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a filter-as-you-type list. Items are ranked by fuzzy score and
// keep their input order on ties.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.cursor = 0
	p.rebuildFiltered()
}

// SelectID moves the cursor to the item with id, if it is visible.
func (p *Picker) SelectID(id string) {
	if p == nil {
		return
	}
	for i, item := range p.filtered {
		if item.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(0, p.cursor), len(p.filtered)-1)
	return p.filtered[idx], true
}

// HandleKey applies one key by its bubbletea name. Printable keys extend the
// query, so movement is on the arrow keys only.
func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "up", "ctrl+k":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "ctrl+j":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "enter":
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	p.filtered = make([]PickerItem, len(scored))
	for i, row := range scored {
		p.filtered[i] = row.item
	}
	p.cursor = min(max(0, p.cursor), max(0, len(p.filtered)-1))
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
