package core

import "testing"

func typeItems() []PickerItem {
	return []PickerItem{
		{ID: "civil", Label: "civil"},
		{ID: "new-energy", Label: "new-energy"},
		{ID: "embassy-new", Label: "embassy-new"},
		{ID: "consulate-new", Label: "consulate-new"},
	}
}

func TestPickerFiltersAndRanks(t *testing.T) {
	p := NewPicker(" Plate type ", typeItems())
	if p.Title() != "Plate type" {
		t.Fatalf("title = %q", p.Title())
	}
	for _, k := range []string{"n", "e", "w"} {
		p.HandleKey(k)
	}
	items := p.Items()
	if len(items) != 3 {
		t.Fatalf("matches = %d, want 3: %+v", len(items), items)
	}
	if items[0].ID != "new-energy" {
		t.Fatalf("best match = %q, want new-energy", items[0].ID)
	}
	p.HandleKey("backspace")
	if p.Query() != "ne" {
		t.Fatalf("query = %q, want ne", p.Query())
	}
}

func TestPickerSelectAndCancel(t *testing.T) {
	p := NewPicker("types", typeItems())
	if res := p.HandleKey("up"); res.Action != PickerActionNone {
		t.Fatalf("up at top = %v, want none", res.Action)
	}
	if res := p.HandleKey("down"); res.Action != PickerActionMoved {
		t.Fatalf("down = %v, want moved", res.Action)
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "new-energy" {
		t.Fatalf("enter = %+v", res)
	}
	p.SelectID("consulate-new")
	if p.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", p.Cursor())
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionCancelled {
		t.Fatalf("esc = %v, want cancelled", res.Action)
	}
}

func TestPickerNoMatches(t *testing.T) {
	p := NewPicker("types", typeItems())
	p.SetQuery("zzz")
	if _, ok := p.CurrentItem(); ok {
		t.Fatal("expected no current item")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter with no matches = %v", res.Action)
	}
}

func TestNilPickerIsInert(t *testing.T) {
	var p *Picker
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("nil picker action = %v", res.Action)
	}
	if p.Items() != nil || p.Title() != "" {
		t.Fatal("nil picker should be empty")
	}
}
