package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestCheckCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"check", "-type", "civil", "京A12345", "京ａ１２３４５"}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit = %d, stdout %q stderr %q", code, out.String(), errOut.String())
	}
	if strings.Count(out.String(), "ok") != 2 {
		t.Fatalf("stdout = %q", out.String())
	}

	out.Reset()
	code = run([]string{"check", "-type", "civil", "京A12345", "京AI2345"}, &out, &errOut)
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "FAIL 京AI2345") {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestCheckUsageErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"check"}, &out, &errOut); code != 2 {
		t.Fatalf("missing plates exit = %d, want 2", code)
	}
	errOut.Reset()
	if code := run([]string{"check", "-type", "civl", "京A12345"}, &out, &errOut); code != 2 {
		t.Fatalf("bad type exit = %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), `did you mean "civil"`) {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestLayoutCommandEmitsTOML(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"layout", "-type", "civil", "-index", "1"}, &out, &errOut); code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, errOut.String())
	}
	var doc layoutDoc
	if _, err := toml.Decode(out.String(), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if doc.Type != "civil" || doc.Index != 1 || len(doc.Rows) != 4 {
		t.Fatalf("doc = %+v", doc)
	}
	first := doc.Rows[0].Keys[0]
	if first.Key != "1" || first.Enabled {
		t.Fatalf("first key = %+v, want disabled 1", first)
	}
	q := doc.Rows[1].Keys[0]
	if q.Key != "Q" || !q.Enabled {
		t.Fatalf("Q = %+v, want enabled", q)
	}
	last := doc.Rows[3].Keys[len(doc.Rows[3].Keys)-1]
	if last.Key != "Confirm" || last.Label != "OK" || !last.Control || !last.Enabled {
		t.Fatalf("last key = %+v", last)
	}
}

func TestLayoutCommandRejectsIndex(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"layout", "-type", "embassy-new", "-index", "7"}, &out, &errOut); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestTypesCommand(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"types"}, &out, &out); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("lines = %d, want 11:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "civil") || !strings.Contains(lines[3], "WJ2012") {
		t.Fatalf("unexpected table:\n%s", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"frobnicate"}, &out, &errOut); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "Unknown command") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}
