package menufile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/gridmenu/pkg/menu"
)

const sample = `
title = "Hello, World!"
footer = "pick one"
footer_rows = 0
x = 2
width = 33

[[item]]
text = "Increment"
action = "bump"

[[item]]
text = "Disabled"
disabled = true

[[item]]
text = "Plain"
`

func TestParse(t *testing.T) {
	mf, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mf.Title != "Hello, World!" {
		t.Errorf("Title: got %q", mf.Title)
	}
	if len(mf.Items) != 3 {
		t.Fatalf("Items: got %d, want 3", len(mf.Items))
	}
	if mf.Items[0].Action != "bump" || !mf.Items[1].Disabled {
		t.Errorf("Items: got %+v", mf.Items)
	}
	if mf.Width == nil || *mf.Width != 33 {
		t.Errorf("Width: got %v, want 33", mf.Width)
	}
	if mf.Height != nil {
		t.Errorf("Height: got %v, want unset", *mf.Height)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"no items", `title = "x"`, func(err error) bool { return errors.Is(err, ErrNoItems) }},
		{"unknown key", "colour = 3\n[[item]]\ntext = \"a\"", func(err error) bool {
			return err != nil && strings.Contains(err.Error(), "colour")
		}},
		{"bad syntax", "title = ", func(err error) bool { return err != nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	mf, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	bumped := false
	actions := map[string]menu.Callback{
		"bump": func(*menu.Config, int) menu.Reply {
			bumped = true
			return menu.Consumed
		},
	}

	c := menu.NewConfig(24, 80)
	if err := mf.Apply(c, actions); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if c.Len() != 3 || c.Item(2) != "Plain" {
		t.Errorf("items not applied: len=%d", c.Len())
	}
	if c.State(1) != menu.Disabled || c.State(0) != menu.Enabled {
		t.Errorf("states: got %v %v", c.State(0), c.State(1))
	}
	if c.Callback(2) != nil {
		t.Error("item without action has a callback")
	}
	c.Callback(0)(c, 0)
	if !bumped {
		t.Error("action not bound")
	}
	if c.X != 2 || c.Width != 33 || c.FooterRows != 0 {
		t.Errorf("geometry: x=%d width=%d footer_rows=%d", c.X, c.Width, c.FooterRows)
	}
	if c.Y != menu.Unset || c.Height != menu.Unset || c.TitleRows != 2 {
		t.Errorf("unset geometry overwritten: y=%d height=%d title_rows=%d", c.Y, c.Height, c.TitleRows)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	mf := &File{Items: []Item{{Text: "a", Action: "missing"}}}
	if err := mf.Apply(menu.NewConfig(24, 80), nil); err == nil {
		t.Fatal("Apply should reject unknown action")
	}
}

func TestSaveLoad(t *testing.T) {
	c := menu.NewConfig(24, 80, "one", "two")
	c.SetTitle("T")
	c.SetStates([]menu.State{menu.Enabled, menu.Disabled})
	c.Width = 20

	path := filepath.Join(t.TempDir(), "menus", "m.toml")
	if err := Save(path, FromConfig(c)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mf, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if mf.Title != "T" || len(mf.Items) != 2 || !mf.Items[1].Disabled {
		t.Errorf("loaded: %+v", mf)
	}
	if mf.Width == nil || *mf.Width != 20 || mf.X != nil {
		t.Errorf("geometry: width=%v x=%v", mf.Width, mf.X)
	}
}

func TestSaveReportsWriteErrors(t *testing.T) {
	// The target is an existing directory, so the write itself fails.
	dir := t.TempDir()
	mf := &File{Items: []Item{{Text: "a"}}}

	if err := Save(dir, mf); err == nil {
		t.Fatal("Save into a directory path should fail")
	}
}
