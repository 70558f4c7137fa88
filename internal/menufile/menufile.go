// Package menufile reads and writes menu descriptions in TOML.
//
//	title = "Hello, World!"
//	footer = "Press enter to pick"
//	width = 33
//
//	[[item]]
//	text = "Increment"
//	action = "increment"
//
//	[[item]]
//	text = "Not yet"
//	disabled = true
package menufile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/marcus/gridmenu/pkg/menu"
)

// ErrNoItems is returned for a file without any [[item]] table.
var ErrNoItems = errors.New("menu file has no items")

// Item is one [[item]] table.
type Item struct {
	Text     string `toml:"text"`
	Disabled bool   `toml:"disabled,omitempty"`
	Action   string `toml:"action,omitempty"`
}

// File is a parsed menu file. Geometry keys left out stay unset so the
// layout engine resolves them.
type File struct {
	Title      string `toml:"title,omitempty"`
	Footer     string `toml:"footer,omitempty"`
	TitleRows  *int   `toml:"title_rows,omitempty"`
	FooterRows *int   `toml:"footer_rows,omitempty"`
	Y          *int   `toml:"y,omitempty"`
	X          *int   `toml:"x,omitempty"`
	Height     *int   `toml:"height,omitempty"`
	Width      *int   `toml:"width,omitempty"`
	Items      []Item `toml:"item"`
}

// Load reads a menu file from disk
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mf, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mf, nil
}

// Parse decodes a menu file. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Parse(r io.Reader) (*File, error) {
	var mf File
	md, err := toml.NewDecoder(r).Decode(&mf)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(mf.Items) == 0 {
		return nil, ErrNoItems
	}
	return &mf, nil
}

// Save writes a menu file to disk
func Save(path string, mf *File) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(mf); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// FromConfig captures the current content and geometry of c.
func FromConfig(c *menu.Config) *File {
	mf := &File{Title: c.Title(), Footer: c.Footer()}
	mf.TitleRows = set(c.TitleRows)
	mf.FooterRows = set(c.FooterRows)
	mf.Y = set(c.Y)
	mf.X = set(c.X)
	mf.Height = set(c.Height)
	mf.Width = set(c.Width)
	for i := 0; i < c.Len(); i++ {
		mf.Items = append(mf.Items, Item{
			Text:     c.Item(i),
			Disabled: c.State(i) == menu.Disabled,
		})
	}
	return mf
}

// Apply copies the file's content and geometry into c. Actions name
// callbacks in actions; an unknown action is an error.
func (mf *File) Apply(c *menu.Config, actions map[string]menu.Callback) error {
	items := make([]string, len(mf.Items))
	states := make([]menu.State, len(mf.Items))
	callbacks := make([]menu.Callback, len(mf.Items))
	for i, it := range mf.Items {
		items[i] = it.Text
		if it.Disabled {
			states[i] = menu.Disabled
		}
		if it.Action == "" {
			continue
		}
		cb, ok := actions[it.Action]
		if !ok {
			return fmt.Errorf("item %d (%q): unknown action %q", i, it.Text, it.Action)
		}
		callbacks[i] = cb
	}

	c.SetTitle(mf.Title)
	c.SetFooter(mf.Footer)
	c.SetItems(items)
	c.SetStates(states)
	c.SetCallbacks(callbacks)

	apply(&c.TitleRows, mf.TitleRows)
	apply(&c.FooterRows, mf.FooterRows)
	apply(&c.Y, mf.Y)
	apply(&c.X, mf.X)
	apply(&c.Height, mf.Height)
	apply(&c.Width, mf.Width)
	return nil
}

func apply(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func set(v int) *int {
	if v == menu.Unset {
		return nil
	}
	return &v
}
