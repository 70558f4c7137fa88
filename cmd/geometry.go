package cmd

import (
	"github.com/spf13/pflag"

	"github.com/marcus/gridmenu/pkg/menu"
)

// geometryFlags maps flag names to the config fields they set.
var geometryFlags = []struct {
	name  string
	usage string
	field func(c *menu.Config) *int
}{
	{"y", "top row (default: centred)", func(c *menu.Config) *int { return &c.Y }},
	{"x", "left column (default: centred)", func(c *menu.Config) *int { return &c.X }},
	{"height", "menu height in rows (default: fit)", func(c *menu.Config) *int { return &c.Height }},
	{"width", "menu width in columns (default: fit)", func(c *menu.Config) *int { return &c.Width }},
	{"title-rows", "padding rows under the title", func(c *menu.Config) *int { return &c.TitleRows }},
	{"footer-rows", "padding rows above the footer", func(c *menu.Config) *int { return &c.FooterRows }},
}

func addGeometryFlags(fs *pflag.FlagSet) {
	for _, f := range geometryFlags {
		def := menu.Unset
		if f.name == "title-rows" || f.name == "footer-rows" {
			def = 2
		}
		fs.Int(f.name, def, f.usage)
	}
}

// applyGeometry copies the geometry flags the user set into c.
func applyGeometry(fs *pflag.FlagSet, c *menu.Config) {
	for _, f := range geometryFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, _ := fs.GetInt(f.name)
		*f.field(c) = v
	}
}
