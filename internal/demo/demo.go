// Package demo builds the showcase menus: a full one whose callbacks
// rewrite, toggle, append and delete items, and a plain pick list.
package demo

import (
	"fmt"
	"strconv"

	"github.com/marcus/gridmenu/pkg/menu"
)

// UserData is the state the full demo's callbacks share through
// menu.Config.UserData.
type UserData struct {
	// Value is the counter the Increment item shows.
	Value int
	// Length is the item count the menu started with; Delete never
	// shrinks the menu below it.
	Length int
}

const (
	Title  = "Hello, World!"
	Footer = "*** Bye, World! It's been nice knowing you, but now it's time for me to go. "
)

// Items of the full demo. The first ends the demo when selected.
var Items = []string{
	"This is a long title - longer than the menu is wide.  Selecting it ends the demo.",
	"This disabled",
	"Value: 10",
	"1",
	"Append Item",
	"Delete Item",
}

// SimpleItems is the plain pick list.
var SimpleItems = []string{
	"A simple menu.",
	"Make a choice",
	"When you press ENTER",
	"That option # is returned",
}

// Actions names the demo callbacks so menu files can bind them.
func Actions() map[string]menu.Callback {
	return map[string]menu.Callback{
		"increment": Increment,
		"change":    Change,
		"append":    Append,
		"delete":    Delete,
	}
}

// New returns the full demo menu for a screen of the given size.
func New(screenHeight, screenWidth int) (*menu.Config, *UserData) {
	c := menu.NewConfig(screenHeight, screenWidth)
	c.SetItems(Items)
	c.SetStates([]menu.State{
		menu.Enabled,
		menu.Disabled,
		menu.Enabled,
		menu.Enabled,
		menu.Enabled,
		menu.Enabled,
	})
	c.SetCallbacks([]menu.Callback{nil, nil, Increment, Change, Append, Delete})
	c.SetTitle(Title)
	c.SetFooter(Footer)
	c.X = 2
	c.Width = 33
	c.Height = 12
	c.FooterRows = 0

	ud := &UserData{Value: 10, Length: len(Items)}
	c.UserData = ud
	return c, ud
}

// NewSimple returns the plain pick list with every setting left to the
// layout engine.
func NewSimple(screenHeight, screenWidth int) *menu.Config {
	return menu.NewConfig(screenHeight, screenWidth, SimpleItems...)
}

// Report is the line printed after the menu closes.
func Report(index int) string {
	return fmt.Sprintf("Item: %d was selected to exit the menu.", index)
}

func userData(c *menu.Config) *UserData {
	ud, _ := c.UserData.(*UserData)
	return ud
}

// failed logs a mutation the menu refused and ends the input cycle.
func failed(c *menu.Config, action string, index int, err error) menu.Reply {
	if c.Logger != nil {
		c.Logger.Debug("demo callback failed", "action", action, "index", index, "err", err)
	}
	return menu.Consumed
}

// Increment bumps the shared counter and shows it in the selected item.
func Increment(c *menu.Config, index int) menu.Reply {
	ud := userData(c)
	if ud == nil {
		return menu.Consumed
	}
	ud.Value++
	if err := c.TakeOwnership().SetItem(index, fmt.Sprintf("Value: %d", ud.Value)); err != nil {
		return failed(c, "increment", index, err)
	}
	return menu.Consumed
}

// Change flips the selected item between "1" and "0", enables or disables
// the two items after it to match, and moves the selection down.
func Change(c *menu.Config, index int) menu.Reply {
	cur, _ := strconv.Atoi(c.Item(index))
	value := 1 - cur

	o := c.TakeOwnership()
	if err := o.SetItem(index, strconv.Itoa(value)); err != nil {
		return failed(c, "change", index, err)
	}
	state := menu.Disabled
	if value != 0 {
		state = menu.Enabled
	}
	for i := index + 1; i < index+3 && i < o.Len(); i++ {
		if err := o.SetState(i, state); err != nil {
			return failed(c, "change", i, err)
		}
	}
	return menu.Replay(menu.KeyDown)
}

// Append adds "New Item N", N being the item count before the append.
func Append(c *menu.Config, index int) menu.Reply {
	o := c.TakeOwnership()
	if err := o.AppendItem(fmt.Sprintf("New Item %d", o.Len())); err != nil {
		return failed(c, "append", index, err)
	}
	return menu.Consumed
}

// Delete removes the last item unless the menu is back at its starting
// length.
func Delete(c *menu.Config, index int) menu.Reply {
	ud := userData(c)
	if ud == nil {
		return menu.Consumed
	}
	o := c.TakeOwnership()
	if n := o.Len(); n > ud.Length {
		if err := o.RemoveItem(n - 1); err != nil {
			return failed(c, "delete", index, err)
		}
	}
	return menu.Consumed
}
