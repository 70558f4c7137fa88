package menu

import "slices"

// Owned is the mutation handle for engine-owned content. It exists only
// between TakeOwnership and Release; after Release every method returns
// ErrReleased.
type Owned struct {
	cfg *Config
}

// TakeOwnership copies title, footer, items, states and callbacks into
// engine-owned storage and returns the handle that may mutate them. When c
// already owns its content the existing handle is returned and nothing is
// copied.
func (c *Config) TakeOwnership() *Owned {
	if c.owned != nil {
		return c.owned
	}
	c.data = content{
		title:     c.data.title,
		footer:    c.data.footer,
		items:     slices.Clone(c.data.items),
		states:    slices.Clone(c.data.states),
		callbacks: slices.Clone(c.data.callbacks),
	}
	c.owned = &Owned{cfg: c}
	c.logger().Debug("menu ownership taken", "items", len(c.data.items))
	return c.owned
}

// Release drops engine-owned storage and returns c to the borrowed state
// with no content. It is a no-op when c does not own its content, so
// borrowed data is never touched.
func (c *Config) Release() {
	if c.owned == nil {
		return
	}
	c.data.title = ""
	c.data.footer = ""
	c.data.items = nil
	c.data.states = nil
	c.data.callbacks = nil
	c.owned.cfg = nil
	c.owned = nil
	c.logger().Debug("menu ownership released")
}

func (o *Owned) content() (*content, error) {
	if o == nil || o.cfg == nil {
		return nil, ErrReleased
	}
	return &o.cfg.data, nil
}

// Len is the current item count, or 0 on a released handle.
func (o *Owned) Len() int {
	d, err := o.content()
	if err != nil {
		return 0
	}
	return len(d.items)
}

func (o *Owned) SetTitle(title string) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	d.title = title
	return nil
}

func (o *Owned) SetFooter(footer string) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	d.footer = footer
	return nil
}

// SetItem replaces the text of item i.
func (o *Owned) SetItem(i int, text string) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.items) {
		return ErrIndexRange
	}
	d.items[i] = text
	return nil
}

// AppendItem adds an enabled item without a callback.
func (o *Owned) AppendItem(text string) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	d.items = append(d.items, text)
	return nil
}

// RemoveItem deletes item i along with its state and callback entries.
func (o *Owned) RemoveItem(i int) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.items) {
		return ErrIndexRange
	}
	d.items = slices.Delete(d.items, i, i+1)
	if i < len(d.states) {
		d.states = slices.Delete(d.states, i, i+1)
	}
	if i < len(d.callbacks) {
		d.callbacks = slices.Delete(d.callbacks, i, i+1)
	}
	return nil
}

// SetState sets the state of item i, growing a short states slice with
// Enabled entries as needed.
func (o *Owned) SetState(i int, s State) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.items) {
		return ErrIndexRange
	}
	for len(d.states) <= i {
		d.states = append(d.states, Enabled)
	}
	d.states[i] = s
	return nil
}

// SetCallback binds cb to item i. A nil cb removes the binding.
func (o *Owned) SetCallback(i int, cb Callback) error {
	d, err := o.content()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(d.items) {
		return ErrIndexRange
	}
	for len(d.callbacks) <= i {
		d.callbacks = append(d.callbacks, nil)
	}
	d.callbacks[i] = cb
	return nil
}
