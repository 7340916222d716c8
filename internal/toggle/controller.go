// Package toggle wires show/hide behaviour to the collapsible sections the
// renderer emits. Each section carries a two-state visibility marker owned
// by the environment (the DOM); the controller flips it and keeps the
// control's label in step.
package toggle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Visibility is the state of a collapsible section.
type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

func (v Visibility) String() string {
	if v == Shown {
		return "shown"
	}
	return "hidden"
}

// Control labels.
const (
	LabelShow = "Show API"
	LabelHide = "Hide API"
)

// LabelFor returns the label a control shows while its section is in state v.
func LabelFor(v Visibility) string {
	if v == Shown {
		return LabelHide
	}
	return LabelShow
}

// ErrUnbound is returned for a control whose target section does not exist.
// Callers treat it as a no-op.
var ErrUnbound = errors.New("toggle control has no target section")

// Control is a rendered show/hide control.
type Control interface {
	// Target returns the id of the section the control governs.
	Target() string
	Label() string
	SetLabel(label string)
}

// Environment owns the sections and their visibility markers.
type Environment interface {
	// Controls returns every collapsible toggle control in the container.
	Controls() []Control
	// Visibility reports the current marker of section id, and false when
	// there is no such section.
	Visibility(id string) (Visibility, bool)
	// Toggle flips the marker of section id. The new state must be
	// observable through Visibility once Toggle returns.
	Toggle(id string) error
}

// Controller handles clicks on toggle controls.
type Controller struct {
	env Environment
}

// New returns a Controller for env.
func New(env Environment) *Controller {
	return &Controller{env: env}
}

// Bind returns the controls the controller is responsible for.
func (c *Controller) Bind() []Control {
	return c.env.Controls()
}

// OnClick flips the section governed by ctrl and then labels the control for
// the state the section moved into. The marker is read again after the flip,
// so the label never lags one toggle behind.
func (c *Controller) OnClick(ctrl Control) error {
	id := ctrl.Target()
	if _, ok := c.env.Visibility(id); !ok {
		return ErrUnbound
	}
	if err := c.env.Toggle(id); err != nil {
		return fmt.Errorf("toggling %s: %w", id, err)
	}
	v, _ := c.env.Visibility(id)
	ctrl.SetLabel(LabelFor(v))
	return nil
}

// Expand shows the sections with the given ids by clicking their controls.
// Sections already shown are left alone. It returns how many sections were
// expanded and an error naming ids that no control governs or whose section
// does not exist.
func (c *Controller) Expand(ids ...string) (int, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	expanded, bound, err := c.expand(func(id string) bool { return want[id] })
	if err != nil {
		return expanded, err
	}

	var missing []string
	for id := range want {
		if !bound[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return expanded, fmt.Errorf("%w: %s", ErrUnbound, strings.Join(missing, ", "))
	}
	return expanded, nil
}

// ExpandAll shows every bound section.
func (c *Controller) ExpandAll() (int, error) {
	expanded, _, err := c.expand(func(string) bool { return true })
	return expanded, err
}

// expand clicks the hidden sections selected by match. bound holds the
// selected ids whose section exists.
func (c *Controller) expand(match func(id string) bool) (expanded int, bound map[string]bool, err error) {
	bound = make(map[string]bool)
	for _, ctrl := range c.Bind() {
		id := ctrl.Target()
		if !match(id) {
			continue
		}
		v, ok := c.env.Visibility(id)
		if !ok {
			continue
		}
		bound[id] = true
		if v == Shown {
			continue
		}
		if err := c.OnClick(ctrl); err != nil {
			return expanded, bound, err
		}
		expanded++
	}
	return expanded, bound, nil
}
