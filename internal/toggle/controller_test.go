package toggle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeControl struct {
	target string
	label  string
}

func (c *fakeControl) Target() string    { return c.target }
func (c *fakeControl) Label() string     { return c.label }
func (c *fakeControl) SetLabel(l string) { c.label = l }

type fakeEnv struct {
	sections map[string]Visibility
	controls []*fakeControl
	failOn   string
	flips    int
}

func newFakeEnv(ids ...string) *fakeEnv {
	env := &fakeEnv{sections: map[string]Visibility{}}
	for _, id := range ids {
		env.sections[id] = Hidden
		env.controls = append(env.controls, &fakeControl{target: id, label: LabelShow})
	}
	return env
}

func (e *fakeEnv) Controls() []Control {
	out := make([]Control, len(e.controls))
	for i, c := range e.controls {
		out[i] = c
	}
	return out
}

func (e *fakeEnv) Visibility(id string) (Visibility, bool) {
	v, ok := e.sections[id]
	return v, ok
}

func (e *fakeEnv) Toggle(id string) error {
	if id == e.failOn {
		return errors.New("detached")
	}
	e.flips++
	if e.sections[id] == Shown {
		e.sections[id] = Hidden
	} else {
		e.sections[id] = Shown
	}
	return nil
}

func TestOnClickLabelsPostToggleState(t *testing.T) {
	env := newFakeEnv("jadn-api")
	c := New(env)
	ctrl := env.controls[0]

	require.NoError(t, c.OnClick(ctrl))
	assert.Equal(t, Shown, env.sections["jadn-api"])
	assert.Equal(t, LabelHide, ctrl.Label())
}

func TestOnClickTwiceRestoresState(t *testing.T) {
	env := newFakeEnv("jadn-api")
	c := New(env)
	ctrl := env.controls[0]
	before := ctrl.Label()

	require.NoError(t, c.OnClick(ctrl))
	require.NoError(t, c.OnClick(ctrl))

	assert.Equal(t, Hidden, env.sections["jadn-api"])
	assert.Equal(t, before, ctrl.Label())
	assert.Equal(t, 2, env.flips)
}

func TestOnClickIndependentControls(t *testing.T) {
	env := newFakeEnv("a-api", "b-api")
	c := New(env)

	require.NoError(t, c.OnClick(env.controls[0]))
	assert.Equal(t, Shown, env.sections["a-api"])
	assert.Equal(t, Hidden, env.sections["b-api"])
	assert.Equal(t, LabelShow, env.controls[1].Label())
}

func TestOnClickUnbound(t *testing.T) {
	env := newFakeEnv()
	ctrl := &fakeControl{target: "missing-api", label: LabelShow}

	err := New(env).OnClick(ctrl)
	assert.ErrorIs(t, err, ErrUnbound)
	assert.Equal(t, LabelShow, ctrl.Label())
	assert.Zero(t, env.flips)
}

func TestOnClickToggleFailure(t *testing.T) {
	env := newFakeEnv("a-api")
	env.failOn = "a-api"
	ctrl := env.controls[0]

	err := New(env).OnClick(ctrl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a-api")
	assert.Equal(t, LabelShow, ctrl.Label(), "label only changes after a successful flip")
}

func TestExpand(t *testing.T) {
	env := newFakeEnv("a-api", "b-api", "c-api")
	env.sections["b-api"] = Shown
	c := New(env)

	n, err := c.Expand("a-api", "b-api")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "already shown sections are not flipped")
	assert.Equal(t, Shown, env.sections["a-api"])
	assert.Equal(t, Shown, env.sections["b-api"])
	assert.Equal(t, Hidden, env.sections["c-api"])
	assert.Equal(t, LabelHide, env.controls[0].Label())
}

func TestExpandUnknownIDs(t *testing.T) {
	env := newFakeEnv("a-api")

	n, err := New(env).Expand("z-api", "a-api", "y-api")
	assert.Equal(t, 1, n)
	require.ErrorIs(t, err, ErrUnbound)
	assert.Contains(t, err.Error(), "y-api, z-api")
}

func TestExpandAll(t *testing.T) {
	env := newFakeEnv("a-api", "b-api")

	n, err := New(env).ExpandAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, ctrl := range env.controls {
		assert.Equal(t, LabelHide, ctrl.Label())
	}
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Show API", LabelFor(Hidden))
	assert.Equal(t, "Hide API", LabelFor(Shown))
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "shown", Shown.String())
}

func TestExpandControlWithoutSection(t *testing.T) {
	env := newFakeEnv("a-api")
	env.controls = append(env.controls, &fakeControl{target: "ghost-api", label: LabelShow})

	n, err := New(env).Expand("a-api", "ghost-api")
	assert.Equal(t, 1, n)
	require.ErrorIs(t, err, ErrUnbound)
	assert.Contains(t, err.Error(), "ghost-api")
	assert.NotContains(t, err.Error(), "a-api")
}
