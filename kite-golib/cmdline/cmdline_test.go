package cmdline

import (
	"bytes"
	"testing"

	"github.com/kiteco/logitdemo/kite-golib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetArgs struct {
	Name  string `arg:"--name"`
	Times int    `arg:"--times"`

	called int `arg:"-"`
}

func (g *greetArgs) Validate() error {
	if g.Times < 0 {
		return errors.New("times must be non-negative")
	}
	return nil
}

func (g *greetArgs) Handle() error {
	g.called++
	return nil
}

func commands(g *greetArgs) []Command {
	return []Command{{Name: "greet", Synopsis: "say hello", Args: g}}
}

func TestDispatchRunsHandler(t *testing.T) {
	g := &greetArgs{Times: 1}
	var buf bytes.Buffer
	err := Dispatch("demo", []string{"greet", "--name", "kite", "--times", "3"}, &buf, commands(g)...)
	require.NoError(t, err)
	assert.Equal(t, 1, g.called)
	assert.Equal(t, "kite", g.Name)
	assert.Equal(t, 3, g.Times)
}

func TestDispatchDefaultsSurvive(t *testing.T) {
	g := &greetArgs{Name: "default", Times: 2}
	var buf bytes.Buffer
	require.NoError(t, Dispatch("demo", []string{"greet"}, &buf, commands(g)...))
	assert.Equal(t, "default", g.Name)
	assert.Equal(t, 2, g.Times)
}

func TestDispatchUnknownCommand(t *testing.T) {
	g := &greetArgs{}
	var buf bytes.Buffer
	err := Dispatch("demo", []string{"wave"}, &buf, commands(g)...)
	require.Error(t, err)
	assert.Equal(t, ErrUsage, errors.Cause(err))
	assert.Contains(t, buf.String(), "Usage: demo COMMAND [ARGS]")
	assert.Equal(t, 0, g.called)
}

func TestDispatchNoCommand(t *testing.T) {
	var buf bytes.Buffer
	err := Dispatch("demo", nil, &buf, commands(&greetArgs{})...)
	assert.Equal(t, ErrUsage, errors.Cause(err))
}

func TestDispatchValidation(t *testing.T) {
	g := &greetArgs{}
	var buf bytes.Buffer
	err := Dispatch("demo", []string{"greet", "--times=-1"}, &buf, commands(g)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "times must be non-negative")
	assert.Equal(t, 0, g.called)
}

func TestDispatchHelp(t *testing.T) {
	g := &greetArgs{}
	var buf bytes.Buffer
	require.NoError(t, Dispatch("demo", []string{"help", "greet"}, &buf, commands(g)...))
	assert.Contains(t, buf.String(), "--name")
	assert.Equal(t, 0, g.called)

	buf.Reset()
	require.NoError(t, Dispatch("demo", []string{"help"}, &buf, commands(g)...))
	assert.Contains(t, buf.String(), "greet")
}
