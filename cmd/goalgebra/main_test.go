package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	asLaTeX, asJSON = false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimplifyCommand(t *testing.T) {
	out, err := execute(t, "simplify", "(x+1)^2")
	require.NoError(t, err)
	assert.Equal(t, "x^2+2x+1\n", out)

	out, err = execute(t, "simplify", "3(x", "+", "1)")
	require.NoError(t, err)
	assert.Equal(t, "3x+3\n", out)
}

func TestSimplifyOutputFormats(t *testing.T) {
	out, err := execute(t, "simplify", "--latex", "x/2")
	require.NoError(t, err)
	assert.Equal(t, "\\frac{1}{2} x\n", out)

	out, err = execute(t, "simplify", "--json", "2x")
	require.NoError(t, err)
	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "term", tree["type"])
	assert.Equal(t, "2", tree["coefficient"])
}

func TestChooseCommand(t *testing.T) {
	out, err := execute(t, "choose", "5", "2")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	_, err = execute(t, "choose", "five", "2")
	assert.Error(t, err)
}

func TestEqualCommand(t *testing.T) {
	out, err := execute(t, "equal", "(x+1)(x-1)", "x^2-1")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "equal", "x+1", "x+2")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestSimplifyCommandErrors(t *testing.T) {
	_, err := execute(t, "simplify", "1/0")
	assert.ErrorContains(t, err, "division by zero")

	_, err = execute(t, "simplify")
	assert.Error(t, err)
}
