package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns captured stdout.
// Flag state is package-level, so it is reset before every invocation.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	precision = 0
	rounding = ""
	verbose = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPiCommand(t *testing.T) {
	out, err := run(t, "pi", "--precision", "10")
	require.NoError(t, err)
	assert.Equal(t, "3.141592654\n", out)
}

func TestECommand(t *testing.T) {
	out, err := run(t, "e", "--precision", "12")
	require.NoError(t, err)
	assert.Equal(t, "2.71828182846\n", out)
}

func TestEvalSqrt(t *testing.T) {
	out, err := run(t, "eval", "sqrt", "2", "--precision", "10")
	require.NoError(t, err)
	assert.Equal(t, "1.414213562\n", out)
}

func TestEvalPow(t *testing.T) {
	out, err := run(t, "eval", "pow", "2", "10", "--precision", "10")
	require.NoError(t, err)

	got, _, err := apd.NewFromString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(apd.New(1024, 0)))
}

func TestEvalSinCosPair(t *testing.T) {
	out, err := run(t, "eval", "sincos", "0", "--precision", "10")
	require.NoError(t, err)
	fields := strings.Fields(strings.TrimSpace(out))
	require.Len(t, fields, 2)
	assert.Equal(t, "0", fields[0])
	assert.Equal(t, "1", fields[1])
}

func TestEvalUnknownFunction(t *testing.T) {
	_, err := run(t, "eval", "cot", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestEvalArityMismatch(t *testing.T) {
	_, err := run(t, "eval", "pow", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument")
}

func TestEvalDomainError(t *testing.T) {
	_, err := run(t, "eval", "log", "-1", "--precision", "10")
	require.Error(t, err)
}

func TestEvalBadOperand(t *testing.T) {
	_, err := run(t, "eval", "sqrt", "two")
	require.Error(t, err)
}

func TestBadRoundingFlag(t *testing.T) {
	_, err := run(t, "pi", "--precision", "10", "--rounding", "sideways")
	require.Error(t, err)
}
