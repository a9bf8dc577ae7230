package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/symshape/internal/guardlog"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeHints(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEvalConcrete(t *testing.T) {
	out, err := runCLI(t, "eval", "2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestEvalFloorDivision(t *testing.T) {
	out, err := runCLI(t, "eval", "-7 / 2")
	require.NoError(t, err)
	assert.Equal(t, "-4\n", out)
}

func TestEvalSymbolic(t *testing.T) {
	out, err := runCLI(t, "eval", "2*x + 1")
	require.NoError(t, err)
	assert.Equal(t, "((2 * x) + 1)\n", out)
}

func TestEvalGuardWithHints(t *testing.T) {
	hints := writeHints(t, "x: 10\n")
	out, err := runCLI(t, "eval", "--hints", hints, "--guard", "max(x, 4) % 3")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEvalGuardUnbacked(t *testing.T) {
	_, err := runCLI(t, "eval", "--guard", "x + 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbacked")
}

func TestEvalComparisonForces(t *testing.T) {
	hints := writeHints(t, "x: 5\n")
	out, err := runCLI(t, "eval", "--hints", hints, "x + 1 < 10")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEvalComparisonWithoutHintsFails(t *testing.T) {
	_, err := runCLI(t, "eval", "x < 10")
	require.Error(t, err)
}

func TestEvalParseError(t *testing.T) {
	_, err := runCLI(t, "eval", "1 +")
	require.Error(t, err)
}

func TestEvalRecordsGuards(t *testing.T) {
	hints := writeHints(t, "x: 6\n")
	db := filepath.Join(t.TempDir(), "guards.db")

	out, err := runCLI(t, "eval", "--hints", hints, "--db", db, "--guard", "x + 1")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	store, err := guardlog.Open(db)
	require.NoError(t, err)
	defer store.Close()

	events, err := store.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "(x + 1)", events[0].Expr)
	assert.Equal(t, "7", events[0].Value)
	assert.Equal(t, "<cli>", events[0].File)
}

func TestCommasAndNestedCalls(t *testing.T) {
	hints := writeHints(t, "a: 3\nb: 9\n")
	out, err := runCLI(t, "eval", "--hints", hints, "--guard", "min(a + 1, max(b, 2))")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}
