package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestPackUnpackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "people.csv")
	colfPath := filepath.Join(dir, "people.colf")

	input := "id,score,name\n1,98.5,Alice\n2,87,Bob\n3,91.2,Charlie\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(input), 0o644))

	out := runCommand(t, "pack", csvPath, colfPath)
	require.Contains(t, out, "3 columns")
	require.Contains(t, out, "3 rows")

	out = runCommand(t, "unpack", colfPath)
	require.Equal(t, input, out)
}

func TestUnpackSelectedColumns(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "people.csv")
	colfPath := filepath.Join(dir, "people.colf")
	outPath := filepath.Join(dir, "subset.csv")

	require.NoError(t, os.WriteFile(csvPath,
		[]byte("id,score,name\n1,98.5,Alice\n2,87,Bob\n"), 0o644))

	runCommand(t, "pack", csvPath, colfPath)
	runCommand(t, "unpack", colfPath, "--columns", "name,score", "-o", outPath)

	t.Cleanup(func() { unpackColumns = nil; unpackOutput = "" })

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "name,score\nAlice,98.5\nBob,87\n", string(data))
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "people.csv")
	colfPath := filepath.Join(dir, "people.colf")

	require.NoError(t, os.WriteFile(csvPath,
		[]byte("id,name\n1,Alice\n"), 0o644))

	runCommand(t, "pack", csvPath, colfPath)
	out := runCommand(t, "info", colfPath)

	require.Contains(t, out, "columns: 2")
	require.Contains(t, out, "rows:    1")
	require.Contains(t, out, "Int32")
	require.Contains(t, out, "String")
}
