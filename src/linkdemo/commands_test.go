package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"linked_containers/src/collerrors"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeElements(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCommands(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "stack",
			args: []string{"stack", "1", "2", "3"},
			want: "pop: 3 (size 2)\npop: 2 (size 1)\npop: 1 (size 0)\n" +
				"pop: error: cannot pop from an empty stack: container is empty\n",
		},
		{
			name: "empty stack",
			args: []string{"stack"},
			want: "pop: error: cannot pop from an empty stack: container is empty\n",
		},
		{
			name: "queue",
			args: []string{"queue", "1", "2", "3"},
			want: "poll: 1 (size 2)\npoll: 2 (size 1)\npoll: 3 (size 0)\npoll: empty\n",
		},
		{
			name: "chain",
			args: []string{"chain", "a", "b", "c"},
			want: "a -> b -> c -> nil\n",
		},
		{
			name: "empty chain",
			args: []string{"chain"},
			want: "nil\n",
		},
		{
			name: "circle",
			args: []string{"circle", "--laps", "2", "a", "b", "c"},
			want: "a -> b -> c -> a -> b -> c -> a\n",
		},
		{
			name: "pair",
			args: []string{"pair", "x", "y"},
			want: "x -> y -> nil\n",
		},
		{
			name: "closed pair",
			args: []string{"pair", "--closed", "x", "y"},
			want: "x -> y -> x\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestCircleWithoutElements(t *testing.T) {
	_, _, err := run(t, "circle")
	require.ErrorIs(t, err, collerrors.ErrInvalidArgument)
}

func TestCircleRejectsZeroLaps(t *testing.T) {
	_, _, err := run(t, "circle", "--laps", "0", "a")
	require.Error(t, err)
}

func TestElementsFromFile(t *testing.T) {
	path := writeElements(t, "b c\n\nd\n")

	stdout, _, err := run(t, "chain", "--file", path, "a")
	require.NoError(t, err)
	require.Equal(t, "a -> b -> c -> d -> nil\n", stdout)
}

func TestElementsFileFromEnv(t *testing.T) {
	t.Setenv("LINKDEMO_FILE", writeElements(t, "1 2"))

	stdout, _, err := run(t, "queue")
	require.NoError(t, err)
	require.Equal(t, "poll: 1 (size 1)\npoll: 2 (size 0)\npoll: empty\n", stdout)
}

func TestMissingElementsFile(t *testing.T) {
	_, _, err := run(t, "stack", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorContains(t, err, "opening element file")
}

func TestConfigFileSetsLogging(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "linkdemo.yaml")
	require.NoError(t, os.WriteFile(config, []byte("log-level: debug\nlog-format: json\n"), 0o600))

	_, stderr, err := run(t, "--config", config, "chain", "a")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"gathered elements"`)
	require.Contains(t, stderr, `"count":1`)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "chain", "a")
	require.ErrorContains(t, err, "invalid --log-level")
}
