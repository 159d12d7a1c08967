package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRunCommand()

	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	path := writeConfig(t, "size: 200\n")

	out, logs, err := execute(t, "--config", path, "--no-color", "--workloads", "avl,trie", "--seed", "9")
	require.NoError(t, err)

	assert.Contains(t, out, "go-dsa AVLTree")
	assert.Contains(t, out, "google/btree")
	assert.Contains(t, out, "petar/GoLLRB")
	assert.Contains(t, out, "alphadose/haxmap")
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
	assert.NotContains(t, out, "heap")
	assert.Contains(t, out, "2/2")
	assert.Contains(t, logs, "run completed")
}

func TestRunCommand_AllWorkloads(t *testing.T) {
	path := writeConfig(t, "size: 64\nlog_level: error\n")

	out, logs, err := execute(t, "--config", path, "--no-color")
	require.NoError(t, err)

	for _, name := range WorkloadNames() {
		assert.Contains(t, out, name)
	}

	assert.Contains(t, out, "7/7")
	assert.Empty(t, logs)
}

func TestRunCommand_NoVerify(t *testing.T) {
	path := writeConfig(t, "size: 10\n")

	out, _, err := execute(t, "--config", path, "--no-color", "--verify=false", "-w", "heap")
	require.NoError(t, err)
	assert.NotContains(t, out, "PASS")
	assert.Contains(t, out, "0/0")
}

func TestRunCommand_BadFlags(t *testing.T) {
	path := writeConfig(t, "")

	_, _, err := execute(t, "--config", path, "--size=-1")
	require.ErrorIs(t, err, ErrInvalidSize)

	_, _, err = execute(t, "--config", path, "-w", "nope")
	require.ErrorIs(t, err, ErrUnknownWorkload)

	_, _, err = execute(t, "--config", path, "extra")
	require.Error(t, err)
}

func TestRunCommand_FlagsOverrideInvalidConfig(t *testing.T) {
	path := writeConfig(t, "size: 0\n")
	t.Setenv("DSBENCH_LOG_LEVEL", "bogus")

	_, _, err := execute(t, "--config", path, "--no-color", "-w", "heap")
	require.ErrorIs(t, err, ErrInvalidSize)

	out, _, err := execute(t, "--config", path, "--no-color", "-w", "heap", "--size", "10", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")

	t.Setenv("DSBENCH_SIZE", "0")

	_, _, err = execute(t, "--config", path, "--no-color", "-w", "heap", "--log-level", "info", "--size", "10")
	require.NoError(t, err)
}

func TestFailures(t *testing.T) {
	results := []Result{
		{Workload: "avl", Checked: true, Passed: true},
		{Workload: "heap", Checked: true},
		{Workload: "heap"},
	}
	assert.Equal(t, []string{"heap"}, failures(results))
}
