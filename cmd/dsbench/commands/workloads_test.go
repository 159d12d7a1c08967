package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloads_Registered(t *testing.T) {
	names := WorkloadNames()
	assert.Len(t, workloads, len(names))

	for _, name := range names {
		assert.Contains(t, workloads, name)
	}
}

func TestWorkloads_Verify(t *testing.T) {
	for _, size := range []int{1, 2, 37, 1000} {
		cfg := &Config{Size: size, Seed: 3, Verify: true}

		for _, name := range WorkloadNames() {
			results := workloads[name](cfg)
			require.GreaterOrEqual(t, len(results), 2, name)

			lib := results[0]
			assert.True(t, lib.Checked, "%s size %d", name, size)
			assert.True(t, lib.Passed, "%s size %d", name, size)

			for _, r := range results {
				assert.Equal(t, name, r.Workload)
				assert.Positive(t, r.Ops)
			}

			for _, r := range results[1:] {
				assert.False(t, r.Checked, "references aren't checked")
			}
		}
	}
}

func TestWorkloads_NoVerify(t *testing.T) {
	cfg := &Config{Size: 100, Seed: 1}

	for _, r := range workloads["heap"](cfg) {
		assert.False(t, r.Checked)
	}
}

func TestResult_OpsPerSec(t *testing.T) {
	assert.Zero(t, Result{Ops: 10}.OpsPerSec())
	assert.InDelta(t, 5.0, Result{Ops: 10, Elapsed: 2e9}.OpsPerSec(), 1e-9)
}
