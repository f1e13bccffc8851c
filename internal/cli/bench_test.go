package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBench(t *testing.T) {
	res := runCLI(t, "", "bench", "-n", "50", "GET /home/ HTTP/1.1", "WRONG / HTTP/1.1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "parses:   100 (50 rejected)")
	assert.Contains(t, res.stdout, "p99=")
}

func TestBench_RateLimited(t *testing.T) {
	res := runCLI(t, "", "bench", "-n", "3", "--rate", "1000", "GET / HTTP/1.1")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "parses:   3 (0 rejected)")
}

func TestBench_BadIterations(t *testing.T) {
	res := runCLI(t, "", "bench", "-n", "0", "GET / HTTP/1.1")
	assert.Equal(t, ExitUsageError, exitCode(res.err))
}
