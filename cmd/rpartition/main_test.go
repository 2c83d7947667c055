package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

func testConfig() config {
	return config{
		in:       filepath.Join("..", "..", "testdata", "test.points"),
		mode:     "partition",
		capacity: 8,
		min:      4,
		max:      8,
		format:   "csv",
	}
}

func TestRun_partition(t *testing.T) {
	cfg := testConfig()
	cfg.locate = "10, 5"
	var out bytes.Buffer

	require.NoError(t, run(cfg, &out))

	require.Equal(t, "1,3,6,12\n9,2,12,10\nlocate 10,5 -> 1\n", out.String())
}

func TestRun_infinite(t *testing.T) {
	cfg := testConfig()
	cfg.capacity = 4
	cfg.infinite = true
	var out bytes.Buffer

	require.NoError(t, run(cfg, &out))

	require.Equal(t, "-Inf,-Inf,9,7\n-Inf,7,9,+Inf\n9,-Inf,+Inf,9\n9,9,+Inf,+Inf\n", out.String())
}

func TestRun_wkt(t *testing.T) {
	cfg := testConfig()
	cfg.format = "wkt"
	var out bytes.Buffer

	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "POLYGON"), line)
	}
}

func TestRun_tree(t *testing.T) {
	cfg := testConfig()
	cfg.in = filepath.Join("..", "..", "testdata", "test2.points")
	cfg.mode = "tree"
	var out bytes.Buffer

	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.LessOrEqual(t, len(lines), 5)
}

func TestRun_errors(t *testing.T) {
	for name, mutate := range map[string]func(*config){
		"MissingInput": func(c *config) { c.in = "" },
		"BadFormat":    func(c *config) { c.format = "json" },
		"BadMode":      func(c *config) { c.mode = "scan" },
		"BadCapacity":  func(c *config) { c.capacity = 1 },
		"BadTree":      func(c *config) { c.mode, c.min, c.max = "tree", 5, 4 },
		"BadProbe":     func(c *config) { c.locate = "10" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(&cfg)

			require.Error(t, run(cfg, io.Discard))
		})
	}
}
