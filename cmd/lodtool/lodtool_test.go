package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/attrlod/lod"
)

const liftingYAML = `transform: lifting
lod:
  nearest_neighbors: 1
  search_range: 8
  detail_levels: 3
  neighbor_bias: [1, 1, 1]
  sampling_periods: [2, 2]
  canonical_point_order: true
`

const predictingYAML = `transform: predicting
lod:
  nearest_neighbors: 1
  search_range: 8
  detail_levels: 3
  neighbor_bias: [1, 1, 1]
  sampling_periods: [2, 2]
  canonical_point_order: true
`

const intraYAML = `transform: predicting
lod:
  nearest_neighbors: 1
  search_range: 8
  detail_levels: 3
  neighbor_bias: [1, 1, 1]
  sampling_periods: [2, 2]
  intra_lod_prediction: true
  canonical_point_order: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func lineXYZ(n int) string {
	var sb strings.Builder
	sb.WriteString("# x y z\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d 0 0\n", i)
	}

	return sb.String()
}

// run executes the command tree with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestBuild(t *testing.T) {
	cloud := writeFile(t, "line.xyz", lineXYZ(8))
	params := writeFile(t, "aps.yaml", liftingYAML)

	out, err := run(t, "", "build", "--cloud", cloud, "--params", params, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "points:       8\n")
	assert.Contains(t, out, "transform:    lifting\n")
	assert.Contains(t, out, "levels:       [2 4 8]\n")
	assert.Contains(t, out, "level sizes:  [2 2 4]\n")
	assert.Contains(t, out, "unpredicted 1\n")
	assert.Contains(t, out, "weight:       min 1.0000, max 1.0000\n")
}

func TestBuild_FatalConfiguration(t *testing.T) {
	cloud := writeFile(t, "line.xyz", lineXYZ(8))
	params := writeFile(t, "aps.yaml", liftingYAML)

	// A minimum node size without scalable lifting violates the contract.
	_, err := run(t, "", "build", "--cloud", cloud, "--params", params, "--min-node-log2", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, lod.ErrContractViolation)
	assert.Contains(t, err.Error(), "non-conformant configuration")
}

func TestBuild_MissingFlags(t *testing.T) {
	_, err := run(t, "", "build")
	assert.Error(t, err)
}

func TestReuse(t *testing.T) {
	lifting := writeFile(t, "lifting.yaml", liftingYAML)
	predicting := writeFile(t, "predicting.yaml", predictingYAML)
	intra := writeFile(t, "intra.yaml", intraYAML)

	out, err := run(t, "", "reuse", "--params", lifting, "--params", predicting)
	require.NoError(t, err)
	assert.Contains(t, out, "reusable: true\n")

	out, err = run(t, "", "reuse", "--params", lifting, "--params", intra)
	require.NoError(t, err)
	assert.Contains(t, out, "reusable: false\n")

	_, err = run(t, "", "reuse", "--params", lifting)
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	out, err := run(t, "", "classify", "0", "5", "6", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "0\t0\n")
	assert.Contains(t, out, "5\t4\n")
	assert.Contains(t, out, "6\t5\n")
	assert.Contains(t, out, "300\t15\n")
	assert.Contains(t, out, "15\t[192,∞]\t1\n")
	assert.Contains(t, out, "total\t\t4\n")
}

func TestClassify_Stdin(t *testing.T) {
	out, err := run(t, "1 2\n3\n", "classify")
	require.NoError(t, err)
	assert.Contains(t, out, "1\t1\n2\t2\n3\t3\n")
	assert.Contains(t, out, "total\t\t3\n")
}

func TestClassify_BadInput(t *testing.T) {
	_, err := run(t, "", "classify", "12", "x")
	assert.Error(t, err)
}
