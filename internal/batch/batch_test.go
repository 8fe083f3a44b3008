// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/computor/pkg/types"
)

// fakeRecorder implements Recorder for testing.
type fakeRecorder struct {
	recorded []string
	err      error
}

func (f *fakeRecorder) Record(_ context.Context, r types.Result) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, r.Equation)
	return nil
}

var mixed = []string{
	"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0",
	"5 * X^0 + 4 * X^1",
	"3 = 0",
	"2X = 1",
	"42 * X^0 = 42 * X^0",
}

func TestRun(t *testing.T) {
	rec := &fakeRecorder{}
	var buf strings.Builder

	summary := Run(context.Background(), mixed, Options{Recorder: rec}, &buf)

	assert.Equal(t, 3, summary.Solved)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 5, summary.Total())
	assert.True(t, summary.HasFailures())
	require.Len(t, summary.Items, 5)

	assert.Equal(t, types.OutcomeRoots, summary.Items[0].Outcome)
	assert.Len(t, summary.Items[0].Roots, 2)
	assert.Contains(t, summary.Items[1].Error, "exactly one '='")
	assert.Equal(t, types.OutcomeNoSolution, summary.Items[2].Outcome)
	assert.Contains(t, summary.Items[3].Error, "malformed monomial")
	assert.Equal(t, types.OutcomeInfinite, summary.Items[4].Outcome)
	assert.Equal(t, -1, summary.Items[4].Degree)

	assert.Equal(t, []string{mixed[0], mixed[2], mixed[4]}, rec.recorded)

	log := buf.String()
	assert.Contains(t, log, "solved  3 = 0")
	assert.Contains(t, log, "failed  2X = 1")
	assert.Contains(t, log, "Batch summary: 3 solved, 2 failed (total: 5)")
}

func TestRun_FailFast(t *testing.T) {
	var buf strings.Builder
	summary := Run(context.Background(), mixed, Options{FailFast: true}, &buf)

	assert.Equal(t, 1, summary.Solved)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Items, 2)
}

func TestRun_RecorderErrorIsWarning(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	var buf strings.Builder

	summary := Run(context.Background(), []string{"3 = 0"}, Options{Recorder: rec}, &buf)

	assert.Equal(t, 1, summary.Solved)
	assert.False(t, summary.HasFailures())
	assert.Contains(t, buf.String(), "warning: disk full")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	summary := Run(ctx, mixed, Options{}, &buf)

	assert.Zero(t, summary.Total())
	assert.Contains(t, buf.String(), "cancelled")
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "eqs.yaml")
	content := "equations:\n" +
		"  - \"5 + 4 * X + X^2 = X^2\"\n" +
		"  - \"X^2 = 1\"\n" +
		"  - \"X = 1 = 2\"\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	f, err := ReadFile(input)
	require.NoError(t, err)
	require.Len(t, f.Equations, 3)

	var buf strings.Builder
	summary := Run(context.Background(), f.Equations, Options{}, &buf)

	out := ResultsPath(input)
	assert.Equal(t, filepath.Join(dir, "eqs-results.yaml"), out)
	require.NoError(t, WriteResults(out, input, summary))

	rf, err := ReadResults(out)
	require.NoError(t, err)
	assert.Equal(t, input, rf.Source)
	assert.False(t, rf.Timestamp.IsZero())
	assert.Equal(t, 2, rf.Solved)
	assert.Equal(t, 1, rf.Failed)
	require.Len(t, rf.Items, 3)

	assert.Equal(t, "5 * X^0 + 4 * X^1 = 0", rf.Items[0].Reduced)
	assert.Equal(t, []float32{-1.25}, rf.Items[0].Roots)
	assert.Equal(t, types.Coefficients{5, 4}, rf.Items[0].Coefficients)
	assert.Equal(t, []float32{1, -1}, rf.Items[1].Roots)
	assert.NotEmpty(t, rf.Items[2].Error)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("equations: []\n"), 0o644))
	_, err = ReadFile(empty)
	assert.ErrorContains(t, err, "lists no equations")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("equations: [unterminated\n"), 0o644))
	_, err = ReadFile(bad)
	assert.ErrorContains(t, err, "parsing batch file")
}
