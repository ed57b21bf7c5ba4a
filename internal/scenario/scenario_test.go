package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pavanmanishd/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDoubling(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "doubling.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "doubling", s.Name)
	assert.Equal(t, 1, s.InitialCapacity)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, Step{Op: OpInsert, Value: 4, Index: 0}, s.Steps[2])

	res, err := Run(s)
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 3)

	assert.Equal(t, 2, res.Snapshots[1].Len)
	assert.Equal(t, 2, res.Snapshots[1].Cap)
	assert.Equal(t, []int64{3, 2}, res.Snapshots[1].Values)

	last := res.Snapshots[2]
	assert.Equal(t, 3, last.Len)
	assert.Equal(t, 4, last.Cap)
	assert.Equal(t, []int64{4, 3, 2}, last.Values)
	assert.Equal(t, 2, res.Metrics.Reallocs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown op", "steps:\n  - op: pop\n"},
		{"negative capacity", "initial_capacity: -1\n"},
		{"negative budget", "max_bytes: -8\n"},
		{"bad yaml", "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - op: append\n    value: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "unnamed", s.Name)
	assert.Equal(t, 0, s.InitialCapacity)
}

func TestRunOutOfBounds(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "out_of_bounds.yaml"))
	require.NoError(t, err)

	res, err := Run(s)
	require.Error(t, err)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, 2, stepErr.Step)
	assert.Equal(t, OpDelete, stepErr.Op)
	assert.ErrorIs(t, err, vector.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "Index out of bounds.")

	// Insert at Len() is legal, so two steps completed.
	require.Len(t, res.Snapshots, 2)
	assert.Equal(t, []int64{1, 2}, res.Snapshots[1].Values)
	assert.Equal(t, 2, res.Metrics.Len)
	// The two live elements are released even though the run failed.
	assert.Equal(t, 0, res.Snapshots[1].Destroyed)
	assert.Equal(t, 2, res.Destroyed)
}

func TestRunBudget(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "budget.yaml"))
	require.NoError(t, err)

	res, err := Run(s)
	assert.ErrorIs(t, err, vector.ErrRealloc)
	assert.EqualError(t, errors.Unwrap(err), "Couldn't reallocate vector.")
	require.Len(t, res.Snapshots, 2)
	assert.Equal(t, 2, res.Snapshots[1].Cap)
	assert.Equal(t, 2, res.Destroyed)
}

func TestRunDemo(t *testing.T) {
	res, err := Run(Demo())
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 6)

	assert.Equal(t, 1, res.Snapshots[3].Found)
	assert.Equal(t, vector.NotFound, res.Snapshots[2].Found)
	assert.Equal(t, []int64{2, 3, 4}, res.Snapshots[4].Values)
	assert.Equal(t, []int64{3, 4}, res.Snapshots[5].Values)
	assert.Equal(t, 1, res.Snapshots[5].Destroyed)
	// Dispose releases the two survivors.
	assert.Equal(t, 3, res.Destroyed)
}

func TestRunSearchModes(t *testing.T) {
	s := &Script{
		InitialCapacity: 0,
		Steps: []Step{
			{Op: OpAppend, Value: 1},
			{Op: OpAppend, Value: 5},
			{Op: OpAppend, Value: 5},
			{Op: OpSearch, Value: 5, Start: 2},
			{Op: OpSearchFrom, Value: 5, Start: 2},
			{Op: OpSearchFrom, Value: 5, Start: 0, Sorted: true},
			{Op: OpSearch, Value: 5, Start: 3},
		},
	}
	res, err := Run(s)
	assert.ErrorIs(t, err, vector.ErrSearchStart)
	require.Len(t, res.Snapshots, 6)
	assert.Equal(t, 1, res.Snapshots[3].Found)
	assert.Equal(t, 2, res.Snapshots[4].Found)
	assert.Equal(t, 1, res.Snapshots[5].Found)
}

func TestRunReserveAndClear(t *testing.T) {
	s := &Script{
		Steps: []Step{
			{Op: OpReserve, Value: 10},
			{Op: OpAppend, Value: 1},
			{Op: OpReplace, Value: 2, Index: 0},
			{Op: OpClear},
		},
	}
	res, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Snapshots[0].Cap)
	assert.Equal(t, 0, res.Snapshots[3].Len)
	assert.Equal(t, 10, res.Snapshots[3].Cap)
	assert.Equal(t, 2, res.Destroyed)
}

func TestGrowth(t *testing.T) {
	points, m, err := Growth(0, 9)
	require.NoError(t, err)
	caps := make([]int, len(points))
	for i, p := range points {
		assert.Equal(t, i+1, p.Len)
		caps[i] = p.Cap
	}
	assert.Equal(t, []int{2, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	assert.Equal(t, 4, m.Reallocs)
	assert.Equal(t, 9, m.Len)
	assert.Equal(t, 16, m.Cap)

	_, _, err = Growth(-1, 3)
	assert.Error(t, err)
}

func TestRunSearchFailureDisposes(t *testing.T) {
	s := &Script{
		InitialCapacity: 2,
		Steps: []Step{
			{Op: OpAppend, Value: 1},
			{Op: OpAppend, Value: 2},
			{Op: OpAppend, Value: 3},
			{Op: OpSearch, Value: 1, Start: 5},
		},
	}
	res, err := Run(s)
	assert.ErrorIs(t, err, vector.ErrSearchStart)
	assert.Equal(t, 3, res.Destroyed)
}

func TestGuard(t *testing.T) {
	assert.NoError(t, guard(func() {}))
	assert.ErrorIs(t, guard(func() { panic(vector.ErrOutOfBounds) }), vector.ErrOutOfBounds)

	assert.Panics(t, func() {
		_ = guard(func() {
			var vals []int
			idx := 3
			_ = vals[idx]
		})
	}, "runtime errors must not be reported as step errors")

	assert.PanicsWithValue(t, "not an error", func() {
		_ = guard(func() { panic("not an error") })
	})
}
