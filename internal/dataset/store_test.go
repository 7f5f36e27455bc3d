package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-physics/rule30/pkg/solver"
	"github.com/mesh-physics/rule30/pkg/types"
)

func runResult(t *testing.T, p types.Params) *types.Result {
	t.Helper()
	res, err := solver.New(p).Run()
	require.NoError(t, err)
	return res
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	// Operations before Attach fail with the sentinel.
	_, err := store.SaveRun(nil, "x", nil)
	assert.ErrorIs(t, err, ErrStoreDetached)
	_, _, err = store.LoadRun("missing")
	assert.ErrorIs(t, err, ErrStoreDetached)

	require.NoError(t, store.Attach(t.TempDir()))
	require.NoError(t, store.Detach())
	// Detach is idempotent.
	require.NoError(t, store.Detach())
}

func TestSaveRunRoundTrip(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Attach(t.TempDir()))
	defer store.Detach()

	res := runResult(t, types.Params{Width: 31, Steps: 20, CenterPosition: 15})
	metadata := map[string]string{
		"scenario_name": "Standard - Small",
		"colormap":      "binary",
	}

	runID, err := store.SaveRun(res, "standard_small", metadata)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	loaded, attrs, err := store.LoadRun(runID)
	require.NoError(t, err)

	assert.Equal(t, res.Params.Width, loaded.Params.Width)
	assert.Equal(t, res.Params.Steps, loaded.Params.Steps)
	assert.Equal(t, res.Params.CenterPosition, loaded.Params.CenterPosition)
	assert.Equal(t, res.Grid.Cells(), loaded.Grid.Cells())
	assert.Equal(t, res.Series.Entropy, loaded.Series.Entropy)
	assert.Equal(t, res.Series.Complexity, loaded.Series.Complexity)
	assert.Equal(t, res.Aggregates, loaded.Aggregates)
	assert.Equal(t, metadata, attrs)
}

func TestLoadRunNotFound(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Attach(t.TempDir()))
	defer store.Detach()

	_, _, err := store.LoadRun("no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSaveRunNilResult(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Attach(t.TempDir()))
	defer store.Detach()

	_, err := store.SaveRun(nil, "x", nil)
	assert.ErrorIs(t, err, ErrNilResult)
}

func TestListRuns(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Attach(t.TempDir()))
	defer store.Detach()

	res := runResult(t, types.Params{Width: 9, Steps: 4, CenterPosition: 4})
	_, err := store.SaveRun(res, "first", nil)
	require.NoError(t, err)
	_, err = store.SaveRun(res, "second", nil)
	require.NoError(t, err)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.NotEmpty(t, r.RunID)
		assert.Equal(t, 9, r.Width)
		assert.Equal(t, 4, r.Steps)
	}
}

func TestRunsAccumulateAcrossAttachments(t *testing.T) {
	dir := t.TempDir()
	res := runResult(t, types.Params{Width: 9, Steps: 4, CenterPosition: 4})

	store := NewStore()
	require.NoError(t, store.Attach(dir))
	runID, err := store.SaveRun(res, "persisted", nil)
	require.NoError(t, err)
	require.NoError(t, store.Detach())

	reopened := NewStore()
	require.NoError(t, reopened.Attach(dir))
	defer reopened.Detach()

	loaded, _, err := reopened.LoadRun(runID)
	require.NoError(t, err)
	assert.Equal(t, res.Grid.Cells(), loaded.Grid.Cells())
}
