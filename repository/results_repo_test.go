package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResults_OrderPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hybrid_results_u00001.json")
	writeFile(t, path, `[
		{"project_id":"P003","final_score":0.91},
		{"project_id":"P001","final_score":0.87},
		{"project_id":"P002","final_score":0.55}
	]`)

	entries, err := LoadResults(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "P003", entries[0].ProjectID)
	assert.Equal(t, "P001", entries[1].ProjectID)
	assert.Equal(t, "P002", entries[2].ProjectID)
}

func TestLoadResults_MissingFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hybrid_results_u00009.json")
	assert.False(t, ResultsFileExists(path))

	_, err := LoadResults(path)
	assert.Error(t, err)
}

func TestLoadResults_CachedByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hybrid_results_u00001.json")
	writeFile(t, path, `[{"project_id":"P001"}]`)

	first, err := LoadResults(path)
	require.NoError(t, err)

	writeFile(t, path, `[{"project_id":"P001"},{"project_id":"P002"}]`)

	second, err := LoadResults(path)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, first, second)
}
