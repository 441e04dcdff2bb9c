package repository

import (
	"encoding/json"
	"os"
	"sync"

	"hybrid_recommend_viewer/models"
)

var (
	resultsCacheMu sync.RWMutex
	resultsCache   = make(map[string][]*models.ResultEntry)
)

// ResultsFileExists reports whether a results file is present. Callers use
// this to turn a missing file into a "no results" condition instead of an
// error from LoadResults.
func ResultsFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadResults parses an entire results file as one JSON array of ranked
// entries, in file order. Cached by path for the process lifetime. No
// existence check here; see ResultsFileExists.
func LoadResults(path string) ([]*models.ResultEntry, error) {
	resultsCacheMu.RLock()
	if entries, ok := resultsCache[path]; ok {
		resultsCacheMu.RUnlock()
		return entries, nil
	}
	resultsCacheMu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []*models.ResultEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	resultsCacheMu.Lock()
	resultsCache[path] = entries
	resultsCacheMu.Unlock()
	return entries, nil
}
