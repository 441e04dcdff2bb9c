package repository

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"hybrid_recommend_viewer/models"
)

// Loaded project indexes, keyed by file path. No invalidation: a file that
// changes on disk is not re-read until the process restarts.
var (
	projectCacheMu sync.RWMutex
	projectCache   = make(map[string]models.ProjectIndex)
)

// LoadProjectsIndex reads a JSON-lines catalog into a project_id lookup.
// A missing file yields an empty index. Blank lines are skipped; a line
// that fails to parse is a fatal error for the whole load. Records without
// a project_id are ignored.
func LoadProjectsIndex(path string) (models.ProjectIndex, error) {
	projectCacheMu.RLock()
	if idx, ok := projectCache[path]; ok {
		projectCacheMu.RUnlock()
		return idx, nil
	}
	projectCacheMu.RUnlock()

	idx := make(models.ProjectIndex)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			projectCacheMu.Lock()
			projectCache[path] = idx
			projectCacheMu.Unlock()
			return idx, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec models.ProjectRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, lineNo, err)
		}
		if rec.ProjectID != "" {
			idx[rec.ProjectID] = &rec
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	projectCacheMu.Lock()
	projectCache[path] = idx
	projectCacheMu.Unlock()
	return idx, nil
}
