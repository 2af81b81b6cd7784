// Package vocab provides a loader for the fixed word lists used by the analyzers.
// Lists are stored as JSON files and embedded at compile time.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

// File names of the embedded tables.
const (
	SkillsFile    = "skills.json"
	StopwordsFile = "stopwords.json"
	SectionsFile  = "sections.json"
)

//go:embed *.json
var vocabFiles embed.FS

// cache stores parsed vocabulary files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string][]string)
	cacheMu sync.RWMutex
)

// Get retrieves a word list by filename and key.
// Returns an error if the file or key is not found.
func Get(filename, key string) ([]string, error) {
	lists, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	list, exists := lists[key]
	if !exists {
		return nil, fmt.Errorf("vocabulary key %q not found in %s", key, filename)
	}

	return list, nil
}

// MustGet retrieves a word list by filename and key, panicking if not found.
// The embedded tables are part of the binary, so a miss is a build defect.
func MustGet(filename, key string) []string {
	list, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load vocabulary: %v", err))
	}
	return list
}

// Set returns a word list as a lookup set.
func Set(filename, key string) map[string]struct{} {
	list := MustGet(filename, key)
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		set[w] = struct{}{}
	}
	return set
}

// loadFile loads and caches a vocabulary file.
func loadFile(filename string) (map[string][]string, error) {
	cacheMu.RLock()
	if lists, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return lists, nil
	}
	cacheMu.RUnlock()

	data, err := vocabFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", filename, err)
	}

	var lists map[string][]string
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = lists
	cacheMu.Unlock()

	return lists, nil
}

// ClearCache clears the vocabulary cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string][]string)
	cacheMu.Unlock()
}
