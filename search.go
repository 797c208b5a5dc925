package treebin

import (
	"strings"

	"github.com/brettbedarf/treebin/internal/namespace"
)

// Query filters the metadata search. Zero-valued fields are ignored. Name and
// Author match as case-insensitive substrings, FileType as a
// case-insensitive exact value, Tags as a subset of the file's tags.
type Query struct {
	Name     string
	Author   string
	FileType string
	Tags     []string
}

// SearchResult is one metadata-search hit. FullPath is captured during
// traversal from the owning folder, so it is exact even when identical files
// exist in different folders.
type SearchResult struct {
	File     *FileSnapshot `json:"file"`
	FullPath string        `json:"full_path"`
}

// Search scans the whole namespace breadth-first and returns every file
// matching all populated query fields.
func (c *Core) Search(q *Query) []*SearchResult {
	if q == nil {
		q = &Query{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := strings.ToLower(q.Name)
	author := strings.ToLower(q.Author)
	fileType := strings.ToLower(q.FileType)
	tags := make([]string, 0, len(q.Tags))
	for _, tag := range q.Tags {
		if t := strings.ToLower(strings.TrimSpace(tag)); t != "" {
			tags = append(tags, t)
		}
	}

	results := make([]*SearchResult, 0)
	for _, located := range namespace.CollectFiles(c.root) {
		file := located.File
		if name != "" && !strings.Contains(strings.ToLower(file.Name), name) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(file.Author), author) {
			continue
		}
		if fileType != "" && fileType != strings.ToLower(file.FileType) {
			continue
		}
		if !hasAllTags(file.Tags, tags) {
			continue
		}
		results = append(results, &SearchResult{
			File:     file.Snapshot(),
			FullPath: located.FolderPath + "/" + file.Name,
		})
	}
	c.logger.Debug().Int("results", len(results)).Msg("metadata search")
	return results
}

// hasAllTags reports whether every wanted tag appears in the file's tags,
// compared case-insensitively.
func hasAllTags(fileTags, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(fileTags))
	for _, tag := range fileTags {
		have[strings.ToLower(tag)] = struct{}{}
	}
	for _, tag := range wanted {
		if _, ok := have[tag]; !ok {
			return false
		}
	}
	return true
}
