package treebin

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brettbedarf/treebin/internal/namespace"
	"github.com/brettbedarf/treebin/internal/util"
)

// NodeCreateType tags a node definition from an entrypoint layer (cli, seed
// file, web api) as a file or a folder.
type NodeCreateType string

const (
	FileNodeType   NodeCreateType = "file"
	FolderNodeType NodeCreateType = "folder"
)

// FileCreateRequest carries user input for file creation from entrypoint
// layers into [Core.CreateFile]. Optional fields default at creation time.
type FileCreateRequest struct {
	Name      string
	Content   string
	Author    string
	CreatedAt *time.Time // Created at (Default current time)
	Tags      []string
	FileType  string  // Lower-cased at the boundary, e.g. "pdf", "txt"
	UUID      *string // Optional UUID to enable external linking at request time
}

// FolderCreateRequest carries user input for folder creation.
type FolderCreateRequest struct {
	Name string
}

// toFile converts the request to a live file with defaults applied: missing
// UUID generated, missing creation time set to now, file type lower-cased,
// blank tags dropped.
func (r *FileCreateRequest) toFile() *namespace.File {
	var createdAt time.Time
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}

	return namespace.NewFile(
		util.ValueOrDefault(r.UUID, uuid.New().String()),
		r.Name,
		r.Content,
		r.Author,
		createdAt,
		cleanTags(r.Tags),
		strings.ToLower(r.FileType),
	)
}

// cleanTags trims surrounding whitespace and drops blank entries while
// preserving order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}
