// Package requests converts raw node definitions (seed files, api payloads)
// into core request types with defaults applied.
package requests

import (
	"time"

	"github.com/brettbedarf/treebin"
)

// NodeDTO is the JSON representation shared by all node definitions. Path is
// the node's full intended path including its own name, e.g.
// "/root/docs/a.txt".
type NodeDTO struct {
	Path string                 `json:"path"`
	Type treebin.NodeCreateType `json:"type"`
	UUID *string                `json:"uuid,omitempty"` // Optional UUID to enable linking at request time
}

// FileDTO is the JSON representation of a file definition.
type FileDTO struct {
	NodeDTO
	Author    string     `json:"author,omitempty"`
	CreatedAt *time.Time `json:"created_date,omitempty"` // Default current time
	Tags      []string   `json:"tags,omitempty"`
	FileType  string     `json:"file_type,omitempty"` // e.g. "pdf", "txt"; lower-cased downstream
	Content   string     `json:"content,omitempty"`
}

// FolderDTO is the JSON representation of a folder definition.
type FolderDTO struct {
	NodeDTO
}

// FileNode pairs a parsed file request with the parent path it belongs under.
type FileNode struct {
	ParentPath string
	Request    *treebin.FileCreateRequest
}

// FolderNode pairs a parsed folder request with the parent path it belongs
// under.
type FolderNode struct {
	ParentPath string
	Request    *treebin.FolderCreateRequest
}
