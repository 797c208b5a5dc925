package namespace

import "time"

// NodeKind tags a snapshot record as a file or a folder.
type NodeKind string

const (
	KindFile   NodeKind = "file"
	KindFolder NodeKind = "folder"
)

// Snapshot is the closed variant of exported records: exactly *FileSnapshot
// and *FolderSnapshot implement it. Restore logic dispatches on the concrete
// type, so an unknown variant is an invariant violation rather than a silent
// string-tag mismatch.
type Snapshot interface {
	Kind() NodeKind
	NodeName() string
}

// FileSnapshot is the exported representation of a File.
type FileSnapshot struct {
	Name      string    `json:"name"`
	Type      NodeKind  `json:"type"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_date"`
	Tags      []string  `json:"tags"`
	FileType  string    `json:"file_type"`
	Content   string    `json:"content,omitempty"`
}

func (s *FileSnapshot) Kind() NodeKind   { return KindFile }
func (s *FileSnapshot) NodeName() string { return s.Name }

// FolderSnapshot is the exported representation of a Folder subtree. Children
// and Files are sorted by name for deterministic rendering.
type FolderSnapshot struct {
	Name     string            `json:"name"`
	Type     NodeKind          `json:"type"`
	Children []*FolderSnapshot `json:"children"`
	Files    []*FileSnapshot   `json:"files"`
}

func (s *FolderSnapshot) Kind() NodeKind   { return KindFolder }
func (s *FolderSnapshot) NodeName() string { return s.Name }
