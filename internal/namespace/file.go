package namespace

import (
	"time"

	"github.com/brettbedarf/treebin/internal/util"
)

// File is a leaf entry in the namespace. It owns no other entities; the
// folder's index owns the File. CreatedAt is set once at construction and
// never mutated afterwards.
type File struct {
	UUID      string
	Name      string
	Content   string
	Author    string
	CreatedAt time.Time
	Tags      []string
	FileType  string
}

// NewFile constructs a File, defaulting CreatedAt to now when zero.
func NewFile(uuid, name, content, author string, createdAt time.Time, tags []string, fileType string) *File {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return &File{
		UUID:      uuid,
		Name:      name,
		Content:   content,
		Author:    author,
		CreatedAt: createdAt,
		Tags:      util.CloneStrings(tags),
		FileType:  fileType,
	}
}

// Snapshot exports the file as an immutable record for transport and for the
// recycle bin. Mutating the live File afterwards does not affect it.
func (f *File) Snapshot() *FileSnapshot {
	return &FileSnapshot{
		Name:      f.Name,
		Type:      KindFile,
		Author:    f.Author,
		CreatedAt: f.CreatedAt,
		Tags:      util.CloneStrings(f.Tags),
		FileType:  f.FileType,
		Content:   f.Content,
	}
}
