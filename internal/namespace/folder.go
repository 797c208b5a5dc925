package namespace

import (
	"fmt"
	"sort"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/treebin/internal/hashindex"
)

// Folder is an interior node of the namespace: child folders keyed by name
// plus a hash index of files keyed by name. The two namespaces are tracked
// independently, so a folder and a file may share a name within one parent.
//
// The parent reference is weak: it exists only for path reconstruction and
// never implies ownership (the parent already owns the child through its
// children map).
type Folder struct {
	name     string
	parent   *Folder
	children *xsync.Map[string, *Folder]
	files    *hashindex.Index[*File]

	// indexCap is the configured starting capacity for file indexes,
	// inherited by child folders (the live index itself grows past it).
	indexCap int
}

// NewFolder creates a detached folder. The root is simply a folder with no
// parent; all other folders are linked by AddFolder.
func NewFolder(name string) *Folder {
	return NewFolderWithCapacity(name, hashindex.DefaultCapacity)
}

// NewFolderWithCapacity creates a detached folder whose file index starts at
// the given slot count.
func NewFolderWithCapacity(name string, indexCapacity int) *Folder {
	if indexCapacity < 1 {
		indexCapacity = hashindex.DefaultCapacity
	}
	return &Folder{
		name:     name,
		children: xsync.NewMap[string, *Folder](),
		files:    hashindex.NewWithCapacity[*File](indexCapacity),
		indexCap: indexCapacity,
	}
}

// Name returns the folder's name (last path segment).
func (f *Folder) Name() string { return f.name }

// IsRoot reports whether the folder has no parent.
func (f *Folder) IsRoot() bool { return f.parent == nil }

// Path recursively composes the full path: the root yields "/<name>", every
// other folder yields its parent's path plus "/<name>".
func (f *Folder) Path() string {
	if f.parent == nil {
		return "/" + f.name
	}
	return f.parent.Path() + "/" + f.name
}

// AddFolder creates and links a new child folder. It fails with ErrExists if
// a child folder of that name is already present, leaving the tree unchanged.
func (f *Folder) AddFolder(name string) (*Folder, error) {
	child := &Folder{
		name:     name,
		parent:   f,
		children: xsync.NewMap[string, *Folder](),
		files:    hashindex.NewWithCapacity[*File](f.indexCap),
		indexCap: f.indexCap,
	}
	if _, loaded := f.children.LoadOrStore(name, child); loaded {
		return nil, fmt.Errorf("%w: folder %q in %s", ErrExists, name, f.Path())
	}
	return child, nil
}

// Folder looks up a direct child folder by name.
func (f *Folder) Folder(name string) (*Folder, bool) {
	return f.children.Load(name)
}

// File looks up a file in this folder's index by name.
func (f *Folder) File(name string) (*File, bool) {
	return f.files.Search(name)
}

// DeleteFolder detaches the named child subtree and returns its snapshot
// together with the full path it occupied before removal. The live subtree is
// no longer reachable from the tree afterwards.
func (f *Folder) DeleteFolder(name string) (*FolderSnapshot, string, error) {
	child, ok := f.children.LoadAndDelete(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: folder %q in %s", ErrNotFound, name, f.Path())
	}
	path := child.Path()
	child.parent = nil
	return child.Snapshot(), path, nil
}

// AddFile inserts the file into this folder's index. It fails with ErrExists
// if a file of that name is already present, leaving the index unchanged.
func (f *Folder) AddFile(file *File) error {
	if _, ok := f.files.Search(file.Name); ok {
		return fmt.Errorf("%w: file %q in %s", ErrExists, file.Name, f.Path())
	}
	return f.files.Insert(file.Name, file)
}

// DeleteFile removes the named file from the index and returns its snapshot
// plus the full path it occupied.
func (f *Folder) DeleteFile(name string) (*FileSnapshot, string, error) {
	file, ok := f.files.Delete(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: file %q in %s", ErrNotFound, name, f.Path())
	}
	return file.Snapshot(), f.Path() + "/" + name, nil
}

// Files snapshots this folder's live files in index order (unordered from the
// caller's perspective).
func (f *Folder) Files() []*File {
	return f.files.Values()
}

// FileCount returns the number of files in this folder.
func (f *Folder) FileCount() int { return f.files.Len() }

// SortedFiles materializes a fresh view of this folder's files ordered
// lexicographically by name, as required by binary search.
func (f *Folder) SortedFiles() []*File {
	files := f.files.Values()
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

// Folders snapshots the direct child folders in no particular order.
func (f *Folder) Folders() []*Folder {
	folders := make([]*Folder, 0)
	f.children.Range(func(_ string, child *Folder) bool {
		folders = append(folders, child)
		return true
	})
	return folders
}

// Snapshot recursively exports the folder subtree with children and files
// sorted by name.
func (f *Folder) Snapshot() *FolderSnapshot {
	children := make([]*FolderSnapshot, 0)
	f.children.Range(func(_ string, child *Folder) bool {
		children = append(children, child.Snapshot())
		return true
	})
	sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })

	files := make([]*FileSnapshot, 0)
	for _, file := range f.files.Values() {
		files = append(files, file.Snapshot())
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return &FolderSnapshot{
		Name:     f.name,
		Type:     KindFolder,
		Children: children,
		Files:    files,
	}
}
