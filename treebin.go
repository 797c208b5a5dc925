// Package treebin implements an in-memory hierarchical namespace: folders
// containing subfolders and files, backed by a per-folder hash index for file
// lookup, with a recycle-bin undo log that preserves deleted subtrees for
// restoration.
//
// The package exposes a programmatic API only; transports, sessions, and
// rendering are the caller's concern and operate on the snapshot records
// returned here.
package treebin

import (
	"fmt"
	"sync"

	"github.com/brettbedarf/treebin/config"
	"github.com/brettbedarf/treebin/internal/hashindex"
	"github.com/brettbedarf/treebin/internal/namespace"
	"github.com/brettbedarf/treebin/internal/recycle"
	"github.com/brettbedarf/treebin/internal/util"
)

// Snapshot records are the sole externally visible representation of the
// tree. Aliased from the namespace package so callers never import internals.
type (
	Snapshot       = namespace.Snapshot
	FileSnapshot   = namespace.FileSnapshot
	FolderSnapshot = namespace.FolderSnapshot
	NodeKind       = namespace.NodeKind
)

// Snapshot kind tags.
const (
	KindFile   = namespace.KindFile
	KindFolder = namespace.KindFolder
)

// Error taxonomy. All operations report expected misses and conflicts through
// these sentinels (matched with errors.Is) instead of panicking.
var (
	// ErrNotFound: a path segment, folder, file, or bin index is absent.
	ErrNotFound = namespace.ErrNotFound
	// ErrExists: a name collision on create or on restore.
	ErrExists = namespace.ErrExists
	// ErrInvalidPath: a malformed path, or an attempt to delete the root.
	ErrInvalidPath = namespace.ErrInvalidPath
	// ErrIndexFull: the hash index reported full despite pre-emptive
	// rehashing. Unreachable in normal operation; a defect, not a condition
	// callers should handle.
	ErrIndexFull = hashindex.ErrIndexFull
)

// Core owns the namespace root and the recycle bin. It is the single context
// object callers pass around; there is no process-wide state.
type Core struct {
	cfg    *config.Config
	logger util.Logger

	// mu guards root and bin together: a deletion and its bin append must be
	// observed as one step, never a tree without the item and a bin without
	// the entry.
	mu   sync.Mutex
	root *namespace.Folder
	bin  *recycle.Bin
}

// New creates a Core with an empty namespace and recycle bin. A nil cfg uses
// defaults.
func New(cfg *config.Config) *Core {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Core{
		cfg:    cfg,
		logger: util.GetLogger("core"),
		root:   namespace.NewFolderWithCapacity(cfg.RootName, cfg.IndexCapacity),
		bin:    recycle.New(),
	}
}

// RootPath returns the path of the namespace root, e.g. "/root".
func (c *Core) RootPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Path()
}

// Tree exports the entire namespace as a snapshot.
func (c *Core) Tree() *FolderSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Snapshot()
}

// Lookup resolves a path and exports the folder it names.
func (c *Core) Lookup(path string) (*FolderSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	folder, err := namespace.Resolve(c.root, path)
	if err != nil {
		return nil, err
	}
	return folder.Snapshot(), nil
}

// CreateFolder adds an empty folder under parentPath. Fails with ErrExists
// when the parent already has a child folder of that name.
func (c *Core) CreateFolder(parentPath, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return err
	}
	if _, err := parent.AddFolder(name); err != nil {
		return err
	}
	c.logger.Debug().Str("parent", parent.Path()).Str("name", name).Msg("folder created")
	return nil
}

// DeleteFolder detaches the named subtree under parentPath and moves its
// snapshot into the recycle bin. The root folder itself can never be deleted.
func (c *Core) DeleteFolder(parentPath, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return err
	}
	if parent == c.root && name == c.root.Name() {
		return fmt.Errorf("%w: cannot delete the root folder", ErrInvalidPath)
	}

	snap, path, err := parent.DeleteFolder(name)
	if err != nil {
		return err
	}
	item := c.bin.Add(path, snap)
	c.logger.Info().Str("path", path).Str("bin_id", item.ID).Msg("folder moved to recycle bin")
	return nil
}

// CreateFile adds a file under parentPath from the request record, applying
// defaults (generated UUID, creation time now, lower-cased file type). Fails
// with ErrExists when the folder already has a file of that name.
func (c *Core) CreateFile(parentPath string, req *FileCreateRequest) (*FileSnapshot, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil file request", ErrInvalidPath)
	}
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return nil, err
	}

	file := req.toFile()
	if err := parent.AddFile(file); err != nil {
		return nil, err
	}
	c.logger.Debug().Str("parent", parent.Path()).Str("name", file.Name).Msg("file created")
	return file.Snapshot(), nil
}

// DeleteFile removes the named file under parentPath and moves its snapshot
// into the recycle bin.
func (c *Core) DeleteFile(parentPath, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return err
	}

	snap, path, err := parent.DeleteFile(name)
	if err != nil {
		return err
	}
	item := c.bin.Add(path, snap)
	c.logger.Info().Str("path", path).Str("bin_id", item.ID).Msg("file moved to recycle bin")
	return nil
}

// TraverseAll walks the whole namespace breadth-first and returns every file
// (with its full path) and the path of every folder, each exactly once.
// Callers layer their own filtering on top; [Core.Search] is the built-in
// metadata filter over the same walk.
func (c *Core) TraverseAll() (files []*SearchResult, folderPaths []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, located := range namespace.CollectFiles(c.root) {
		files = append(files, &SearchResult{
			File:     located.File.Snapshot(),
			FullPath: located.FolderPath + "/" + located.File.Name,
		})
	}
	_, folders := namespace.Collect(c.root)
	for _, folder := range folders {
		folderPaths = append(folderPaths, folder.Path())
	}
	return files, folderPaths
}

// FindFile locates a file by exact name within one folder via binary search
// over the folder's name-sorted view, returning its snapshot and full path.
func (c *Core) FindFile(parentPath, name string) (*FileSnapshot, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return nil, "", err
	}

	file, ok := namespace.SearchSorted(parent.SortedFiles(), name)
	if !ok {
		return nil, "", fmt.Errorf("%w: file %q in %s", ErrNotFound, name, parent.Path())
	}
	return file.Snapshot(), parent.Path() + "/" + file.Name, nil
}

// validateName rejects empty names and names containing the path separator.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPath)
	}
	for _, r := range name {
		if r == '/' {
			return fmt.Errorf("%w: name %q contains '/'", ErrInvalidPath, name)
		}
	}
	return nil
}
