package treebin

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brettbedarf/treebin/internal/namespace"
	"github.com/brettbedarf/treebin/internal/recycle"
)

// BinEntry is the exported view of one recycle-bin item. Entries are
// addressed by their position in the listing; removing an earlier entry
// shifts later ones down, so positions are not stable identifiers (the ID is
// for display and logs only).
type BinEntry struct {
	ID           string    `json:"id"`
	OriginalPath string    `json:"original_path"`
	DeletedAt    time.Time `json:"deleted_at"`
	Item         Snapshot  `json:"item_data"`
}

func newBinEntry(item *recycle.Item) *BinEntry {
	return &BinEntry{
		ID:           item.ID,
		OriginalPath: item.OriginalPath,
		DeletedAt:    item.DeletedAt,
		Item:         item.Data,
	}
}

// BinItems lists the recycle bin in its current order.
func (c *Core) BinItems() []*BinEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.bin.Items()
	entries := make([]*BinEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, newBinEntry(item))
	}
	return entries
}

// Restore rebuilds the bin entry at index back into the live tree at its
// original location and removes it from the bin, returning the restored
// path. The original parent must still exist and must not already contain an
// item of the same name and kind; on any failure both the tree and the bin
// are left untouched.
func (c *Core) Restore(index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.bin.Item(index)
	if !ok {
		return "", fmt.Errorf("%w: recycle bin index %d", ErrNotFound, index)
	}

	parentPath, err := namespace.ParentPath(item.OriginalPath)
	if err != nil {
		// The original root snapshot cannot be restored as its own child.
		return "", err
	}
	parent, err := namespace.Resolve(c.root, parentPath)
	if err != nil {
		return "", fmt.Errorf("original parent %q: %w", parentPath, err)
	}

	// Collision check happens before any mutation; a conflicting name means
	// the caller must rename or purge manually.
	switch data := item.Data.(type) {
	case *namespace.FileSnapshot:
		if _, exists := parent.File(data.Name); exists {
			return "", fmt.Errorf("%w: file %q in %s", ErrExists, data.Name, parent.Path())
		}
		if err := parent.AddFile(fileFromSnapshot(data)); err != nil {
			return "", err
		}
	case *namespace.FolderSnapshot:
		if _, exists := parent.Folder(data.Name); exists {
			return "", fmt.Errorf("%w: folder %q in %s", ErrExists, data.Name, parent.Path())
		}
		if err := restoreFolder(parent, data); err != nil {
			return "", err
		}
	default:
		// Snapshot is a closed variant; anything else is a defect.
		return "", fmt.Errorf("unexpected snapshot type %T in recycle bin", data)
	}

	c.bin.Remove(index)
	restoredPath := parent.Path() + "/" + item.Data.NodeName()
	c.logger.Info().Str("path", restoredPath).Str("bin_id", item.ID).Msg("restored from recycle bin")
	return restoredPath, nil
}

// PurgeItem permanently removes the bin entry at index.
func (c *Core) PurgeItem(index int) (*BinEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.bin.Remove(index)
	if !ok {
		return nil, fmt.Errorf("%w: recycle bin index %d", ErrNotFound, index)
	}
	c.logger.Info().Str("path", item.OriginalPath).Str("bin_id", item.ID).Msg("purged from recycle bin")
	return newBinEntry(item), nil
}

// EmptyBin drops every bin entry and returns how many were dropped.
func (c *Core) EmptyBin() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.bin.Clear()
	if n > 0 {
		c.logger.Info().Int("count", n).Msg("recycle bin emptied")
	}
	return n
}

// restoreFolder recursively recreates a folder subtree from its snapshot:
// the folder itself, then its files, then its child folders. The snapshot
// came from a live subtree, so nested name collisions cannot occur inside
// freshly created folders.
func restoreFolder(parent *namespace.Folder, snap *namespace.FolderSnapshot) error {
	folder, err := parent.AddFolder(snap.Name)
	if err != nil {
		return err
	}
	for _, fileSnap := range snap.Files {
		if err := folder.AddFile(fileFromSnapshot(fileSnap)); err != nil {
			return err
		}
	}
	for _, childSnap := range snap.Children {
		if err := restoreFolder(folder, childSnap); err != nil {
			return err
		}
	}
	return nil
}

// fileFromSnapshot builds a fresh live file from stored fields. Restoration
// never reuses the deleted instance.
func fileFromSnapshot(snap *namespace.FileSnapshot) *namespace.File {
	return namespace.NewFile(
		uuid.New().String(),
		snap.Name,
		snap.Content,
		snap.Author,
		snap.CreatedAt,
		snap.Tags,
		snap.FileType,
	)
}
