// Package recycle keeps deleted subtrees and files as immutable snapshots so
// they can be restored or purged later.
package recycle

import (
	"time"

	"github.com/google/uuid"

	"github.com/brettbedarf/treebin/internal/namespace"
)

// Item is one deleted entry: the snapshot of what was removed plus the full
// path it was removed from. The ID only identifies entries in logs; bin
// addressing is positional and indices shift as earlier entries are removed.
type Item struct {
	ID           string
	OriginalPath string
	DeletedAt    time.Time
	Data         namespace.Snapshot
}

// Bin is an append-ordered log of deleted items. It is not safe for
// concurrent use; callers serialize access together with the tree so a
// delete and its bin append are observed atomically.
type Bin struct {
	items []*Item
}

// New creates an empty bin.
func New() *Bin {
	return &Bin{items: make([]*Item, 0)}
}

// Add appends a deleted snapshot and returns the stored entry.
func (b *Bin) Add(originalPath string, data namespace.Snapshot) *Item {
	item := &Item{
		ID:           uuid.New().String(),
		OriginalPath: originalPath,
		DeletedAt:    time.Now(),
		Data:         data,
	}
	b.items = append(b.items, item)
	return item
}

// Len returns the number of entries currently held.
func (b *Bin) Len() int { return len(b.items) }

// Items returns all entries in their current order.
func (b *Bin) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)
	return out
}

// Item returns the entry at index, or false when out of range.
func (b *Bin) Item(index int) (*Item, bool) {
	if index < 0 || index >= len(b.items) {
		return nil, false
	}
	return b.items[index], true
}

// Remove deletes and returns the entry at index, or false when out of range.
// Entries after index shift down one position.
func (b *Bin) Remove(index int) (*Item, bool) {
	if index < 0 || index >= len(b.items) {
		return nil, false
	}
	item := b.items[index]
	b.items = append(b.items[:index], b.items[index+1:]...)
	return item, true
}

// Clear drops all entries and returns how many were dropped.
func (b *Bin) Clear() int {
	n := len(b.items)
	b.items = b.items[:0]
	return n
}
