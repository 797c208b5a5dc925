package namespace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(name string) *File {
	return NewFile("uuid-"+name, name, "", "tester", time.Time{}, []string{"t"}, "txt")
}

func TestFolder_Path(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	assert.Equal(t, "/root", root.Path())
	assert.True(t, root.IsRoot())

	docs, err := root.AddFolder("docs")
	require.NoError(t, err)
	pics, err := docs.AddFolder("pics")
	require.NoError(t, err)

	assert.Equal(t, "/root/docs", docs.Path())
	assert.Equal(t, "/root/docs/pics", pics.Path())
	assert.False(t, pics.IsRoot())
}

func TestFolder_AddFolderRejectsDuplicate(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	first, err := root.AddFolder("docs")
	require.NoError(t, err)

	dup, err := root.AddFolder("docs")
	require.ErrorIs(t, err, ErrExists)
	assert.Nil(t, dup)

	// The original child must be untouched
	got, ok := root.Folder("docs")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestFolder_AddFileRejectsDuplicate(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	require.NoError(t, root.AddFile(newTestFile("a.txt")))

	err := root.AddFile(newTestFile("a.txt"))
	require.ErrorIs(t, err, ErrExists)
	assert.Equal(t, 1, root.FileCount(), "failed add must not mutate the folder")
}

func TestFolder_FileAndFolderNamespacesAreIndependent(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	_, err := root.AddFolder("report")
	require.NoError(t, err)
	require.NoError(t, root.AddFile(newTestFile("report")),
		"a folder and a file may share a name within one parent")

	_, folderOK := root.Folder("report")
	_, fileOK := root.File("report")
	assert.True(t, folderOK)
	assert.True(t, fileOK)
}

func TestFolder_DeleteFolderReturnsSnapshotAndPath(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	docs, err := root.AddFolder("docs")
	require.NoError(t, err)
	require.NoError(t, docs.AddFile(newTestFile("a.txt")))

	snap, path, err := root.DeleteFolder("docs")
	require.NoError(t, err)
	assert.Equal(t, "/root/docs", path, "path is captured before detachment")
	require.NotNil(t, snap)
	assert.Equal(t, "docs", snap.Name)
	require.Len(t, snap.Files, 1)
	assert.Equal(t, "a.txt", snap.Files[0].Name)

	_, ok := root.Folder("docs")
	assert.False(t, ok, "subtree must be fully detached")
}

func TestFolder_DeleteFolderMissing(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	snap, path, err := root.DeleteFolder("ghost")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, snap)
	assert.Empty(t, path)
}

func TestFolder_DeleteFileReturnsSnapshotAndPath(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	docs, err := root.AddFolder("docs")
	require.NoError(t, err)
	require.NoError(t, docs.AddFile(newTestFile("a.txt")))

	snap, path, err := docs.DeleteFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/root/docs/a.txt", path)
	assert.Equal(t, "a.txt", snap.Name)
	assert.Equal(t, KindFile, snap.Type)

	_, ok := docs.File("a.txt")
	assert.False(t, ok)

	_, _, err = docs.DeleteFile("a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFolder_SortedFiles(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	for _, name := range []string{"zeta.txt", "alpha.txt", "mid.txt"} {
		require.NoError(t, root.AddFile(newTestFile(name)))
	}

	sorted := root.SortedFiles()
	require.Len(t, sorted, 3)
	assert.Equal(t, "alpha.txt", sorted[0].Name)
	assert.Equal(t, "mid.txt", sorted[1].Name)
	assert.Equal(t, "zeta.txt", sorted[2].Name)
}

func TestFolder_SnapshotSortsChildrenAndFiles(t *testing.T) {
	t.Parallel()

	root := NewFolder("root")
	for _, name := range []string{"b", "a", "c"} {
		_, err := root.AddFolder(name)
		require.NoError(t, err)
	}
	for _, name := range []string{"y.txt", "x.txt"} {
		require.NoError(t, root.AddFile(newTestFile(name)))
	}

	snap := root.Snapshot()
	assert.Equal(t, KindFolder, snap.Type)
	require.Len(t, snap.Children, 3)
	assert.Equal(t, "a", snap.Children[0].Name)
	assert.Equal(t, "b", snap.Children[1].Name)
	assert.Equal(t, "c", snap.Children[2].Name)
	require.Len(t, snap.Files, 2)
	assert.Equal(t, "x.txt", snap.Files[0].Name)
	assert.Equal(t, "y.txt", snap.Files[1].Name)
}

func TestFile_SnapshotIsDetachedCopy(t *testing.T) {
	t.Parallel()

	file := NewFile("id", "a.txt", "body", "al", time.Time{}, []string{"x"}, "txt")
	snap := file.Snapshot()

	file.Tags[0] = "mutated"
	assert.Equal(t, []string{"x"}, snap.Tags, "snapshot must not alias live state")
	assert.Equal(t, "body", snap.Content)
	assert.False(t, snap.CreatedAt.IsZero(), "creation time defaults at construction")
}

func TestNewFile_KeepsExplicitCreatedAt(t *testing.T) {
	t.Parallel()

	at := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	file := NewFile("id", "a.txt", "", "", at, nil, "")
	assert.Equal(t, at, file.CreatedAt)
}
