package requests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/treebin"
)

func TestGetNodeType(t *testing.T) {
	t.Parallel()

	nodeType, err := GetNodeType([]byte(`{"type": "file", "path": "/root/a.txt"}`))
	require.NoError(t, err)
	assert.Equal(t, treebin.FileNodeType, nodeType)

	nodeType, err = GetNodeType([]byte(`{"type": "folder", "path": "/root/docs"}`))
	require.NoError(t, err)
	assert.Equal(t, treebin.FolderNodeType, nodeType)

	_, err = GetNodeType([]byte(`not json`))
	assert.Error(t, err)
}

func TestUnmarshalFileNode(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"type": "file",
		"path": "/root/docs/report.pdf",
		"author": "al",
		"created_date": "2023-04-01T12:00:00Z",
		"tags": ["work", "q2"],
		"file_type": "PDF",
		"content": "hello"
	}`)

	node, err := UnmarshalFileNode(raw)
	require.NoError(t, err)
	assert.Equal(t, "/root/docs", node.ParentPath)

	req := node.Request
	assert.Equal(t, "report.pdf", req.Name)
	assert.Equal(t, "al", req.Author)
	assert.Equal(t, []string{"work", "q2"}, req.Tags)
	assert.Equal(t, "PDF", req.FileType, "case normalization happens downstream")
	assert.Equal(t, "hello", req.Content)
	require.NotNil(t, req.CreatedAt)
	assert.Equal(t, time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC), req.CreatedAt.UTC())
	assert.Nil(t, req.UUID)
}

func TestUnmarshalFileNode_MinimalFields(t *testing.T) {
	t.Parallel()

	node, err := UnmarshalFileNode([]byte(`{"type": "file", "path": "/root/a.txt"}`))
	require.NoError(t, err)
	assert.Equal(t, "/root", node.ParentPath)
	assert.Equal(t, "a.txt", node.Request.Name)
	assert.Nil(t, node.Request.CreatedAt)
	assert.Empty(t, node.Request.Tags)
}

func TestUnmarshalFolderNode(t *testing.T) {
	t.Parallel()

	node, err := UnmarshalFolderNode([]byte(`{"type": "folder", "path": "/root/docs/archive"}`))
	require.NoError(t, err)
	assert.Equal(t, "/root/docs", node.ParentPath)
	assert.Equal(t, "archive", node.Request.Name)
}

func TestUnmarshal_RejectsPathsWithoutParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"bare_root", `{"type": "folder", "path": "/root"}`},
		{"empty_path", `{"type": "file", "path": ""}`},
		{"only_slashes", `{"type": "file", "path": "///"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, errFolder := UnmarshalFolderNode([]byte(tt.raw))
			_, errFile := UnmarshalFileNode([]byte(tt.raw))
			assert.Error(t, errFolder)
			assert.Error(t, errFile)
		})
	}
}
