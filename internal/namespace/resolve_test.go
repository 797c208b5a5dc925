package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildResolveTree(t *testing.T) *Folder {
	t.Helper()
	root := NewFolder("root")
	a, err := root.AddFolder("a")
	require.NoError(t, err)
	_, err = a.AddFolder("b")
	require.NoError(t, err)
	return root
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := buildResolveTree(t)

	tests := []struct {
		name     string
		path     string
		wantPath string
		wantErr  error
	}{
		{"root_with_slash", "/root", "/root", nil},
		{"root_without_slash", "root", "/root", nil},
		{"nested", "/root/a/b", "/root/a/b", nil},
		{"trailing_slash", "/root/a/", "/root/a", nil},
		{"missing_segment", "/root/a/ghost", "", ErrNotFound},
		{"wrong_root", "/other/a", "", ErrInvalidPath},
		{"empty", "", "", ErrInvalidPath},
		{"bare_slash", "/", "", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			folder, err := Resolve(root, tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, folder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, folder.Path())
		})
	}
}

func TestParentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"file_in_nested_folder", "/root/docs/a.txt", "/root/docs", nil},
		{"item_in_root", "/root/a.txt", "/root", nil},
		{"root_itself", "/root", "", ErrInvalidPath},
		{"empty", "", "", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParentPath(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
