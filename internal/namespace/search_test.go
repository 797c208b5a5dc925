package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedTestFiles(names ...string) []*File {
	files := make([]*File, 0, len(names))
	for _, name := range names {
		files = append(files, newTestFile(name))
	}
	return files
}

func TestSearchSorted(t *testing.T) {
	t.Parallel()

	files := sortedTestFiles("a.txt", "c.txt", "m.txt", "x.txt", "z.txt")

	tests := []struct {
		name   string
		target string
		found  bool
	}{
		{"first_element", "a.txt", true},
		{"last_element", "z.txt", true},
		{"middle_element", "m.txt", true},
		{"before_first", "0.txt", false},
		{"after_last", "zz.txt", false},
		{"between_elements", "b.txt", false},
		{"empty_target", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file, ok := SearchSorted(files, tt.target)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, file)
				assert.Equal(t, tt.target, file.Name)
			} else {
				assert.Nil(t, file)
			}
		})
	}
}

func TestSearchSorted_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	_, ok := SearchSorted(nil, "a.txt")
	assert.False(t, ok)

	single := sortedTestFiles("only.txt")
	file, ok := SearchSorted(single, "only.txt")
	require.True(t, ok)
	assert.Equal(t, "only.txt", file.Name)

	_, ok = SearchSorted(single, "other.txt")
	assert.False(t, ok)
}
