package namespace

import "sort"

// LocatedFile pairs a file with the path of the folder that owns it, captured
// during traversal so callers never have to reconstruct it afterwards.
type LocatedFile struct {
	File       *File
	FolderPath string
}

// Collect walks the subtree rooted at start breadth-first and returns every
// file and every folder exactly once, start included.
func Collect(start *Folder) (files []*File, folders []*Folder) {
	queue := []*Folder{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		folders = append(folders, current)
		files = append(files, current.Files()...)
		queue = append(queue, sortedChildren(current)...)
	}
	return files, folders
}

// CollectFiles walks the subtree breadth-first and returns every file tagged
// with its owning folder's full path.
func CollectFiles(start *Folder) []LocatedFile {
	var located []LocatedFile
	queue := []*Folder{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		path := current.Path()
		for _, file := range current.Files() {
			located = append(located, LocatedFile{File: file, FolderPath: path})
		}
		queue = append(queue, sortedChildren(current)...)
	}
	return located
}

// sortedChildren orders siblings by name so traversal output is
// deterministic.
func sortedChildren(f *Folder) []*Folder {
	children := f.Folders()
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	return children
}
