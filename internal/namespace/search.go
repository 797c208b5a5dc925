package namespace

// SearchSorted locates a file by name in a slice already sorted ascending by
// name, e.g. the output of Folder.SortedFiles. The sort contract is the
// caller's responsibility; running this on an unsorted slice gives undefined
// results.
func SearchSorted(files []*File, name string) (*File, bool) {
	low, high := 0, len(files)-1
	for low <= high {
		mid := (low + high) / 2
		switch {
		case files[mid].Name == name:
			return files[mid], true
		case files[mid].Name < name:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return nil, false
}
