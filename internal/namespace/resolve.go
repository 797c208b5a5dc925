package namespace

import (
	"fmt"
	"strings"
)

// Resolve walks a slash-delimited path from root and returns the folder it
// names. The first segment must equal the root's name; a leading slash is
// optional. Returns ErrInvalidPath when the path is empty or does not start
// at the root, ErrNotFound when any later segment is missing.
func Resolve(root *Folder, path string) (*Folder, error) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if segments[0] != root.Name() {
		return nil, fmt.Errorf("%w: %q does not start at /%s", ErrInvalidPath, path, root.Name())
	}

	current := root
	for _, segment := range segments[1:] {
		child, ok := current.Folder(segment)
		if !ok {
			return nil, fmt.Errorf("%w: segment %q in %q", ErrNotFound, segment, path)
		}
		current = child
	}
	return current, nil
}

// ParentPath strips the last segment from a full path, yielding the path of
// the containing folder. "/root/docs/a.txt" -> "/root/docs". Stripping the
// root itself has no parent and fails with ErrInvalidPath.
func ParentPath(path string) (string, error) {
	segments := splitPath(path)
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %q has no parent", ErrInvalidPath, path)
	}
	return "/" + strings.Join(segments[:len(segments)-1], "/"), nil
}

// splitPath breaks a path into non-empty segments, tolerating a leading or
// trailing slash and repeated separators.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
