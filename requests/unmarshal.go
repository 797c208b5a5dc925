package requests

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brettbedarf/treebin"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (treebin.NodeCreateType, error) {
	var meta struct {
		Type treebin.NodeCreateType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileNode parses a file definition and splits its path into the
// parent path and a core create request.
func UnmarshalFileNode(data []byte) (*FileNode, error) {
	var dto FileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	parent, name, err := splitNodePath(dto.Path)
	if err != nil {
		return nil, err
	}

	return &FileNode{
		ParentPath: parent,
		Request: &treebin.FileCreateRequest{
			Name:      name,
			Content:   dto.Content,
			Author:    dto.Author,
			CreatedAt: dto.CreatedAt,
			Tags:      dto.Tags,
			FileType:  dto.FileType,
			UUID:      dto.UUID,
		},
	}, nil
}

// UnmarshalFolderNode parses a folder definition.
func UnmarshalFolderNode(data []byte) (*FolderNode, error) {
	var dto FolderDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	parent, name, err := splitNodePath(dto.Path)
	if err != nil {
		return nil, err
	}

	return &FolderNode{
		ParentPath: parent,
		Request:    &treebin.FolderCreateRequest{Name: name},
	}, nil
}

// splitNodePath separates a full node path into its parent path and the
// node's own name. The path must have at least a root segment and a name.
func splitNodePath(path string) (parent, name string, err error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", "", fmt.Errorf("empty node path")
	}
	segments := strings.Split(trimmed, "/")
	if len(segments) < 2 {
		return "", "", fmt.Errorf("node path %q has no parent segment", path)
	}
	return "/" + strings.Join(segments[:len(segments)-1], "/"), segments[len(segments)-1], nil
}
