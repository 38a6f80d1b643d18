// Package resources reads bundled data files from a consumer-provided fs.FS.
package resources

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Read returns the contents of the named resource.
func Read(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read resource %s: %w", name, err)
	}
	return data, nil
}

// DecodeJSON unmarshals the named resource into v.
func DecodeJSON(fsys fs.FS, name string, v any) error {
	data, err := Read(fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode resource %s: %w", name, err)
	}
	return nil
}
