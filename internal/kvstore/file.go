package kvstore

import (
	"fmt"
	"path/filepath"

	"fjacquet/finance-tracker/internal/fileutils"
)

// File stores each key as <dir>/<key>.json.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("file backend requires a data directory")
	}
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) (string, bool, error) {
	if err := ValidKey(key); err != nil {
		return "", false, err
	}
	data, ok, err := fileutils.ReadFileIfExists(f.path(key))
	if err != nil || !ok {
		return "", false, err
	}
	return string(data), true, nil
}

func (f *File) Set(key, value string) error {
	if err := ValidKey(key); err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(f.path(key), []byte(value), 0600)
}

func (f *File) Close() error { return nil }
