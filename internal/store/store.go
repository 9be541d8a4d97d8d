package store

import (
	"os"
)

// FileStore is an append-only, file backed list of live host addresses.
// The file is opened and closed for every record so an interrupted run
// never loses records that were already written.
type FileStore struct {
	path  string
	total int
}

// Create truncates (or creates) the file at path and returns a store for it
func Create(path string) (*FileStore, error) {
	file, err := os.Create(path)

	if err != nil {
		return nil, err
	}

	if err := file.Close(); err != nil {
		return nil, err
	}

	return &FileStore{path: path}, nil
}

// Append writes addr followed by a newline and returns the new running total
func (s *FileStore) Append(addr string) (int, error) {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

	if err != nil {
		return s.total, err
	}

	if _, err := file.WriteString(addr + "\n"); err != nil {
		file.Close()
		return s.total, err
	}

	if err := file.Close(); err != nil {
		return s.total, err
	}

	s.total++

	return s.total, nil
}

// Total returns the number of records appended since Create
func (s *FileStore) Total() int {
	return s.total
}

// Path returns the location of the backing file
func (s *FileStore) Path() string {
	return s.path
}
