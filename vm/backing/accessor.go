// Package backing provides random access to the backing store, the paged
// file that stands in for secondary storage. Page contents are loaded from
// here on a page fault.
package backing

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/vmsim/vm"
)

// An Accessor reads fixed-size pages from the backing store.
type Accessor interface {
	// ReadPage returns the content of the page with the given page number.
	// The returned slice is always exactly vm.PageSize bytes long; a short
	// read is an error.
	ReadPage(pageNumber int) ([]byte, error)
}

// A Store is a file-backed Accessor. It also supports writing pages, which
// the simulation itself never does, but tests and trace-preparation tools
// use to populate the store.
type Store struct {
	file *os.File
}

// Open opens the backing store file at the given path, creating it if it
// does not exist. The file is zero-extended to hold all vm.NumPages pages,
// so every in-range page read succeeds.
func Open(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open backing store: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat backing store: %w", err)
	}

	if info.Size() < vm.NumPages*vm.PageSize {
		if err := file.Truncate(vm.NumPages * vm.PageSize); err != nil {
			file.Close()
			return nil, fmt.Errorf("extend backing store: %w", err)
		}
	}

	return &Store{file: file}, nil
}

// ReadPage reads one full page at offset pageNumber*vm.PageSize.
func (s *Store) ReadPage(pageNumber int) ([]byte, error) {
	if pageNumber < 0 || pageNumber >= vm.NumPages {
		panic(fmt.Sprintf("page number %d out of range", pageNumber))
	}

	page := make([]byte, vm.PageSize)
	n, err := s.file.ReadAt(page, int64(pageNumber)*vm.PageSize)
	if n < vm.PageSize {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf(
				"backing store: short read on page %d", pageNumber)
		}
		return nil, fmt.Errorf(
			"backing store: read page %d: %w", pageNumber, err)
	}

	return page, nil
}

// WritePage overwrites one full page. The data must be exactly vm.PageSize
// bytes.
func (s *Store) WritePage(pageNumber int, data []byte) error {
	if pageNumber < 0 || pageNumber >= vm.NumPages {
		panic(fmt.Sprintf("page number %d out of range", pageNumber))
	}

	if len(data) != vm.PageSize {
		panic(fmt.Sprintf("page data must be %d bytes, got %d",
			vm.PageSize, len(data)))
	}

	_, err := s.file.WriteAt(data, int64(pageNumber)*vm.PageSize)
	if err != nil {
		return fmt.Errorf(
			"backing store: write page %d: %w", pageNumber, err)
	}

	return nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.file.Close()
}
