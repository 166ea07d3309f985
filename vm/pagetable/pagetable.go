// Package pagetable implements the per-run page table: a fixed-size map
// from page number to frame number. Entries are only ever added, never
// updated or removed, so a page's frame assignment is stable for the whole
// run.
package pagetable

import (
	"fmt"

	"github.com/sarchlab/vmsim/vm"
)

// A PageTable remembers which frame each loaded page lives in.
type PageTable interface {
	// Lookup returns the frame that holds the page, if the page has been
	// loaded.
	Lookup(pageNumber int) (frameNumber int, found bool)

	// Insert records a page-to-frame mapping. The page must not already be
	// mapped; the translator only inserts after a confirmed miss.
	Insert(pageNumber, frameNumber int)
}

// New creates an empty page table with one slot per possible page number.
func New() PageTable {
	t := &tableImpl{}
	for i := range t.frames {
		t.frames[i] = unmapped
	}

	return t
}

const unmapped = -1

type tableImpl struct {
	frames [vm.NumPages]int
}

func (t *tableImpl) Lookup(pageNumber int) (int, bool) {
	t.mustBeInRange(pageNumber)

	frameNumber := t.frames[pageNumber]
	if frameNumber == unmapped {
		return 0, false
	}

	return frameNumber, true
}

func (t *tableImpl) Insert(pageNumber, frameNumber int) {
	t.mustBeInRange(pageNumber)

	if t.frames[pageNumber] != unmapped {
		panic(fmt.Sprintf("page %d is already mapped to frame %d",
			pageNumber, t.frames[pageNumber]))
	}

	t.frames[pageNumber] = frameNumber
}

func (t *tableImpl) mustBeInRange(pageNumber int) {
	if pageNumber < 0 || pageNumber >= vm.NumPages {
		panic(fmt.Sprintf("page number %d out of range", pageNumber))
	}
}
