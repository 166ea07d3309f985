// Package tlb implements the translation lookaside buffer: a small,
// fully-associative cache of page-to-frame mappings with a FIFO replacement
// policy.
package tlb

import (
	"fmt"

	"github.com/sarchlab/vmsim/vm"
)

// A TLB caches recent page-to-frame mappings on the fast path of address
// translation.
type TLB interface {
	// Lookup returns the cached frame for the page, if present. Entries
	// are scanned oldest-first.
	Lookup(pageNumber int) (frameNumber int, found bool)

	// Update makes the mapping available in the cache. A page that is
	// already cached has its frame refreshed in place; a new page takes a
	// free slot, or, when the cache is full, replaces the oldest-inserted
	// entry.
	Update(pageNumber, frameNumber int)

	// Len returns the number of entries currently cached.
	Len() int
}

// Comp is the default TLB implementation: a fixed-capacity ring of entries
// with a filled count and a head index pointing at the next victim.
type Comp struct {
	name string

	entries    []vm.Mapping
	numEntries int
	numFilled  int
	head       int
}

// Name returns the name of the TLB.
func (c *Comp) Name() string {
	return c.name
}

// Lookup scans the filled entries in insertion order, starting from the
// FIFO head.
func (c *Comp) Lookup(pageNumber int) (int, bool) {
	for i := 0; i < c.numFilled; i++ {
		entry := c.entries[(c.head+i)%c.numEntries]
		if entry.PageNumber == pageNumber {
			return entry.FrameNumber, true
		}
	}

	return 0, false
}

// Update inserts or refreshes a mapping under the FIFO policy.
//
// A page already present is refreshed in place rather than inserted again,
// so the cache never holds two entries for the same page and a refresh does
// not change the eviction order.
func (c *Comp) Update(pageNumber, frameNumber int) {
	for i := 0; i < c.numFilled; i++ {
		slot := (c.head + i) % c.numEntries
		if c.entries[slot].PageNumber == pageNumber {
			c.entries[slot].FrameNumber = frameNumber
			return
		}
	}

	if c.numFilled < c.numEntries {
		c.entries[c.numFilled] = vm.Mapping{
			PageNumber:  pageNumber,
			FrameNumber: frameNumber,
		}
		c.numFilled++

		return
	}

	// Full: overwrite the oldest entry and advance the head.
	c.entries[c.head] = vm.Mapping{
		PageNumber:  pageNumber,
		FrameNumber: frameNumber,
	}
	c.head = (c.head + 1) % c.numEntries
}

// Len returns the number of filled entries.
func (c *Comp) Len() int {
	return c.numFilled
}

func (c *Comp) reset() {
	if c.numEntries <= 0 {
		panic(fmt.Sprintf("TLB capacity must be positive, got %d",
			c.numEntries))
	}

	c.entries = make([]vm.Mapping, c.numEntries)
	c.numFilled = 0
	c.head = 0
}
