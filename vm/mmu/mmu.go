// Package mmu implements the translator that resolves virtual addresses to
// physical addresses and byte values through a two-level lookup: the TLB on
// the fast path, then the page table, loading pages from the backing store
// on a fault.
package mmu

import (
	"fmt"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/backing"
	"github.com/sarchlab/vmsim/vm/pagetable"
	"github.com/sarchlab/vmsim/vm/phys"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// A Translation is the result of resolving one virtual address.
type Translation struct {
	VirtualAddr  uint64
	PageNumber   int
	Offset       int
	FrameNumber  int
	PhysicalAddr int
	Value        int8

	// TLBHit and PageFault record which path resolved the address. At most
	// one of them is true: a fault can only follow a TLB miss, and a hit
	// never faults.
	TLBHit    bool
	PageFault bool
}

// Stats accumulates the counters reported at the end of a run.
type Stats struct {
	AddressesProcessed uint64
	TLBHits            uint64
	PageFaults         uint64
}

// TLBHitRate returns hits over addresses processed, or 0 for an empty run.
func (s Stats) TLBHitRate() float64 {
	if s.AddressesProcessed == 0 {
		return 0
	}

	return float64(s.TLBHits) / float64(s.AddressesProcessed)
}

// PageFaultRate returns faults over addresses processed, or 0 for an empty
// run.
func (s Stats) PageFaultRate() float64 {
	if s.AddressesProcessed == 0 {
		return 0
	}

	return float64(s.PageFaults) / float64(s.AddressesProcessed)
}

// Comp owns all the translation state for one simulation run: the TLB, the
// page table, the physical store, and the backing store accessor.
type Comp struct {
	name string

	tlb          tlb.TLB
	pageTable    pagetable.PageTable
	physMem      *phys.Store
	backingStore backing.Accessor

	stats Stats
}

// Name returns the name of the translator.
func (c *Comp) Name() string {
	return c.name
}

// Stats returns a copy of the counters accumulated so far.
func (c *Comp) Stats() Stats {
	return c.stats
}

// Translate resolves one virtual address.
//
// The TLB is probed first. On a miss, the page table decides between reusing
// the already-loaded frame and faulting the page in from the backing store.
// Either way the TLB is updated with the resolved mapping before the byte is
// read.
func (c *Comp) Translate(virtualAddr uint64) (Translation, error) {
	t := Translation{
		VirtualAddr: virtualAddr,
		PageNumber:  vm.PageNumber(virtualAddr),
		Offset:      vm.Offset(virtualAddr),
	}

	c.stats.AddressesProcessed++

	frameNumber, found := c.tlb.Lookup(t.PageNumber)
	if found {
		t.TLBHit = true
		c.stats.TLBHits++
	} else {
		var err error
		frameNumber, err = c.resolveThroughPageTable(&t)
		if err != nil {
			return Translation{}, err
		}

		c.tlb.Update(t.PageNumber, frameNumber)
	}

	t.FrameNumber = frameNumber
	t.PhysicalAddr = frameNumber*vm.FrameSize + t.Offset
	t.Value = c.physMem.ReadByte(frameNumber, t.Offset)

	return t, nil
}

func (c *Comp) resolveThroughPageTable(t *Translation) (int, error) {
	frameNumber, found := c.pageTable.Lookup(t.PageNumber)
	if found {
		return frameNumber, nil
	}

	t.PageFault = true
	c.stats.PageFaults++

	page, err := c.backingStore.ReadPage(t.PageNumber)
	if err != nil {
		return 0, fmt.Errorf("fault on page %d: %w", t.PageNumber, err)
	}

	frameNumber, err = c.physMem.AllocateFrame(page)
	if err != nil {
		return 0, fmt.Errorf("fault on page %d: %w", t.PageNumber, err)
	}

	c.pageTable.Insert(t.PageNumber, frameNumber)

	return frameNumber, nil
}
