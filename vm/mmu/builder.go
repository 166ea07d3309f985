package mmu

import (
	"github.com/sarchlab/vmsim/vm/backing"
	"github.com/sarchlab/vmsim/vm/pagetable"
	"github.com/sarchlab/vmsim/vm/phys"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// A Builder can build translators.
type Builder struct {
	tlb          tlb.TLB
	pageTable    pagetable.PageTable
	physMem      *phys.Store
	backingStore backing.Accessor
}

// MakeBuilder returns a Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithTLB sets the TLB the translator probes on the fast path.
func (b Builder) WithTLB(t tlb.TLB) Builder {
	b.tlb = t
	return b
}

// WithPageTable sets the page table.
func (b Builder) WithPageTable(t pagetable.PageTable) Builder {
	b.pageTable = t
	return b
}

// WithPhysicalStore sets the physical store that holds loaded frames.
func (b Builder) WithPhysicalStore(s *phys.Store) Builder {
	b.physMem = s
	return b
}

// WithBackingStore sets the accessor that pages are faulted in from.
// Required; there is no default.
func (b Builder) WithBackingStore(a backing.Accessor) Builder {
	b.backingStore = a
	return b
}

// Build creates a translator with the given name. Components that were not
// provided are created fresh, so a plain
// MakeBuilder().WithBackingStore(a).Build("MMU") is a complete system.
func (b Builder) Build(name string) *Comp {
	if b.backingStore == nil {
		panic("a backing store accessor is required to build a translator")
	}

	c := &Comp{
		name:         name,
		tlb:          b.tlb,
		pageTable:    b.pageTable,
		physMem:      b.physMem,
		backingStore: b.backingStore,
	}

	if c.tlb == nil {
		c.tlb = tlb.MakeBuilder().Build(name + ".TLB")
	}

	if c.pageTable == nil {
		c.pageTable = pagetable.New()
	}

	if c.physMem == nil {
		c.physMem = phys.NewStore()
	}

	return c
}
