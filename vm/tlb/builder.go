package tlb

import "github.com/sarchlab/vmsim/vm"

// A Builder can build TLBs.
type Builder struct {
	numEntries int
}

// MakeBuilder returns a Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		numEntries: vm.NumTLBEntries,
	}
}

// WithNumEntries sets the capacity of the TLB.
func (b Builder) WithNumEntries(n int) Builder {
	b.numEntries = n
	return b
}

// Build creates a TLB with the given name.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		name:       name,
		numEntries: b.numEntries,
	}
	c.reset()

	return c
}
