// Package vm defines the address-space geometry shared by all the
// translation components: page and frame sizes, table and TLB capacities,
// and the decomposition of a virtual address into page number and offset.
package vm

// The simulated address space uses 256-byte pages and a 16-bit effective
// virtual address: 8 bits of page number on top of 8 bits of offset.
const (
	// PageSize is the size of one page, in bytes.
	PageSize = 256

	// FrameSize is the size of one physical frame, in bytes. Frames and
	// pages are the same size, so a page maps onto exactly one frame.
	FrameSize = 256

	// NumPages is the number of pages in the virtual address space.
	NumPages = 256

	// NumFrames is the number of frames in the physical store.
	NumFrames = 256

	// NumTLBEntries is the capacity of the translation lookaside buffer.
	NumTLBEntries = 16

	offsetBits = 8
	offsetMask = 0xff
	pageMask   = 0xff
)

// PageNumber extracts the page number from a virtual address.
func PageNumber(virtualAddr uint64) int {
	return int((virtualAddr >> offsetBits) & pageMask)
}

// Offset extracts the in-page offset from a virtual address.
func Offset(virtualAddr uint64) int {
	return int(virtualAddr & offsetMask)
}

// A Mapping is one page-to-frame translation, as held by the page table and
// the TLB.
type Mapping struct {
	PageNumber  int
	FrameNumber int
}
