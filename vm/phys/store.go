// Package phys models the simulated physical memory: a fixed array of
// frames filled strictly in increasing order. Frames are never reclaimed;
// the store only grows until it runs out.
package phys

import (
	"errors"
	"fmt"

	"github.com/sarchlab/vmsim/vm"
)

// ErrOutOfFrames is returned by AllocateFrame when every frame is in use.
var ErrOutOfFrames = errors.New("phys: no free frame left")

// A Store holds the frame contents and the next-free-frame counter.
type Store struct {
	frames    [vm.NumFrames][vm.FrameSize]byte
	nextFrame int
}

// NewStore creates an empty physical store with all frames free.
func NewStore() *Store {
	return &Store{}
}

// AllocateFrame copies data into the next free frame and returns the frame
// number. The data must be exactly vm.FrameSize bytes.
func (s *Store) AllocateFrame(data []byte) (int, error) {
	if len(data) != vm.FrameSize {
		panic(fmt.Sprintf("frame data must be %d bytes, got %d",
			vm.FrameSize, len(data)))
	}

	if s.nextFrame >= vm.NumFrames {
		return 0, ErrOutOfFrames
	}

	frameNumber := s.nextFrame
	copy(s.frames[frameNumber][:], data)
	s.nextFrame++

	return frameNumber, nil
}

// ReadByte returns the byte at the given frame and offset, as the signed
// value reported in the per-address output.
func (s *Store) ReadByte(frameNumber, offset int) int8 {
	if frameNumber < 0 || frameNumber >= s.nextFrame {
		panic(fmt.Sprintf("frame %d not allocated", frameNumber))
	}

	if offset < 0 || offset >= vm.FrameSize {
		panic(fmt.Sprintf("offset %d out of range", offset))
	}

	return int8(s.frames[frameNumber][offset])
}

// NumAllocated returns how many frames have been handed out so far.
func (s *Store) NumAllocated() int {
	return s.nextFrame
}
