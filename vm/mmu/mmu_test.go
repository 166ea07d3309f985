package mmu

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/phys"
)

var _ = Describe("MMU", func() {
	var (
		mockCtrl     *gomock.Controller
		cache        *MockTLB
		table        *MockPageTable
		backingStore *MockAccessor
		physMem      *phys.Store
		translator   *Comp
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		cache = NewMockTLB(mockCtrl)
		table = NewMockPageTable(mockCtrl)
		backingStore = NewMockAccessor(mockCtrl)
		physMem = phys.NewStore()

		translator = MakeBuilder().
			WithTLB(cache).
			WithPageTable(table).
			WithPhysicalStore(physMem).
			WithBackingStore(backingStore).
			Build("MMU")
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("TLB hit", func() {
		BeforeEach(func() {
			frame := bytes.Repeat([]byte{7}, vm.FrameSize)
			_, err := physMem.AllocateFrame(frame)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should use the cached frame directly", func() {
			cache.EXPECT().Lookup(1).Return(0, true)

			t, err := translator.Translate(0x0103)

			Expect(err).ToNot(HaveOccurred())
			Expect(t.TLBHit).To(BeTrue())
			Expect(t.PageFault).To(BeFalse())
			Expect(t.FrameNumber).To(Equal(0))
			Expect(t.PhysicalAddr).To(Equal(3))
			Expect(t.Value).To(Equal(int8(7)))
			Expect(translator.Stats().TLBHits).To(Equal(uint64(1)))
			Expect(translator.Stats().PageFaults).To(Equal(uint64(0)))
		})
	})

	Context("TLB miss, page table hit", func() {
		BeforeEach(func() {
			frame := bytes.Repeat([]byte{9}, vm.FrameSize)
			_, err := physMem.AllocateFrame(frame)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should reuse the mapped frame and refresh the TLB", func() {
			cache.EXPECT().Lookup(1).Return(0, false)
			table.EXPECT().Lookup(1).Return(0, true)
			cache.EXPECT().Update(1, 0)

			t, err := translator.Translate(0x0100)

			Expect(err).ToNot(HaveOccurred())
			Expect(t.TLBHit).To(BeFalse())
			Expect(t.PageFault).To(BeFalse())
			Expect(t.Value).To(Equal(int8(9)))
			Expect(translator.Stats().TLBHits).To(Equal(uint64(0)))
			Expect(translator.Stats().PageFaults).To(Equal(uint64(0)))
		})
	})

	Context("page fault", func() {
		It("should load the page and record the new mapping", func() {
			page := bytes.Repeat([]byte{5}, vm.PageSize)

			cache.EXPECT().Lookup(2).Return(0, false)
			table.EXPECT().Lookup(2).Return(0, false)
			backingStore.EXPECT().ReadPage(2).Return(page, nil)
			table.EXPECT().Insert(2, 0)
			cache.EXPECT().Update(2, 0)

			t, err := translator.Translate(0x0210)

			Expect(err).ToNot(HaveOccurred())
			Expect(t.PageFault).To(BeTrue())
			Expect(t.FrameNumber).To(Equal(0))
			Expect(t.PhysicalAddr).To(Equal(0x10))
			Expect(t.Value).To(Equal(int8(5)))
			Expect(physMem.NumAllocated()).To(Equal(1))
			Expect(translator.Stats().PageFaults).To(Equal(uint64(1)))
		})

		It("should propagate a backing store failure", func() {
			readErr := errors.New("device error")

			cache.EXPECT().Lookup(2).Return(0, false)
			table.EXPECT().Lookup(2).Return(0, false)
			backingStore.EXPECT().ReadPage(2).Return(nil, readErr)

			_, err := translator.Translate(0x0210)

			Expect(err).To(MatchError(readErr))
		})

		It("should fail when the physical store is exhausted", func() {
			page := make([]byte, vm.PageSize)
			for i := 0; i < vm.NumFrames; i++ {
				_, err := physMem.AllocateFrame(page)
				Expect(err).ToNot(HaveOccurred())
			}

			cache.EXPECT().Lookup(2).Return(0, false)
			table.EXPECT().Lookup(2).Return(0, false)
			backingStore.EXPECT().ReadPage(2).Return(page, nil)

			_, err := translator.Translate(0x0210)

			Expect(err).To(MatchError(phys.ErrOutOfFrames))
		})
	})
})
