// Package simulation ties one translation run together: it owns the
// translation system and the backing store handle, drives the translator
// over a virtual-address trace, reports per-address results, and records
// them.
package simulation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/vm/backing"
	"github.com/sarchlab/vmsim/vm/mmu"
)

const (
	traceTableName   = "translation_trace"
	summaryTableName = "run_summary"
)

// A TranslationTraceEntry is one recorded per-address result.
type TranslationTraceEntry struct {
	SeqNumber    uint64
	VirtualAddr  uint64
	PageNumber   int
	Offset       int
	FrameNumber  int
	PhysicalAddr int
	Value        int8
	TLBHit       bool
	PageFault    bool
}

// A RunSummaryEntry is the recorded end-of-run statistics row.
type RunSummaryEntry struct {
	AddressesProcessed uint64
	TLBHits            uint64
	PageFaults         uint64
	TLBHitRate         float64
	PageFaultRate      float64
}

// A Simulation is one complete run over a virtual-address trace.
type Simulation struct {
	id              string
	addressFilePath string

	backingStore *backing.Store
	translator   *mmu.Comp
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// Translator returns the translation system driven by this simulation.
func (s *Simulation) Translator() *mmu.Comp {
	return s.translator
}

// GetDataRecorder returns the data recorder used in the simulation, if
// recording is enabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation, if monitoring is
// enabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// Run processes the whole address trace, writing one line per address and a
// final statistics line to out. The first I/O or parse error aborts the
// run.
func (s *Simulation) Run(out io.Writer) error {
	addressFile, err := os.Open(s.addressFilePath)
	if err != nil {
		return fmt.Errorf("open address file: %w", err)
	}
	defer addressFile.Close()

	scanner := bufio.NewScanner(addressFile)
	var seqNumber uint64

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		virtualAddr, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return fmt.Errorf("bad virtual address %q: %w", line, err)
		}

		t, err := s.translator.Translate(virtualAddr)
		if err != nil {
			return err
		}

		fmt.Fprintf(out,
			"Virtual address: %d Physical address: %d Value: %d\n",
			t.VirtualAddr, t.PhysicalAddr, t.Value)

		s.recordTranslation(seqNumber, t)
		seqNumber++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read address file: %w", err)
	}

	s.reportStats(out)

	return nil
}

func (s *Simulation) recordTranslation(seqNumber uint64, t mmu.Translation) {
	if s.dataRecorder == nil {
		return
	}

	s.dataRecorder.InsertData(traceTableName, TranslationTraceEntry{
		SeqNumber:    seqNumber,
		VirtualAddr:  t.VirtualAddr,
		PageNumber:   t.PageNumber,
		Offset:       t.Offset,
		FrameNumber:  t.FrameNumber,
		PhysicalAddr: t.PhysicalAddr,
		Value:        t.Value,
		TLBHit:       t.TLBHit,
		PageFault:    t.PageFault,
	})
}

func (s *Simulation) reportStats(out io.Writer) {
	stats := s.translator.Stats()

	fmt.Fprintf(out, "Page Fault Rate: %f, TLB Hit Rate: %f\n",
		stats.PageFaultRate(), stats.TLBHitRate())

	if s.dataRecorder == nil {
		return
	}

	s.dataRecorder.InsertData(summaryTableName, RunSummaryEntry{
		AddressesProcessed: stats.AddressesProcessed,
		TLBHits:            stats.TLBHits,
		PageFaults:         stats.PageFaults,
		TLBHitRate:         stats.TLBHitRate(),
		PageFaultRate:      stats.PageFaultRate(),
	})
	s.dataRecorder.Flush()
}

// Terminate releases the resources held by the simulation. It is safe to
// call after a failed run.
func (s *Simulation) Terminate() {
	s.backingStore.Close()

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
