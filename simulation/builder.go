package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/vm/backing"
	"github.com/sarchlab/vmsim/vm/mmu"
)

// Builder can be used to build a simulation.
type Builder struct {
	addressFilePath string
	diskFilePath    string
	recordingOn     bool
	outputFileName  string
	monitorOn       bool
	monitorPort     int
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		diskFilePath: "disk.bin",
	}
}

// WithAddressFilePath sets the path of the virtual-address trace to
// process. Required.
func (b Builder) WithAddressFilePath(path string) Builder {
	b.addressFilePath = path
	return b
}

// WithDiskFilePath sets the path of the backing store file.
func (b Builder) WithDiskFilePath(path string) Builder {
	b.diskFilePath = path
	return b
}

// WithRecording enables recording of per-address translations into a SQLite
// database.
func (b Builder) WithRecording() Builder {
	b.recordingOn = true
	return b
}

// WithOutputFileName sets a custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitoring enables the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.addressFilePath == "" {
		panic("an address file path is required to build a simulation")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build opens the backing store and assembles the simulation. The caller
// must Terminate the simulation when done with it.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	s := &Simulation{
		id:              xid.New().String(),
		addressFilePath: b.addressFilePath,
	}

	backingStore, err := backing.Open(b.diskFilePath)
	if err != nil {
		return nil, err
	}
	s.backingStore = backingStore

	s.translator = mmu.MakeBuilder().
		WithBackingStore(backingStore).
		Build("MMU")

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "vmsim_" + s.id
		}

		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
		s.dataRecorder.CreateTable(traceTableName, TranslationTraceEntry{})
		s.dataRecorder.CreateTable(summaryTableName, RunSummaryEntry{})
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterTranslator(s.translator)
		s.monitor.StartServer()
	}

	return s, nil
}
