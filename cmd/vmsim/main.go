// Package main provides the vmsim command, which simulates demand-paged
// virtual-to-physical address translation over a trace of virtual
// addresses.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/vmsim/simulation"
)

var (
	diskFilePath string
	recordingOn  bool
	outputName   string
	monitorOn    bool
	monitorPort  int
	openBrowser  bool
)

var rootCmd = &cobra.Command{
	Use:   "vmsim <address-file>",
	Short: "Simulate demand-paged virtual address translation",
	Long: `vmsim reads a trace of decimal virtual addresses, translates each ` +
		`one to a physical address and byte value through a FIFO TLB and a ` +
		`demand-paged page table backed by a disk file, and reports the ` +
		`TLB hit rate and page fault rate.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(_ *cobra.Command, args []string) error {
	builder := simulation.MakeBuilder().
		WithAddressFilePath(args[0]).
		WithDiskFilePath(diskFilePath)

	if recordingOn {
		builder = builder.WithRecording()
		if outputName != "" {
			builder = builder.WithOutputFileName(outputName)
		}
	}

	if monitorOn {
		builder = builder.WithMonitoring()
		if monitorPort > 0 {
			builder = builder.WithMonitorPort(monitorPort)
		}
	}

	s, err := builder.Build()
	if err != nil {
		return err
	}
	defer s.Terminate()

	if monitorOn && openBrowser {
		s.GetMonitor().OpenInBrowser()
	}

	return s.Run(os.Stdout)
}

func init() {
	// A .env file can override the built-in defaults, and flags override
	// both.
	_ = godotenv.Load()

	defaultDisk := os.Getenv("VMSIM_DISK")
	if defaultDisk == "" {
		defaultDisk = "disk.bin"
	}

	defaultMonitorPort := 0
	if p, err := strconv.Atoi(os.Getenv("VMSIM_MONITOR_PORT")); err == nil {
		defaultMonitorPort = p
	}

	rootCmd.Flags().StringVar(&diskFilePath, "disk", defaultDisk,
		"path of the backing store file, created if absent")
	rootCmd.Flags().BoolVar(&recordingOn, "record", false,
		"record per-address translations into a SQLite database")
	rootCmd.Flags().StringVar(&outputName, "db", "",
		"output database name, without the .sqlite3 suffix")
	rootCmd.Flags().BoolVar(&monitorOn, "monitor", false,
		"serve live run statistics over HTTP")
	rootCmd.Flags().IntVar(&monitorPort, "monitor-port", defaultMonitorPort,
		"port for the monitoring server, 0 picks a random port")
	rootCmd.Flags().BoolVar(&openBrowser, "open", false,
		"open the monitoring page in the default browser")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
