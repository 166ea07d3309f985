// Package monitoring turns a running simulation into a small web server so
// that long trace runs can be observed from outside: live translation
// statistics, component state, process resource usage, and CPU profiles.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/vmsim/vm/mmu"
)

// A Component is anything the monitor can expose state for.
type Component interface {
	Name() string
}

// Monitor exposes a running simulation over HTTP.
type Monitor struct {
	translator *mmu.Comp
	components []Component
	portNumber int
	url        string
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterTranslator registers the translation system whose statistics are
// served at /api/stats.
func (m *Monitor) RegisterTranslator(t *mmu.Comp) {
	m.translator = t
	m.RegisterComponent(t)
}

// RegisterComponent registers a component to be monitored.
func (m *Monitor) RegisterComponent(c Component) {
	m.components = append(m.components, c)
}

// StartServer starts the monitor as a web server, on the configured port or
// a random one.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/stats", m.listStats)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// URL returns the address the monitor serves on. It is only valid after
// StartServer has been called.
func (m *Monitor) URL() string {
	return m.url
}

// OpenInBrowser opens the monitor page in the default browser.
func (m *Monitor) OpenInBrowser() {
	err := browser.OpenURL(m.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

type statsRsp struct {
	AddressesProcessed uint64  `json:"addresses_processed"`
	TLBHits            uint64  `json:"tlb_hits"`
	PageFaults         uint64  `json:"page_faults"`
	TLBHitRate         float64 `json:"tlb_hit_rate"`
	PageFaultRate      float64 `json:"page_fault_rate"`
}

func (m *Monitor) listStats(w http.ResponseWriter, _ *http.Request) {
	if m.translator == nil {
		w.WriteHeader(404)
		return
	}

	stats := m.translator.Stats()
	rsp := statsRsp{
		AddressesProcessed: stats.AddressesProcessed,
		TLBHits:            stats.TLBHits,
		PageFaults:         stats.PageFaults,
		TLBHitRate:         stats.TLBHitRate(),
		PageFaultRate:      stats.PageFaultRate(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.components {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "\"%s\"", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listComponentDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) Component {
	for _, c := range m.components {
		if c.Name() == name {
			return c
		}
	}

	w.WriteHeader(404)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
