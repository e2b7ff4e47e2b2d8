// Package report records a solver run as JSON, stamped with basic host
// information so timings from different machines can be told apart.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/salesman/tsp"
)

// Unknown fills SysInfo fields that could not be determined.
const Unknown = "unknown"

// SysInfo saves the basic system information.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// Report is one solver run.
type Report struct {
	Algorithm  string  `json:"algorithm"`
	Cities     int     `json:"cities"`
	Tour       []int   `json:"tour"`
	Length     float64 `json:"length"`
	LowerBound float64 `json:"lower_bound"`
	ElapsedNs  int64   `json:"elapsed_ns"`
	Time       string  `json:"time"`
	System     SysInfo `json:"system"`
}

// New assembles a report from a solver result.
func New(res tsp.Result, cities int, lowerBound float64, elapsed time.Duration, sys SysInfo) Report {
	return Report{
		Algorithm:  res.Algorithm.String(),
		Cities:     cities,
		Tour:       res.Tour.IDs(),
		Length:     res.Length,
		LowerBound: lowerBound,
		ElapsedNs:  elapsed.Nanoseconds(),
		Time:       elapsed.String(),
		System:     sys,
	}
}

// Gap returns (Length - LowerBound) / LowerBound, or 0 without a positive bound.
func (r Report) Gap() float64 {
	if r.LowerBound <= 0 {
		return 0
	}
	return (r.Length - r.LowerBound) / r.LowerBound
}

// Write encodes r as indented JSON.
func (r Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(r)
}

// WriteFile writes r to path, replacing any existing file.
func (r Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = r.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("report: %w", err)
	}
	return f.Close()
}

// Read decodes a report previously produced by Write.
func Read(rd io.Reader) (Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}
	return r, nil
}

// CollectSysInfo queries platform, CPU model and total memory. Each field
// falls back to Unknown when the host does not expose it.
func CollectSysInfo() SysInfo {
	sys := SysInfo{Platform: Unknown, CPU: Unknown, RAM: Unknown}
	if hostStat, err := host.Info(); err == nil && hostStat.Platform != "" {
		sys.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 && cpuStat[0].ModelName != "" {
		sys.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		sys.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return sys
}
