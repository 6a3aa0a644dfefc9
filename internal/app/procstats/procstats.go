package procstats

import (
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// Provider samples resource usage of the dashboard process itself for
// the footer display
type Provider interface {
	Self() (Stats, error)
	GetStats(pid int) (Stats, error)
}

type provider struct{}

// NewProvider creates a new process statistics provider
func NewProvider() Provider {
	return &provider{}
}

// Self returns stats for the current process
func (p *provider) Self() (Stats, error) {
	return p.GetStats(os.Getpid())
}

// GetStats retrieves CPU and memory statistics for a process by PID
func (p *provider) GetStats(pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcess(int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	cpuPercent, err := proc.CPUPercent()
	if err == nil {
		stats.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfo()
	if err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}

// FormatStats renders stats for the footer
func FormatStats(s Stats) string {
	return fmt.Sprintf("cpu %.1f%% · mem %.0fMB", s.CPU, s.MEM)
}
