package observability

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SampleProcess reads memory, CPU and OS status of the running process.
func SampleProcess() (ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessStats{}, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}
	return ProcessStats{
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		Status:     status,
		SampledAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}
