package main

import (
	"os"

	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

// ProcessStats is what the OS reports for this process.
type ProcessStats struct {
	RSS        uint64
	VMS        uint64
	CPUPercent float64
}

func sampleProcess(logger *zap.Logger) ProcessStats {
	var stats ProcessStats

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.Warn("process stats unavailable", zap.Error(err))
		return stats
	}

	if mem, err := p.MemoryInfo(); err == nil {
		stats.RSS = mem.RSS
		stats.VMS = mem.VMS
	} else {
		logger.Warn("memory info unavailable", zap.Error(err))
	}

	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	} else {
		logger.Warn("cpu usage unavailable", zap.Error(err))
	}
	return stats
}
