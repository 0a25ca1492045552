package utils

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemUsage struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// GetCPUUsage returns the current CPU usage as a percentage
func GetCPUUsage() (float64, error) {
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percentages) == 0 {
		return 0, fmt.Errorf("could not get CPU usage")
	}
	return percentages[0], nil
}

// GetMemoryUsage returns the current memory usage as a percentage
func GetMemoryUsage() (float64, error) {
	virtualMem, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return virtualMem.UsedPercent, nil
}

func GetSystemUsage() (SystemUsage, error) {
	cpuPercent, err := GetCPUUsage()
	if err != nil {
		return SystemUsage{}, fmt.Errorf("cpu usage: %w", err)
	}
	memPercent, err := GetMemoryUsage()
	if err != nil {
		return SystemUsage{}, fmt.Errorf("memory usage: %w", err)
	}
	return SystemUsage{CPUPercent: cpuPercent, MemoryPercent: memPercent}, nil
}
