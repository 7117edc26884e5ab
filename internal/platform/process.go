package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessSampler opens gopsutil-backed process handles.
type ProcessSampler struct {
	cores int
}

var _ ProcessOpener = (*ProcessSampler)(nil)

// NewProcessSampler creates a sampler that normalizes CPU usage by the
// logical core count.
func NewProcessSampler() *ProcessSampler {
	cores, err := cpu.Counts(true)
	if err != nil || cores < 1 {
		cores = runtime.NumCPU()
	}
	return &ProcessSampler{cores: cores}
}

// OpenProcess returns a handle for pid, or ErrProcessGone if it already exited.
func (s *ProcessSampler) OpenProcess(pid int) (ProcessHandle, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("open process %d: %w", pid, ErrProcessGone)
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", pid, classifyProcessError(err))
	}
	return &sampledProcess{proc: p, cores: s.cores}, nil
}

type sampledProcess struct {
	proc  *process.Process
	cores int
}

func (p *sampledProcess) ExecutableName() (string, error) {
	name, err := p.proc.Name()
	if err != nil {
		return "", classifyProcessError(err)
	}
	return name, nil
}

// CPUPercent reports usage since the previous call; the first call returns 0.
func (p *sampledProcess) CPUPercent() (float64, error) {
	pct, err := p.proc.Percent(0)
	if err != nil {
		return 0, classifyProcessError(err)
	}
	return pct / float64(p.cores), nil
}

func (p *sampledProcess) MemoryPercent() (float64, error) {
	pct, err := p.proc.MemoryPercent()
	if err != nil {
		return 0, classifyProcessError(err)
	}
	return float64(pct), nil
}

func classifyProcessError(err error) error {
	switch {
	case errors.Is(err, process.ErrorProcessNotRunning), errors.Is(err, os.ErrNotExist), errors.Is(err, syscall.ESRCH):
		return fmt.Errorf("%w: %v", ErrProcessGone, err)
	case errors.Is(err, os.ErrPermission), errors.Is(err, syscall.EPERM), errors.Is(err, syscall.EACCES):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return err
	}
}
