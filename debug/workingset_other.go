//go:build !windows

package debug

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// workingSet reads the resident set size of the current process. Best-effort;
// platforms gopsutil cannot serve report an error once.
func workingSet() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mem.RSS, nil
}
