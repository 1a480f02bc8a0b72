package action

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002
)

type keepAwakeReq struct {
	on  bool
	err chan error
}

var (
	keepAwakeOnce sync.Once
	keepAwakeCh   chan keepAwakeReq
)

// SetKeepAwake prevents (or allows again) display and system sleep. The
// execution state is per OS thread, so all calls are funneled onto one
// locked thread that lives for the rest of the process.
func SetKeepAwake(on bool) error {
	keepAwakeOnce.Do(startKeepAwake)
	req := keepAwakeReq{on: on, err: make(chan error, 1)}
	keepAwakeCh <- req
	return <-req.err
}

func startKeepAwake() {
	keepAwakeCh = make(chan keepAwakeReq)
	go func() {
		runtime.LockOSThread()
		kernel32 := windows.NewLazySystemDLL("kernel32.dll")
		setState := kernel32.NewProc("SetThreadExecutionState")
		for req := range keepAwakeCh {
			flags := uintptr(esContinuous)
			if req.on {
				flags = esContinuous | esSystemRequired | esDisplayRequired
			}
			r, _, callErr := setState.Call(flags)
			if r == 0 {
				req.err <- fmt.Errorf("set thread execution state: %v", callErr)
			} else {
				req.err <- nil
			}
		}
	}()
}
