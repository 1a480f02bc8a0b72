package action

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ForegroundWindowTitle returns the title of the current foreground window.
// If no foreground window is available an error is returned.
func ForegroundWindowTitle() (string, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	getForegroundWindow := user32.NewProc("GetForegroundWindow")
	getWindowTextW := user32.NewProc("GetWindowTextW")
	hwnd, _, _ := getForegroundWindow.Call()
	if hwnd == 0 {
		return "", errors.New("no foreground window")
	}
	const maxChars = 256
	buf := make([]uint16, maxChars)
	r, _, _ := getWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if r == 0 {
		return "", nil
	}
	return decodeWindowText(buf, int(r)), nil
}

func decodeWindowText(buf []uint16, n int) string {
	var end int
	for i, v := range buf {
		if v == 0 {
			end = i
			break
		}
	}
	if end == 0 {
		end = n
	}
	return strings.TrimSpace(string(utf16.Decode(buf[:end])))
}
