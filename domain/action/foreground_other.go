//go:build !windows

package action

// ForegroundWindowTitle has no implementation off Windows. Callers should
// treat ErrUnsupported as permanent and disable foreground polling.
func ForegroundWindowTitle() (string, error) {
	return "", ErrUnsupported
}
