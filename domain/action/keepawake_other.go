//go:build !windows

package action

// SetKeepAwake has no implementation off Windows.
func SetKeepAwake(on bool) error {
	return ErrUnsupported
}
