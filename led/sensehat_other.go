//go:build !linux

package led

func OpenSenseHAT(_ string, _ bool) (*SenseHAT, error) {
	return nil, ErrNotSupported
}

func FindFrameBuffer(_, _ string) (string, error) {
	return "", ErrNotSupported
}
