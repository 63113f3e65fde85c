//go:build linux

package led

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unsafe"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600

	graphicsClass = "/sys/class/graphics"
)

// fbVarScreenInfo is the head of struct fb_var_screeninfo; only the
// resolution and depth are inspected.
type fbVarScreenInfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Rest         [33]uint32
}

// OpenSenseHAT opens the Sense HAT framebuffer. An empty dev looks the device
// up by name under /sys/class/graphics.
func OpenSenseHAT(dev string, clearOnClose bool) (*SenseHAT, error) {
	if dev == "" {
		var err error
		if dev, err = FindFrameBuffer(graphicsClass, SenseHATName); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(dev, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer: %w", err)
	}

	var info fbVarScreenInfo
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&info))); errno != 0 {
		_ = f.Close()
		return nil, &os.SyscallError{Syscall: "SYS_IOCTL", Err: errno}
	}
	if info.Xres != model.GridSize || info.Yres != model.GridSize || info.BitsPerPixel != 16 {
		_ = f.Close()
		return nil, fmt.Errorf("%s: unexpected mode %dx%d@%d", dev, info.Xres, info.Yres, info.BitsPerPixel)
	}

	return newSenseHAT(f, clearOnClose), nil
}

// FindFrameBuffer returns the /dev node of the framebuffer called name.
func FindFrameBuffer(class, name string) (string, error) {
	dirs, err := filepath.Glob(filepath.Join(class, "fb*"))
	if err != nil {
		return "", err
	}
	for _, d := range dirs {
		b, err := os.ReadFile(filepath.Join(d, "name"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(b)) == name {
			return filepath.Join("/dev", filepath.Base(d)), nil
		}
	}
	return "", errors.New("framebuffer " + name + " not found")
}
