// Package fb opens Linux framebuffer devices and exposes them as writable
// pixel surfaces. Only 32 bits per pixel devices are supported; that is
// what the compositor's BGRA output assumes.
package fb

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	"github.com/varkala/fbslide/internal/types"
)

const (
	devBase   = "/dev/fb"
	sysfsGlob = "/sys/class/graphics/fb[0-9]"

	ioctlGetVarScreenInfo = 0x4600 // FBIOGET_VSCREENINFO
)

type fbBitField struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo from linux/fb.h. The
// kernel copies the whole struct on FBIOGET_VSCREENINFO, so the layout has
// to match even though only the first few fields are used.
type varScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitField
	Green        fbBitField
	Blue         fbBitField
	Transp       fbBitField
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// Device is a memory-mapped framebuffer. It satisfies playback.Surface.
type Device struct {
	res  types.Point
	size int
	file *os.File
	data []byte
}

// DefaultIndex finds the lowest-numbered framebuffer registered in sysfs.
func DefaultIndex() (int, error) {
	matches, err := filepath.Glob(sysfsGlob)
	if err != nil || len(matches) == 0 {
		return 0, fmt.Errorf("no framebuffer devices found under /sys/class/graphics")
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(matches[0]), "fb"))
	if err != nil {
		return 0, fmt.Errorf("unexpected framebuffer entry %q: %w", matches[0], err)
	}
	return idx, nil
}

// Open maps the framebuffer with the given index into memory.
func Open(idx int) (*Device, error) {
	path := devBase + strconv.Itoa(idx)
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var vinfo varScreenInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(),
		ioctlGetVarScreenInfo, uintptr(unsafe.Pointer(&vinfo)))
	if errno != 0 {
		file.Close()
		return nil, fmt.Errorf("reading screen info for %s: %w", path, errno)
	}

	if vinfo.BitsPerPixel != 32 {
		file.Close()
		return nil, fmt.Errorf("%s has %d bits per pixel, only 32 is supported",
			path, vinfo.BitsPerPixel)
	}

	size := int(vinfo.XRes) * int(vinfo.YRes) * 4
	data, err := unix.Mmap(int(file.Fd()), 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}

	log.Debugf("mapped %s: %dx%d, %d bytes", path, vinfo.XRes, vinfo.YRes, size)
	return &Device{
		res:  types.Point{X: int(vinfo.XRes), Y: int(vinfo.YRes)},
		size: size,
		file: file,
		data: data,
	}, nil
}

func (d *Device) Resolution() types.Point { return d.res }

func (d *Device) Size() int { return d.size }

// Write copies a full frame into the mapping. The frame must not exceed
// the device size; the mapping is never grown.
func (d *Device) Write(frame []byte) error {
	if len(frame) > d.size {
		return fmt.Errorf("frame is %d bytes, framebuffer holds %d", len(frame), d.size)
	}
	copy(d.data, frame)
	return nil
}

// Close unmaps the device and closes the file descriptor.
func (d *Device) Close() error {
	if err := unix.Munmap(d.data); err != nil {
		d.file.Close()
		return err
	}
	d.data = nil
	return d.file.Close()
}
