//go:build !linux

package platform

// NewLinuxBackendFromDisplay is only available on Linux.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	return nil, ErrUnsupported
}

// LinuxBackend is a placeholder on platforms without an X11 binding.
type LinuxBackend struct{}

func (b *LinuxBackend) Disconnect() {}

func (b *LinuxBackend) TracksFocus() bool { return false }

func (b *LinuxBackend) PrimaryDisplay() (Display, error) { return Display{}, ErrUnsupported }

func (b *LinuxBackend) ForegroundWindow() (WindowID, error)          { return 0, ErrUnsupported }
func (b *LinuxBackend) IsWindowValid(WindowID) bool                  { return false }
func (b *LinuxBackend) WindowClassName(WindowID) (string, error)     { return "", ErrUnsupported }
func (b *LinuxBackend) WindowOwnerPID(WindowID) (int, error)         { return 0, ErrUnsupported }
func (b *LinuxBackend) ExtendedFrameBounds(WindowID) (Bounds, error) { return Bounds{}, ErrUnsupported }
func (b *LinuxBackend) WindowBounds(WindowID) (Bounds, error)        { return Bounds{}, ErrUnsupported }
