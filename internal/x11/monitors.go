package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	X       int
	Y       int
	Width   int
	Height  int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if primary != 0 && out == primary {
				isPrimary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    outputName,
			Primary: isPrimary,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// GetPrimaryWorkArea returns the primary monitor and the same monitor clipped
// to the EWMH work area of the current desktop, so panels and docks are
// excluded.
func (c *Connection) GetPrimaryWorkArea() (mon, area Monitor, err error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return Monitor{}, Monitor{}, err
	}
	if len(monitors) == 0 {
		return Monitor{}, Monitor{}, fmt.Errorf("no monitors found")
	}

	mon = monitors[0]
	for _, m := range monitors {
		if m.Primary {
			mon = m
			break
		}
	}

	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return mon, mon, nil
	}

	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}
	return mon, clipToWorkArea(mon, workArea[desktopIndex]), nil
}

func clipToWorkArea(mon Monitor, wa ewmh.Workarea) Monitor {
	x1 := max(mon.X, int(wa.X))
	y1 := max(mon.Y, int(wa.Y))
	x2 := min(mon.X+mon.Width, int(wa.X)+int(wa.Width))
	y2 := min(mon.Y+mon.Height, int(wa.Y)+int(wa.Height))

	// A work area that misses this monitor entirely says nothing about it.
	if x2 <= x1 || y2 <= y1 {
		return mon
	}

	mon.X = x1
	mon.Y = y1
	mon.Width = x2 - x1
	mon.Height = y2 - y1
	return mon
}
