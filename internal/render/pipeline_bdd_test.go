package render_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/exclude"
	"github.com/1broseidon/aura/internal/palette"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/platform/platformtest"
	"github.com/1broseidon/aura/internal/render"
	"github.com/1broseidon/aura/internal/tracking"
)

var _ = Describe("Focus to frame pipeline", func() {
	var (
		cfg      *config.Config
		windows  *platformtest.Windows
		procs    *platformtest.Processes
		keys     platformtest.Keys
		tracker  *tracking.Tracker
		animator *animation.Animator
		renderer *render.Renderer
		surface  *render.Raster
	)

	screen := platform.Rect{Width: 640, Height: 480}

	frame := func() animation.VisualState {
		animator.Tick()
		surface.Clear()
		vs := animator.State()
		renderer.Render(surface, vs)
		return vs
	}

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		windows = platformtest.NewWindows()
		procs = platformtest.NewProcesses()
		keys = platformtest.Keys{}
		rules := exclude.New(cfg)

		tracker = tracking.New(windows, procs, rules, nil)
		animator = animation.New(cfg, tracker, windows, keys, platform.FixedScale(1), rules, nil)
		renderer = render.New(cfg)
		surface = render.NewRaster(screen)

		windows.Add(1, &platformtest.Window{Class: "Navigator", PID: 100, Frame: platformtest.Rect(100, 100, 300, 200)})
		procs.Add(100, &platformtest.Process{Name: "firefox", CPU: 20, RAM: 5})
	})

	Context("when an ordinary window has focus", func() {
		BeforeEach(func() {
			windows.Focus(1)
			tracker.Poll()
		})

		It("should outline the window", func() {
			vs := frame()
			Expect(vs.HasTarget).To(BeTrue())
			Expect(vs.Target).To(Equal(platform.Rect{X: 100, Y: 100, Width: 300, Height: 200}))
			Expect(surface.Image().RGBAAt(250, 100).A).To(BeNumerically(">", 0))
		})

		It("should converge the color toward the RAM level", func() {
			for i := 0; i < 400; i++ {
				frame()
			}
			ram := animator.State().DisplayRAM
			Expect(ram).To(BeNumerically("~", 5, 1e-9))

			// 5% of the default 10% cap sits on the yellow stop.
			c := renderer.BaseColor(ram)
			Expect(c.R).To(BeNumerically(">=", palette.Yellow.R-1))
			Expect(c.G).To(Equal(palette.Yellow.G))
			Expect(c.B).To(BeNumerically("<=", 1))
		})
	})

	Context("when focus changes before the tracker polls again", func() {
		BeforeEach(func() {
			windows.Focus(1)
			tracker.Poll()
			Expect(frame().HasTarget).To(BeTrue())

			windows.Add(2, &platformtest.Window{Class: "Code", PID: 200, Frame: platformtest.Rect(0, 0, 600, 400)})
			procs.Add(200, &platformtest.Process{Name: "code"})
			windows.Focus(2)
		})

		It("should suppress the border until the tracker catches up", func() {
			Expect(frame().HasTarget).To(BeFalse())
			Expect(surface.Image().RGBAAt(250, 100).A).To(BeZero())

			tracker.Poll()
			vs := frame()
			Expect(vs.HasTarget).To(BeTrue())
			Expect(vs.Target.Width).To(Equal(600))
		})
	})

	Context("when the file manager's desktop host has focus", func() {
		BeforeEach(func() {
			windows.Add(3, &platformtest.Window{Class: "DesktopWindow", PID: 300, Frame: platformtest.Rect(0, 0, 640, 480)})
			procs.Add(300, &platformtest.Process{Name: "explorer.exe"})
			windows.Focus(3)
			tracker.Poll()
		})

		It("should treat it as system UI and draw nothing", func() {
			Expect(tracker.State().ProcessName).To(Equal(exclude.SystemUI))
			Expect(frame().HasTarget).To(BeFalse())
			Expect(surface.Image().RGBAAt(320, 0).A).To(BeZero())
		})
	})

	Context("when zen mode is toggled on", func() {
		BeforeEach(func() {
			windows.Focus(1)
			tracker.Poll()
			keys["F8"] = true
		})

		It("should dim everything except the target", func() {
			vs := frame()
			Expect(vs.ZenMode).To(BeTrue())

			img := surface.Image()
			Expect(img.RGBAAt(10, 10).A).To(Equal(uint8(cfg.ZenModeAlpha)))
			Expect(img.RGBAAt(630, 470).A).To(Equal(uint8(cfg.ZenModeAlpha)))

			for y := 120; y < 280; y += 7 {
				for x := 120; x < 380; x += 7 {
					Expect(img.RGBAAt(x, y)).To(Equal(color.RGBA{}), "pixel %d,%d", x, y)
				}
			}
		})

		It("should drop the mask when focus goes to a shell surface", func() {
			windows.Add(4, &platformtest.Window{Class: "Shell_TrayWnd", PID: 400, Frame: platformtest.Rect(0, 440, 640, 40)})
			windows.Focus(4)
			tracker.Poll()

			vs := frame()
			Expect(vs.ZenMode).To(BeTrue())
			Expect(vs.HasTarget).To(BeFalse())
			Expect(surface.Image().RGBAAt(10, 10).A).To(BeZero())
		})
	})
})
