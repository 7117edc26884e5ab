package main

import (
	"fmt"
	"os"
	"time"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/render"
	"github.com/1broseidon/aura/internal/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotFrames int
	snapshotZen    bool
	snapshotScale  float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file.png>",
	Short: "Render the current overlay frame to a PNG",
	Long: `Runs the tracker and animator in real time for a number of frames, then
renders the resulting frame in software and writes it as a PNG. Useful for
checking colors, exclusions and zen mode without a compositor.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 60, "Frames to animate before capturing")
	snapshotCmd.Flags().BoolVar(&snapshotZen, "zen", false, "Capture with zen mode on")
	snapshotCmd.Flags().Float64Var(&snapshotScale, "scale", 1, "Display scale factor")
}

// pressOnce reports the key as down on its first query only, so the
// animator sees exactly one toggle edge.
type pressOnce struct {
	key  string
	done bool
}

func (p *pressOnce) IsKeyDown(key string) bool {
	if p.done || key != p.key {
		return false
	}
	p.done = true
	return true
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotFrames < 1 {
		return fmt.Errorf("--frames must be at least 1")
	}
	scale, err := scaleFlag(snapshotScale)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.cfg
	surface := render.NewRaster(s.display.WorkArea.Bounds().Logical(snapshotScale))
	keys := &pressOnce{key: cfg.ZenToggleKey, done: !snapshotZen}
	animator := animation.New(cfg, s.tracker, s.backend, keys, scale, s.rules, s.logger.Named("animator"))

	sched := scheduler.New(s.logger.Named("scheduler"))
	sched.Every("tracker", cfg.PollInterval(), s.tracker.Poll)
	sched.Every("animator", cfg.FrameInterval(), animator.Tick)

	for sched.Runs("animator") < uint64(snapshotFrames) {
		sched.Step(time.Now())
		time.Sleep(time.Until(sched.NextDue()))
	}

	vs := animator.State()
	render.New(cfg).Render(surface, vs)

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := surface.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	st := s.tracker.State()
	s.logger.Info("snapshot written",
		zap.String("file", args[0]),
		zap.Int("pid", st.PID),
		zap.String("process", st.ProcessName),
		zap.Bool("has_target", vs.HasTarget),
		zap.Float64("display_cpu", vs.DisplayCPU),
		zap.Float64("display_ram", vs.DisplayRAM))
	return nil
}

// scaleFlag validates a --scale value.
func scaleFlag(v float64) (platform.FixedScale, error) {
	if !(v > 0) {
		return 0, fmt.Errorf("--scale must be positive, got %v", v)
	}
	return platform.FixedScale(v), nil
}
