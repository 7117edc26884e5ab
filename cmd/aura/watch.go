package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/hotkeys"
	"github.com/1broseidon/aura/internal/scheduler"
	"github.com/spf13/cobra"
)

var watchScale float64

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print tracker and animation state without drawing",
	Long: `Runs the tracker and animator without opening the overlay and prints one
line per poll. The target rectangle is in logical pixels: physical pixels
divided by --scale.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Float64Var(&watchScale, "scale", 1, "Display scale factor")
}

func runWatch(cmd *cobra.Command, args []string) error {
	scale, err := scaleFlag(watchScale)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := s.cfg
	keys := hotkeys.NewPoller(s.backend, s.logger.Named("hotkeys"))
	animator := animation.New(cfg, s.tracker, s.backend, keys, scale, s.rules, s.logger.Named("animator"))

	out := cmd.OutOrStdout()
	sched := scheduler.New(s.logger.Named("scheduler"))
	sched.Every("tracker", cfg.PollInterval(), func() {
		s.tracker.Poll()
		fmt.Fprintln(out, describe(s.tracker.State().PID, s.tracker.State().ProcessName, animator.State()))
	})
	sched.Every("animator", cfg.FrameInterval(), animator.Tick)

	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func describe(pid int, name string, vs animation.VisualState) string {
	target := "none"
	if vs.HasTarget {
		target = fmt.Sprintf("%dx%d+%d+%d", vs.Target.Width, vs.Target.Height, vs.Target.X, vs.Target.Y)
	}
	return fmt.Sprintf("pid=%d process=%q target=%s cpu=%.1f%% ram=%.2f%% zen=%t",
		pid, name, target, vs.DisplayCPU, vs.DisplayRAM, vs.ZenMode)
}
