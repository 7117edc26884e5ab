package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/exclude"
	"github.com/1broseidon/aura/internal/hotkeys"
	"github.com/1broseidon/aura/internal/overlay"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/render"
	"github.com/1broseidon/aura/internal/runtimepath"
	"github.com/1broseidon/aura/internal/scheduler"
	"github.com/1broseidon/aura/internal/tracking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles the components shared by run, watch and snapshot.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	backend *platform.LinuxBackend
	rules   *exclude.Rules
	tracker *tracking.Tracker
	display platform.Display
}

func openSession() (*session, error) {
	res, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	if res.File != "" {
		logger.Info("configuration loaded", zap.String("file", res.File))
	} else {
		logger.Info("no configuration file, using defaults")
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	if !backend.TracksFocus() {
		logger.Warn("window manager does not publish _NET_ACTIVE_WINDOW; no window will be outlined")
	}

	display, err := backend.PrimaryDisplay()
	if err != nil {
		backend.Disconnect()
		return nil, fmt.Errorf("failed to read work area: %w", err)
	}

	rules := exclude.New(cfg)
	tracker := tracking.New(backend, platform.NewProcessSampler(), rules, logger.Named("tracker"))
	tracker.IgnorePID(os.Getpid())

	return &session{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		rules:   rules,
		tracker: tracker,
		display: display,
	}, nil
}

func (s *session) Close() {
	s.backend.Disconnect()
	_ = s.logger.Sync()
}

func runOverlay(cmd *cobra.Command, args []string) error {
	pidPath, err := runtimepath.PIDFilePath()
	if err != nil {
		return err
	}
	release, err := runtimepath.AcquirePIDFile(pidPath)
	if err != nil {
		return err
	}
	defer release()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := s.cfg
	sched := scheduler.New(s.logger.Named("scheduler"))
	renderer := render.New(cfg)
	ov := overlay.New(cfg, sched, renderer, s.display, s.logger.Named("overlay"))

	keys := hotkeys.NewPoller(s.backend, s.logger.Named("hotkeys"))
	animator := animation.New(cfg, s.tracker, s.backend, keys, ov, s.rules, s.logger.Named("animator"))
	animator.OnFrame(ov.Present)

	sched.Every("tracker", cfg.PollInterval(), s.tracker.Poll)
	sched.Every("animator", cfg.FrameInterval(), animator.Tick)

	s.logger.Info("aura started",
		zap.Duration("poll_interval", cfg.PollInterval()),
		zap.Int("fps", cfg.FPS),
		zap.String("zen_toggle_key", cfg.ZenToggleKey))

	if err := ov.Run(ctx); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	s.logger.Info("aura stopped")
	return nil
}
