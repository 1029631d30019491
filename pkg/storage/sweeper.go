package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// SweeperConfig controls cleanup of stale local uploads.
type SweeperConfig struct {
	// Schedule is a cron expression. Empty disables the sweeper.
	Schedule string `env:"UPLOAD_SWEEP_SCHEDULE" envDefault:"@every 1h" yaml:"schedule"`
	// MaxAge is how old an upload must be before it is removed.
	MaxAge time.Duration `env:"UPLOAD_MAX_AGE" envDefault:"24h" yaml:"max_age"`
}

// Sweeper periodically removes files older than MaxAge from a directory.
// Uploads are normally deleted when their campaign ends; the sweeper catches
// files left behind by a crash.
type Sweeper struct {
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
	dir    string
	maxAge time.Duration
}

// NewSweeper creates a sweeper for dir. It does nothing until Start is called.
func NewSweeper(dir string, cfg SweeperConfig, logger *slog.Logger) (*Sweeper, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: sweeper directory is required", ErrInvalidConfig)
	}
	if cfg.MaxAge <= 0 {
		return nil, fmt.Errorf("%w: sweeper max age must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Sweeper{
		cron:   cron.New(),
		logger: logger,
		now:    time.Now,
		dir:    dir,
		maxAge: cfg.MaxAge,
	}

	if cfg.Schedule != "" {
		if _, err := s.cron.AddFunc(cfg.Schedule, s.run); err != nil {
			return nil, fmt.Errorf("%w: sweep schedule: %v", ErrInvalidConfig, err)
		}
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop stops the schedule and waits for a running sweep to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep removes every regular file under the directory older than MaxAge and
// returns how many were removed.
func (s *Sweeper) Sweep() (int, error) {
	cutoff := s.now().Add(-s.maxAge)
	removed := 0

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

func (s *Sweeper) run() {
	removed, err := s.Sweep()
	if err != nil {
		s.logger.Error("upload sweep failed", slog.String("dir", s.dir), slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("stale uploads removed", slog.String("dir", s.dir), slog.Int("count", removed))
	}
}
