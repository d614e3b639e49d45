// Package maintenance removes generated proposal files once they age out.
package maintenance

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper deletes files under the output directory older than the
// retention window.
type Sweeper struct {
	dir       string
	retention time.Duration
	log       *zap.Logger
	cron      *cron.Cron
}

// NewSweeper creates a sweeper for dir. Retention must be positive; callers
// skip construction when the sweep is disabled.
func NewSweeper(dir string, retention time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{dir: dir, retention: retention, log: log, cron: cron.New()}
}

// Start schedules an hourly sweep. Stop releases the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("@hourly", func() { s.Sweep() }); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Sweep removes expired generated files and returns how many were deleted.
// Only proposal artifacts (md/pdf) are considered; anything else in the
// directory is left alone.
func (s *Sweeper) Sweep() int {
	cutoff := time.Now().Add(-s.retention)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn("output sweep failed", zap.String("dir", s.dir), zap.Error(err))
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "proposal-") || (!strings.HasSuffix(name, ".md") && !strings.HasSuffix(name, ".pdf")) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			s.log.Warn("could not remove expired file", zap.String("file", name), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.log.Info("output sweep complete", zap.Int("removed", removed))
	}
	return removed
}
