package term

import (
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Scheduler delivers timer callbacks through the screen's event queue, so
// they run on the goroutine that polls events like every other input.
type Scheduler struct {
	screen tcell.Screen
	log    *slog.Logger
}

// NewScheduler creates a scheduler posting to screen. A nil log discards.
func NewScheduler(screen tcell.Screen, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{screen: screen, log: log}
}

// After posts fn as an interrupt event once d has elapsed. A tick the
// screen refuses, full queue or finished screen, is dropped.
func (s *Scheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		if err := s.screen.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
			s.log.Debug("scheduled tick dropped", "delay", d, "error", err)
		}
	})
}
