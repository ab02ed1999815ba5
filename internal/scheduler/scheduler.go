package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mnallaretnam/weather-dashboard/internal/session"
)

// Sweeper periodically prunes idle sessions from the session store.
type Sweeper struct {
	scheduler *gocron.Scheduler
	store     *session.Store
	interval  time.Duration
}

// New creates a Sweeper.
func New(store *session.Store, interval time.Duration) *Sweeper {
	s := gocron.NewScheduler(time.UTC)
	return &Sweeper{
		scheduler: s,
		store:     store,
		interval:  interval,
	}
}

// Start schedules the sweep job and starts the underlying scheduler.
func (s *Sweeper) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		if dropped := s.store.Prune(); dropped > 0 {
			log.Printf("session sweep: dropped %d idle sessions, %d remain", dropped, s.store.Len())
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
