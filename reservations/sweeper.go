package reservations

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper expires overdue slot holds in the background so a crashed
// browser never wedges a dinner slot.
type Sweeper struct {
	cron *cron.Cron
}

func NewSweeper() *Sweeper {
	return &Sweeper{cron: cron.New()}
}

func (s *Sweeper) Start() {
	s.cron.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if n := ReleaseExpired(ctx); n > 0 {
			log.Printf("released %d expired slot locks", n)
		}
	})
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
