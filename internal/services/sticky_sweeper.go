package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StickySweeper periodically prunes expired sticky notes.
type StickySweeper struct {
	stickies *StickyNoteService
	interval time.Duration
	logger   zerolog.Logger
	stop     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewStickySweeper(stickies *StickyNoteService, interval time.Duration) *StickySweeper {
	return &StickySweeper{
		stickies: stickies,
		interval: interval,
		logger:   log.With().Str("component", "sweeper").Logger(),
		stop:     make(chan struct{}),
	}
}

func (s *StickySweeper) Start() {
	s.wg.Add(1)
	go s.loop()
}

func (s *StickySweeper) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("sticky note sweeper started")

	for {
		select {
		case <-ticker.C:
			s.SweepOnce(context.Background())
		case <-s.stop:
			s.logger.Info().Msg("sticky note sweeper stopped")
			return
		}
	}
}

func (s *StickySweeper) SweepOnce(ctx context.Context) int64 {
	removed, err := s.stickies.Sweep(ctx, s.stickies.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sweep expired sticky notes")
		return 0
	}
	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("swept expired sticky notes")
	}
	return removed
}

func (s *StickySweeper) Shutdown(ctx context.Context) {
	s.once.Do(func() { close(s.stop) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn().Msg("sticky note sweeper shutdown timed out")
	}
}
