package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/tileroom/status"
)

// Loop drives a Game on a fixed tick with drift correction
// Runs on the caller's goroutine; Stop may be called from any goroutine
type Loop struct {
	game    *Game
	present func() // Called after every step, typically renders a frame

	tickInterval     time.Duration
	nextTickDeadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	statTicks *atomic.Int64
	statFPS   *status.AtomicFloat
	statLate  *atomic.Int64
}

// NewLoop creates a loop stepping game every tickInterval
func NewLoop(game *Game, tickInterval time.Duration, present func(), reg *status.Registry) *Loop {
	l := &Loop{
		game:         game,
		present:      present,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
	if reg != nil {
		l.statTicks = reg.Ints.Get("engine.ticks")
		l.statFPS = reg.Floats.Get("engine.fps")
		l.statLate = reg.Ints.Get("engine.late")
	}
	return l
}

// Run blocks until Stop is called or the game reports Done
func (l *Loop) Run() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	defer l.running.Store(false)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	start := time.Now()
	l.nextTickDeadline = start
	var ticks int64

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		now := time.Now()
		if !now.Before(l.nextTickDeadline) {
			l.game.Step()
			if l.present != nil {
				l.present()
			}
			if l.game.Done() {
				return
			}
			ticks++

			l.nextTickDeadline = l.nextTickDeadline.Add(l.tickInterval)
			// Resync instead of bursting when far behind
			if now.Sub(l.nextTickDeadline) > l.tickInterval*2 {
				l.nextTickDeadline = now.Add(l.tickInterval)
				if l.statLate != nil {
					l.statLate.Add(1)
				}
			}

			if l.statTicks != nil {
				l.statTicks.Store(ticks)
				if elapsed := time.Since(start).Seconds(); elapsed > 0 {
					l.statFPS.Set(float64(ticks) / elapsed)
				}
			}
			continue
		}

		timer.Reset(l.nextTickDeadline.Sub(now))
		select {
		case <-timer.C:
		case <-l.stopChan:
			return
		}
	}
}

// Stop ends Run; safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Running reports whether Run is active
func (l *Loop) Running() bool {
	return l.running.Load()
}
