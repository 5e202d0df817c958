package ports

import "time"

// Ticker is a cancelable repeating tick source driving the focus timer
// countdown. Stop must be safe to call more than once; after Stop no
// further ticks are delivered.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a Ticker with the given interval. The focus
// service creates one per run and is responsible for stopping it on
// every exit path.
type TickerFactory func(interval time.Duration) Ticker

// systemTicker wraps time.Ticker.
type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time { return s.t.C }

func (s *systemTicker) Stop() { s.t.Stop() }

// NewSystemTicker returns a Ticker backed by time.Ticker.
func NewSystemTicker(interval time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(interval)}
}
