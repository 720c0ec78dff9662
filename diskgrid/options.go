package diskgrid

import "runtime"

// Option configures New.
type Option func(*config)

type config struct {
	workers int
}

func defaultConfig() config {
	return config{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets how many goroutines hash rows concurrently.
// Values below 1 make New fail with ErrWorkers.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}
