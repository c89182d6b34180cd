package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Metric keys written by the engine packages
const (
	MetricTicks    = "engine.ticks"
	MetricAdvances = "engine.advances"
	MetricDropped  = "engine.dropped"
	MetricState    = "engine.state"
	MetricRedraws  = "render.redraws"
	MetricPixels   = "render.pixels"
	MetricWall     = "physics.wall"
	MetricPaddle   = "physics.paddle"
	MetricScore    = "physics.score"
	MetricAwake    = "cpu.awake"
)

// Registry holds the counters, flags and labels written by the engine packages
// and dumped once the game ends
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Labels *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Labels: NewMetricMap[Label](),
	}
}

// Dump writes every metric as "key=value" lines in sorted order per type
func (r *Registry) Dump(w io.Writer) error {
	var err error
	write := func(key string, val any) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%s=%v\n", key, val)
		}
	}
	r.Ints.Range(func(key string, v *atomic.Int64) { write(key, v.Load()) })
	r.Bools.Range(func(key string, v *atomic.Bool) { write(key, v.Load()) })
	r.Labels.Range(func(key string, v *Label) { write(key, v.Load()) })
	return err
}
