package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers during construction; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Metric is one formatted entry of a snapshot
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by kind and sorted by key within a kind
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Metric{k, v.Load()})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Metric{k, fmt.Sprintf("%.1f", v.Get())})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Metric{k, strconv.FormatBool(v.Load())})
	})
	return out
}
