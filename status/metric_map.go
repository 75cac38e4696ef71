package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metrics of one kind
// Components fetch a pointer once at construction and update it without locking
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int32
}

// NewMetricMap returns an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key; the first caller creates it
func (m *MetricMap[T]) Get(key string) *T {
	if ptr, ok := m.items.Load(key); ok {
		return ptr.(*T)
	}
	ptr, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return ptr.(*T)
}

// Has reports whether key was ever fetched
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range visits metrics ordered by key
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		ptr, _ := m.items.Load(k)
		fn(k, ptr.(*T))
	}
}

func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
