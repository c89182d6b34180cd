package status

import (
	"slices"
	"sync"
)

// MetricMap hands out one *T per key
// Components look their metrics up once at construction and keep the
// pointer, so the map lock is never taken on the tick or redraw path
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	slices.Sort(keys)

	for _, k := range keys {
		fn(k, m.Get(k))
	}
}
