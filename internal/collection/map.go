package collection

import "sync"

// OrderedMap is a lock guarded map that remembers insertion order.
type OrderedMap[K comparable, V any] struct {
	keys []K
	m    map[K]V
	mux  sync.RWMutex
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

// Put stores v under k; a new key is appended, an existing one keeps its position.
func (m *OrderedMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.m[k] = v
}

func (m *OrderedMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.keys)
}

// Values returns values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	m.mux.RLock()
	defer m.mux.RUnlock()
	result := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		result = append(result, m.m[k])
	}
	return result
}

// Range visits entries in insertion order until f returns false.
func (m *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	m.mux.RLock()
	keys := append([]K(nil), m.keys...)
	m.mux.RUnlock()
	for _, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			continue
		}
		if !f(k, v) {
			return
		}
	}
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: make(map[K]V)}
}
