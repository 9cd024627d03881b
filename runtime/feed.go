package runtime

import "sync"

// Feed tells listeners that something under a topic changed. Signals carry no
// payload and coalesce: a slow listener sees one pending signal, never a queue.
type Feed struct {
	mu        sync.RWMutex
	next      uint64
	listeners map[string]map[uint64]chan struct{}
}

func NewFeed() *Feed {
	return &Feed{listeners: make(map[string]map[uint64]chan struct{})}
}

// Listen registers synchronously, so any Notify that happens after Listen
// returns is observed. The returned func unregisters.
func (f *Feed) Listen(topic string) (<-chan struct{}, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	id := f.next
	ch := make(chan struct{}, 1)
	if _, ok := f.listeners[topic]; !ok {
		f.listeners[topic] = make(map[uint64]chan struct{})
	}
	f.listeners[topic][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { f.remove(topic, id) })
	}
}

func (f *Feed) remove(topic string, id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ls, ok := f.listeners[topic]; ok {
		delete(ls, id)
		if len(ls) == 0 {
			delete(f.listeners, topic)
		}
	}
}

// Notify never blocks.
func (f *Feed) Notify(topics ...string) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, topic := range topics {
		for _, ch := range f.listeners[topic] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

func (f *Feed) ListenerCount(topic string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.listeners[topic])
}
