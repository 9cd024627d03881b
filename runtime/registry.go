package runtime

import (
	"slices"
	"sync"
)

// Registry tracks which participants currently have a conversation open.
// A participant may hold the same conversation open from several devices,
// so views are reference counted.
type Registry struct {
	mu    sync.RWMutex
	views map[string]map[string]int // conversation -> participant -> open views
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[string]map[string]int)}
}

func (r *Registry) Open(participantID, conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[conversationID]; !ok {
		r.views[conversationID] = make(map[string]int)
	}
	r.views[conversationID][participantID]++
}

// Close drops one view and cleans up empty entries.
func (r *Registry) Close(participantID, conversationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	viewers, ok := r.views[conversationID]
	if !ok {
		return
	}
	if viewers[participantID] <= 1 {
		delete(viewers, participantID)
	} else {
		viewers[participantID]--
	}
	if len(viewers) == 0 {
		delete(r.views, conversationID)
	}
}

func (r *Registry) IsViewing(participantID, conversationID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.views[conversationID][participantID] > 0
}

// Viewers returns the participants with the conversation open, sorted.
func (r *Registry) Viewers(conversationID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.views[conversationID]))
	for id := range r.views[conversationID] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
