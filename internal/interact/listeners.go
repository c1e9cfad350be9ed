package interact

import "sync"

// ListenerRegistry scopes shared global listeners (document-level keydown,
// scroll, resize) to the controller instance that registered them. Binding
// the same key twice replaces the old teardown after running it, so
// re-decorating a page never stacks duplicate handlers.
type ListenerRegistry struct {
	mu        sync.Mutex
	teardowns map[string]func()
}

// NewListenerRegistry creates an empty registry.
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{teardowns: make(map[string]func())}
}

// Bind registers a teardown under a key. A previous binding for the same key
// is torn down first.
func (r *ListenerRegistry) Bind(key string, teardown func()) {
	if key == "" || teardown == nil {
		return
	}
	r.mu.Lock()
	previous := r.teardowns[key]
	r.teardowns[key] = teardown
	r.mu.Unlock()

	if previous != nil {
		previous()
	}
}

// Unbind runs and removes the teardown for one key.
func (r *ListenerRegistry) Unbind(key string) {
	r.mu.Lock()
	teardown := r.teardowns[key]
	delete(r.teardowns, key)
	r.mu.Unlock()

	if teardown != nil {
		teardown()
	}
}

// TeardownAll runs every registered teardown and empties the registry.
func (r *ListenerRegistry) TeardownAll() {
	r.mu.Lock()
	teardowns := r.teardowns
	r.teardowns = make(map[string]func())
	r.mu.Unlock()

	for _, teardown := range teardowns {
		if teardown != nil {
			teardown()
		}
	}
}

// Len returns the number of live bindings.
func (r *ListenerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teardowns)
}
