package interact

import "sync"

// Modal is the video lightbox state: Closed or Open with an embedded media
// source. Closing always clears the source so nothing keeps playing behind
// the overlay.
type Modal struct {
	mu     sync.Mutex
	open   bool
	source string
}

// NewModal returns a closed modal.
func NewModal() *Modal {
	return &Modal{}
}

// Open shows the modal with the given media source. Opening with an empty
// source is ignored.
func (m *Modal) Open(source string) bool {
	if source == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.source = source
	return true
}

// Close hides the modal and clears the embedded source. Reports whether the
// modal was open.
func (m *Modal) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return false
	}
	m.open = false
	m.source = ""
	return true
}

// HandleKey closes the modal on Escape while open.
func (m *Modal) HandleKey(key string) bool {
	if key != "Escape" {
		return false
	}
	return m.Close()
}

// IsOpen reports the current state.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Source returns the embedded media source, empty while closed.
func (m *Modal) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}
