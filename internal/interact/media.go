package interact

import "sync"

// MediaToggle is the per-card play/pause state: Idle shows the poster image,
// Playing shows the active media. Each card owns its own toggle; nothing
// stops two cards from playing at once.
type MediaToggle struct {
	mu      sync.Mutex
	playing bool
}

// NewMediaToggle returns a toggle in the Idle state.
func NewMediaToggle() *MediaToggle {
	return &MediaToggle{}
}

// Play transitions Idle to Playing. Reports whether the state changed.
func (m *MediaToggle) Play() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playing {
		return false
	}
	m.playing = true
	return true
}

// Pause transitions Playing back to Idle. Reports whether the state changed.
func (m *MediaToggle) Pause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.playing {
		return false
	}
	m.playing = false
	return true
}

// Ended handles the natural media-end event, which behaves like Pause.
func (m *MediaToggle) Ended() bool {
	return m.Pause()
}

// Playing reports the current state.
func (m *MediaToggle) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}
