package interact

import "sync"

// MegaMenu tracks which top-level navigation panel is expanded. Hovering a
// trigger opens its panel and closes any other; leaving or activating the
// same trigger again closes it. At most one panel is open.
type MegaMenu struct {
	mu     sync.Mutex
	active string
}

// NewMegaMenu returns a menu with every panel closed.
func NewMegaMenu() *MegaMenu {
	return &MegaMenu{}
}

// Enter opens the panel for the given trigger, closing any other panel.
func (m *MegaMenu) Enter(id string) {
	if id == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = id
}

// Leave closes the panel if the given trigger owns it.
func (m *MegaMenu) Leave(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == id {
		m.active = ""
	}
}

// Toggle opens the panel, or closes it when it is already open. Used for
// click/keyboard activation where hover semantics do not apply.
func (m *MegaMenu) Toggle(id string) bool {
	if id == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == id {
		m.active = ""
		return false
	}
	m.active = id
	return true
}

// CloseAll closes whichever panel is open.
func (m *MegaMenu) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = ""
}

// Active returns the open panel's trigger id, empty when closed.
func (m *MegaMenu) Active() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
