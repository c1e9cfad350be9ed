package interact

import (
	"sync"
	"time"
)

// DesktopBreakpoint is the viewport width in pixels where the navigation
// switches from the mobile to the desktop layout.
const DesktopBreakpoint = 900

// frameInterval throttles scroll evaluation to animation-frame granularity.
const frameInterval = 16 * time.Millisecond

// StickyNav decides fixed-vs-relative positioning for a navigation element.
// The element's natural page offset is computed lazily through the measure
// callback, cached, and invalidated when the viewport crosses the
// mobile/desktop breakpoint or resizes.
type StickyNav struct {
	mu sync.Mutex

	measure     func() int
	fixedOffset int

	offset      int
	offsetValid bool
	desktop     bool
	fixed       bool
	lastEval    time.Time
}

// NewStickyNav creates a controller. measure returns the element's natural
// offset from the top of the page; fixedOffset is subtracted from it when
// comparing against the scroll position.
func NewStickyNav(measure func() int, fixedOffset int) *StickyNav {
	return &StickyNav{measure: measure, fixedOffset: fixedOffset}
}

// SetViewportWidth records the viewport width, invalidating the cached
// offset when the breakpoint class changes.
func (s *StickyNav) SetViewportWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	desktop := width >= DesktopBreakpoint
	if desktop != s.desktop {
		s.desktop = desktop
		s.offsetValid = false
	}
}

// Invalidate drops the cached offset, forcing a re-measure on the next
// evaluation. Called on resize.
func (s *StickyNav) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsetValid = false
}

// Evaluate compares the scroll position against the element's threshold and
// returns whether the element should be fixed. Calls arriving faster than
// frame granularity return the previous decision.
func (s *StickyNav) Evaluate(scrollY int, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastEval.IsZero() && now.Sub(s.lastEval) < frameInterval {
		return s.fixed
	}
	s.lastEval = now

	if !s.offsetValid {
		if s.measure == nil {
			return s.fixed
		}
		s.offset = s.measure()
		s.offsetValid = true
	}

	s.fixed = scrollY >= s.offset-s.fixedOffset
	return s.fixed
}

// Fixed reports the last decision without re-evaluating.
func (s *StickyNav) Fixed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fixed
}
