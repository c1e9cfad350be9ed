// Package interact models the interactive state machines behind decorated
// blocks: carousels, media toggles, modals and sticky navigation. The
// decorators encode each controller's configuration into data attributes;
// the controllers here are the reference behavior the client runtime mirrors
// and what server-driven previews step through.
package interact

import (
	"sync"
	"time"
)

const (
	// SwipeThreshold is the horizontal distance in pixels a touch must
	// travel before it counts as a slide gesture.
	SwipeThreshold = 50

	// DefaultAutoplayDelay is the slide advance interval when autoplay is
	// enabled without an authored delay.
	DefaultAutoplayDelay = 6 * time.Second
)

// Carousel tracks the active slide over a fixed slide count. Next and Prev
// wrap modulo the slide count; playback is an orthogonal boolean driven by a
// timer. All methods are safe for concurrent use and tolerate a zero slide
// count by doing nothing.
type Carousel struct {
	mu      sync.Mutex
	count   int
	index   int
	playing bool
	closed  bool
	delay   time.Duration
	timer   *time.Timer

	// onAdvance, when set, observes every index change.
	onAdvance func(index int)
}

// NewCarousel creates a carousel over count slides starting at slide 0.
func NewCarousel(count int) *Carousel {
	return &Carousel{count: count, delay: DefaultAutoplayDelay}
}

// SetDelay overrides the autoplay interval. Non-positive delays keep the
// current value.
func (c *Carousel) SetDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

// OnAdvance registers an observer for index changes.
func (c *Carousel) OnAdvance(fn func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAdvance = fn
}

// Len returns the slide count.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Index returns the active slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next advances one slide, wrapping past the last back to 0.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step(1)
}

// Prev steps back one slide, wrapping past 0 to the last.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step(-1)
}

// Jump moves directly to the given slide. Out-of-range targets are ignored.
func (c *Carousel) Jump(index int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.count {
		return c.index
	}
	c.index = index
	c.notify()
	return c.index
}

// Swipe interprets a horizontal touch delta: past the threshold leftwards
// advances, rightwards steps back. Smaller movements are ignored.
func (c *Carousel) Swipe(deltaX int) int {
	switch {
	case deltaX <= -SwipeThreshold:
		return c.Next()
	case deltaX >= SwipeThreshold:
		return c.Prev()
	default:
		return c.Index()
	}
}

// HandleKey interprets the global arrow-key bindings.
func (c *Carousel) HandleKey(key string) int {
	switch key {
	case "ArrowRight":
		return c.Next()
	case "ArrowLeft":
		return c.Prev()
	default:
		return c.Index()
	}
}

// Play starts autoplay. Starting an already playing carousel is a no-op.
func (c *Carousel) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing || c.closed || c.count < 2 {
		return
	}
	c.playing = true
	c.schedule()
}

// Pause stops autoplay and clears the pending advance.
func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
	c.playing = false
}

// Playing reports whether autoplay is active.
func (c *Carousel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Close tears the carousel down, releasing its timer. A closed carousel
// ignores all further playback requests.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimer()
	c.playing = false
	c.closed = true
}

func (c *Carousel) step(delta int) int {
	if c.count <= 0 {
		return 0
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
	c.notify()
	return c.index
}

func (c *Carousel) notify() {
	if c.onAdvance != nil {
		c.onAdvance(c.index)
	}
}

func (c *Carousel) schedule() {
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.playing || c.closed {
			return
		}
		c.step(1)
		c.schedule()
	})
}

func (c *Carousel) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
