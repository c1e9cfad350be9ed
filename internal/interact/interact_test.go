package interact

import (
	"testing"
	"time"
)

func TestCarousel_NextWrapsAfterN(t *testing.T) {
	const n = 5
	c := NewCarousel(n)
	for i := 0; i < n; i++ {
		c.Next()
	}
	if got := c.Index(); got != 0 {
		t.Fatalf("expected %d nexts to wrap back to slide 0, got %d", n, got)
	}
}

func TestCarousel_PrevWrapsToLast(t *testing.T) {
	c := NewCarousel(3)
	if got := c.Prev(); got != 2 {
		t.Fatalf("expected prev from 0 to wrap to 2, got %d", got)
	}
}

func TestCarousel_JumpIgnoresOutOfRange(t *testing.T) {
	c := NewCarousel(3)
	c.Jump(1)
	if got := c.Jump(7); got != 1 {
		t.Fatalf("out-of-range jump must keep the index, got %d", got)
	}
	if got := c.Jump(-1); got != 1 {
		t.Fatalf("negative jump must keep the index, got %d", got)
	}
}

func TestCarousel_SwipeThreshold(t *testing.T) {
	c := NewCarousel(4)
	if got := c.Swipe(-SwipeThreshold); got != 1 {
		t.Fatalf("left swipe past threshold should advance, got %d", got)
	}
	if got := c.Swipe(SwipeThreshold - 1); got != 1 {
		t.Fatalf("below-threshold swipe must be ignored, got %d", got)
	}
	if got := c.Swipe(SwipeThreshold); got != 0 {
		t.Fatalf("right swipe past threshold should step back, got %d", got)
	}
}

func TestCarousel_Keys(t *testing.T) {
	c := NewCarousel(2)
	if got := c.HandleKey("ArrowRight"); got != 1 {
		t.Fatalf("ArrowRight should advance, got %d", got)
	}
	if got := c.HandleKey("ArrowLeft"); got != 0 {
		t.Fatalf("ArrowLeft should step back, got %d", got)
	}
	if got := c.HandleKey("Enter"); got != 0 {
		t.Fatalf("unrelated keys must be ignored, got %d", got)
	}
}

func TestCarousel_AutoplayAdvancesAndPauses(t *testing.T) {
	c := NewCarousel(3)
	c.SetDelay(10 * time.Millisecond)

	advanced := make(chan int, 8)
	c.OnAdvance(func(i int) { advanced <- i })
	defer c.Close()

	c.Play()
	select {
	case i := <-advanced:
		if i != 1 {
			t.Fatalf("first autoplay advance should land on 1, got %d", i)
		}
	case <-time.After(time.Second):
		t.Fatalf("autoplay never advanced")
	}

	c.Pause()
	if c.Playing() {
		t.Fatalf("carousel should report paused")
	}
}

func TestCarousel_ZeroSlidesIsInert(t *testing.T) {
	c := NewCarousel(0)
	if got := c.Next(); got != 0 {
		t.Fatalf("empty carousel must stay at 0, got %d", got)
	}
	c.Play()
	if c.Playing() {
		t.Fatalf("empty carousel must not start autoplay")
	}
}

func TestMediaToggle_Transitions(t *testing.T) {
	m := NewMediaToggle()
	if !m.Play() || !m.Playing() {
		t.Fatalf("play from idle should transition")
	}
	if m.Play() {
		t.Fatalf("play while playing should be a no-op")
	}
	if !m.Ended() || m.Playing() {
		t.Fatalf("media end should return to idle")
	}
	if m.Pause() {
		t.Fatalf("pause while idle should be a no-op")
	}
}

func TestModal_OpenCloseClearsSource(t *testing.T) {
	m := NewModal()
	if m.Open("") {
		t.Fatalf("opening without a source must be refused")
	}
	if !m.Open("https://media.example/clip.mp4") || !m.IsOpen() {
		t.Fatalf("modal should open with a source")
	}
	if m.HandleKey("Tab") {
		t.Fatalf("non-Escape keys must not close the modal")
	}
	if !m.HandleKey("Escape") {
		t.Fatalf("Escape should close the open modal")
	}
	if m.IsOpen() || m.Source() != "" {
		t.Fatalf("closing must clear the embedded source")
	}
}

func TestStickyNav_ThresholdAndCaching(t *testing.T) {
	measured := 0
	nav := NewStickyNav(func() int {
		measured++
		return 200
	}, 40)

	now := time.Now()
	if nav.Evaluate(100, now) {
		t.Fatalf("scroll above threshold must stay relative")
	}
	if !nav.Evaluate(160, now.Add(frameInterval)) {
		t.Fatalf("scroll past offset-fixedOffset must fix the nav")
	}
	if measured != 1 {
		t.Fatalf("offset must be measured once and cached, measured %d times", measured)
	}

	nav.SetViewportWidth(DesktopBreakpoint + 100)
	nav.Evaluate(160, now.Add(2*frameInterval))
	if measured != 2 {
		t.Fatalf("breakpoint change must invalidate the cached offset")
	}
}

func TestStickyNav_FrameThrottle(t *testing.T) {
	nav := NewStickyNav(func() int { return 100 }, 0)
	now := time.Now()
	first := nav.Evaluate(500, now)
	second := nav.Evaluate(0, now.Add(time.Millisecond))
	if first != second {
		t.Fatalf("evaluations inside one frame must return the cached decision")
	}
}

func TestMegaMenu_SinglePanel(t *testing.T) {
	m := NewMegaMenu()
	m.Enter("tv")
	m.Enter("audio")
	if got := m.Active(); got != "audio" {
		t.Fatalf("entering a second trigger must switch panels, got %q", got)
	}
	m.Leave("tv")
	if m.Active() != "audio" {
		t.Fatalf("leaving a non-owning trigger must not close the panel")
	}
	if m.Toggle("audio") {
		t.Fatalf("toggling the open panel should close it")
	}
	if m.Active() != "" {
		t.Fatalf("expected all panels closed")
	}
}

func TestListenerRegistry_RebindRunsOldTeardown(t *testing.T) {
	r := NewListenerRegistry()
	torn := 0
	r.Bind("keydown", func() { torn++ })
	r.Bind("keydown", func() { torn += 10 })
	if torn != 1 {
		t.Fatalf("rebinding must tear down the previous handler, torn=%d", torn)
	}
	if r.Len() != 1 {
		t.Fatalf("expected a single live binding, got %d", r.Len())
	}
	r.TeardownAll()
	if torn != 11 || r.Len() != 0 {
		t.Fatalf("teardown all must run and clear bindings, torn=%d len=%d", torn, r.Len())
	}
}
