// Package flipbook owns the viewer's transient reading state. The page-turn
// animation itself belongs to a browser widget; this package tracks what the
// widget needs to be told (current page, zoom, mute, play) and enforces the
// bounds the widget does not.
package flipbook

import "math"

const (
	// ZoomMin and ZoomMax bound the continuous zoom range.
	ZoomMin  = 0.7
	ZoomMax  = 1.5
	ZoomStep = 0.1
	// ZoomInitial intentionally differs from ZoomReset: the source app opened
	// at 1.2 and reset to 1.0, and both values are kept.
	ZoomInitial = 1.2
	ZoomReset   = 1.0
)

// Ambient describes the optional background media attached to a book.
type Ambient struct {
	AudioURL string
	VideoURL string
}

func (a Ambient) HasAudio() bool { return a.AudioURL != "" }
func (a Ambient) HasVideo() bool { return a.VideoURL != "" }

// Session is the state of one reader on one book. All transitions are
// synchronous; nothing survives the session.
type Session struct {
	pageCount int
	ambient   Ambient

	page    int
	zoom    float64
	muted   bool
	playing bool
	// turnSound is set once per completed page turn and cleared when read.
	turnSound bool
}

// NewSession opens a session over pageCount pages. pageCount must be
// positive; the record invariant guarantees a non-empty page sequence.
func NewSession(pageCount int, ambient Ambient) *Session {
	if pageCount < 1 {
		pageCount = 1
	}
	return &Session{
		pageCount: pageCount,
		ambient:   ambient,
		zoom:      ZoomInitial,
	}
}

func (s *Session) Page() int        { return s.page }
func (s *Session) PageCount() int   { return s.pageCount }
func (s *Session) Zoom() float64    { return s.zoom }
func (s *Session) Muted() bool      { return s.muted }
func (s *Session) Playing() bool    { return s.playing }
func (s *Session) Ambient() Ambient { return s.ambient }

// AtFirstPage reports whether the previous-page control is disabled.
func (s *Session) AtFirstPage() bool { return s.page == 0 }

// AtLastPage reports whether the next-page control is disabled.
func (s *Session) AtLastPage() bool { return s.page == s.pageCount-1 }

// FlipNext advances one page. No-op at the last page.
func (s *Session) FlipNext() {
	if s.AtLastPage() {
		return
	}
	s.page++
}

// FlipPrev goes back one page. No-op at the first page.
func (s *Session) FlipPrev() {
	if s.AtFirstPage() {
		return
	}
	s.page--
}

// PageTurned records a completed turn reported by the widget and arms the
// one-shot transition sound.
func (s *Session) PageTurned(page int) {
	if page < 0 || page >= s.pageCount {
		return
	}
	s.page = page
	s.turnSound = true
}

// ConsumeTurnSound reports whether a transition sound is due and clears the
// flag, so the effect plays exactly once per turn.
func (s *Session) ConsumeTurnSound() bool {
	due := s.turnSound
	s.turnSound = false
	return due
}

// TogglePlay flips the background audio between playing and paused. No-op
// when the book has no audio source.
func (s *Session) TogglePlay() {
	if !s.ambient.HasAudio() {
		return
	}
	s.playing = !s.playing
}

// ToggleMute flips the mute flag, independent of play state. The flag also
// drives the video background when one is present.
func (s *Session) ToggleMute() {
	s.muted = !s.muted
}

// ZoomIn raises zoom one step, clamped to the upper bound.
func (s *Session) ZoomIn() {
	s.zoom = clampZoom(s.zoom + ZoomStep)
}

// ZoomOut lowers zoom one step, clamped to the lower bound.
func (s *Session) ZoomOut() {
	s.zoom = clampZoom(s.zoom - ZoomStep)
}

// ResetZoom sets zoom to exactly the reset value, regardless of prior state.
func (s *Session) ResetZoom() {
	s.zoom = ZoomReset
}

func clampZoom(z float64) float64 {
	// Round to one decimal so repeated float steps cannot drift.
	z = math.Round(z*10) / 10
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}
