package flipbook

import "github.com/pkg/errors"

// Actions mirror the viewer's keyboard shortcuts: arrows, space, m, +, -,
// and the zoom reset control.
const (
	ActionNext      = "next"
	ActionPrev      = "prev"
	ActionPlay      = "play"
	ActionMute      = "mute"
	ActionZoomIn    = "zoom_in"
	ActionZoomOut   = "zoom_out"
	ActionZoomReset = "zoom_reset"
)

// Apply dispatches a named action onto the session. Unknown actions are an
// error; boundary no-ops are not.
func (s *Session) Apply(action string) error {
	switch action {
	case ActionNext:
		s.FlipNext()
	case ActionPrev:
		s.FlipPrev()
	case ActionPlay:
		s.TogglePlay()
	case ActionMute:
		s.ToggleMute()
	case ActionZoomIn:
		s.ZoomIn()
	case ActionZoomOut:
		s.ZoomOut()
	case ActionZoomReset:
		s.ResetZoom()
	default:
		return errors.Errorf("unknown viewer action: %s", action)
	}
	return nil
}
