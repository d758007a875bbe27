package v1

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/flipbook"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/flipbooklib/flipbook/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// viewerSession pairs a flip session with the book it reads. The widget
// fires one request per key press without awaiting the previous one, so
// several actions can be in flight for the same token; mu serializes them.
type viewerSession struct {
	mu      sync.Mutex
	book    *model.EBook
	session *flipbook.Session
}

type viewerStateResponse struct {
	Token     string   `json:"token"`
	Page      int      `json:"page"`
	PageCount int      `json:"page_count"`
	Zoom      float64  `json:"zoom"`
	Muted     bool     `json:"muted"`
	Playing   bool     `json:"playing"`
	AtFirst   bool     `json:"at_first_page"`
	AtLast    bool     `json:"at_last_page"`
	PlaySound bool     `json:"play_turn_sound"`
	AudioURL  string   `json:"audio_url,omitempty"`
	VideoURL  string   `json:"video_url,omitempty"`
	Pages     []string `json:"pages,omitempty"`
}

func stateResponse(token string, vs *viewerSession, includePages bool) *viewerStateResponse {
	s := vs.session
	resp := &viewerStateResponse{
		Token:     token,
		Page:      s.Page(),
		PageCount: s.PageCount(),
		Zoom:      s.Zoom(),
		Muted:     s.Muted(),
		Playing:   s.Playing(),
		AtFirst:   s.AtFirstPage(),
		AtLast:    s.AtLastPage(),
		PlaySound: s.ConsumeTurnSound(),
		AudioURL:  s.Ambient().AudioURL,
		VideoURL:  s.Ambient().VideoURL,
	}
	if includePages {
		resp.Pages = vs.book.Pages
	}
	return resp
}

// openViewerSession fetches the record and opens a flip session over it. The
// view-count bump is fired independently; its outcome never affects the
// reader.
func (h *Handler) openViewerSession(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	h.viewPool.Push(model.ViewJob{EBookID: id})

	book, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(w, r)
			return
		}
		response.ServerError(w, r, err)
		return
	}

	token := util.GenUUID()
	vs := &viewerSession{
		book: book,
		session: flipbook.NewSession(len(book.Pages), flipbook.Ambient{
			AudioURL: book.BackgroundMusic,
			VideoURL: book.YouTubeURL,
		}),
	}
	h.sessions.Store(token, vs)

	log.Debug("Viewer session opened",
		zap.String("ebook_id", id),
		zap.String("token", token),
		zap.Int("pages", len(book.Pages)))

	// The token is published above, so even this first read takes the lock.
	vs.mu.Lock()
	state := stateResponse(token, vs, true)
	vs.mu.Unlock()
	response.Created(w, r, state)
}

// applyViewerAction runs one state-machine action and returns the new state.
func (h *Handler) applyViewerAction(w http.ResponseWriter, r *http.Request) {
	token := request.RouteStringParam(r, "token")
	action := request.RouteStringParam(r, "action")

	v, ok := h.sessions.Load(token)
	if !ok {
		response.NotFound(w, r)
		return
	}
	vs := v.(*viewerSession)

	vs.mu.Lock()
	defer vs.mu.Unlock()

	if action == "turned" {
		// The widget reports the completed page-turn it animated.
		page, err := strconv.Atoi(request.QueryStringParam(r, "page", ""))
		if err != nil {
			response.BadRequest(w, r, errors.Wrap(err, "invalid page parameter"))
			return
		}
		vs.session.PageTurned(page)
		response.OK(w, r, stateResponse(token, vs, false))
		return
	}

	if err := vs.session.Apply(action); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	response.OK(w, r, stateResponse(token, vs, false))
}
