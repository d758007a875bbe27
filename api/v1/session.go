package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flipbooklib/flipbook/api/auth"
	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// signIn exchanges operator credentials against the remote auth service and
// plants the access token in a session cookie.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, r, errors.New("email and password are required"))
		return
	}

	session, err := h.catalog.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCredentials) {
			log.Info("Rejected sign-in attempt",
				zap.String("email", req.Email),
				zap.String("client_ip", request.FindClientIP(r)))
			response.Unauthorized(w, r)
			return
		}
		log.Error("Sign-in failed against auth service", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	expires := time.Now().Add(time.Duration(session.ExpiresIn) * time.Second)
	w.Header().Set("Set-Cookie",
		auth.BuildAccessTokenCookie(session.AccessToken, expires, r.Header.Get("Origin")))

	log.Info("Operator signed in",
		zap.String("email", req.Email),
		zap.String("client_ip", request.FindClientIP(r)))
	response.OK(w, r, &sessionResponse{Authenticated: true, Email: req.Email})
}

// signOut clears the session cookie. The backend token itself simply expires.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Set-Cookie",
		auth.BuildAccessTokenCookie("", time.Time{}, r.Header.Get("Origin")))
	response.NoContent(w, r)
}

// sessionInfo reports whether the request carries a live session.
func (h *Handler) sessionInfo(w http.ResponseWriter, r *http.Request) {
	if !request.IsAuthenticated(r) {
		response.OK(w, r, &sessionResponse{Authenticated: false})
		return
	}
	response.OK(w, r, &sessionResponse{
		Authenticated: true,
		Email:         request.SessionEmail(r),
	})
}
