package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/deloculator/pkg/httpx"
	"github.com/ghuser/deloculator/pkg/logger"
	pkgvalidator "github.com/ghuser/deloculator/pkg/validator"
)

// loginAttemptsPerMinute limits password guesses per client IP.
const loginAttemptsPerMinute = 10

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Password string `json:"password" validate:"required,max=72" example:"s3cret"`
} // @name LoginRequest

// StatusResponse is returned by a successful login.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
} // @name StatusResponse

// Handlers serves password login and logout. The password is checked against
// a bcrypt hash; the plain password is never configured.
type Handlers struct {
	store        sessions.Store
	passwordHash []byte
	log          logger.Logger
}

// NewHandlers returns login/logout handlers backed by store.
func NewHandlers(store sessions.Store, passwordHash string, log logger.Logger) *Handlers {
	return &Handlers{store: store, passwordHash: []byte(passwordHash), log: log}
}

// Mount registers /auth/login and /auth/logout on r.
func (h *Handlers) Mount(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.With(httprate.LimitByIP(loginAttemptsPerMinute, time.Minute)).Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})
}

// Login checks the application password and starts a session.
//
//	@Summary		Log in
//	@Description	Checks the application password and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	StatusResponse
//	@Failure		401		{object}	map[string]string
//	@Failure		422		{object}	map[string]any
//	@Failure		429		{object}	map[string]string
//	@Router			/auth/login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	if len(h.passwordHash) == 0 {
		h.log.ErrorContext(r.Context(), "login attempted but no password hash is configured")
		httpx.JSONError(w, http.StatusUnauthorized, "invalid password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		h.log.WarnContext(r.Context(), "failed login attempt", "remote_addr", r.RemoteAddr)
		httpx.JSONError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	session, _ := h.store.Get(r, sessionName)
	session.Values[sessionSubjectKey] = passwordSubject
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "save session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	httpx.JSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Logout ends the current session.
//
//	@Summary	Log out
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "clear session", "error", err)
	}
	httpx.NoContent(w)
}
