package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/deloculator/pkg/httpx"
	"github.com/ghuser/deloculator/pkg/logger"
)

const (
	sessionName       = "deloculator_session"
	sessionSubjectKey = "subject"

	// passwordSubject is the session subject of a password login.
	passwordSubject = "app"
)

// RequireAuth is a chi middleware that authenticates a request either by
// Telegram Mini App initData (only when botToken is set, and no older than
// initDataMaxAge) or by a session
// cookie written by the login handler. The subject is injected into the
// request context; 401 is returned otherwise.
//
// After this middleware, handlers can safely call auth.SubjectFromCtx(r.Context()).
func RequireAuth(store sessions.Store, botToken string, initDataMaxAge time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if initData := r.Header.Get(TelegramInitDataHeader); initData != "" && botToken != "" {
				user, err := ValidateInitData(initData, botToken, initDataMaxAge)
				if err != nil {
					log.WarnContext(r.Context(), "rejected telegram init data", "error", err)
					httpx.JSONError(w, http.StatusUnauthorized, "invalid telegram init data")
					return
				}
				subject := "telegram"
				if user != nil {
					subject += ":" + strconv.FormatInt(user.ID, 10)
				}
				next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
				return
			}

			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			subject, ok := session.Values[sessionSubjectKey].(string)
			if !ok || subject == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}
