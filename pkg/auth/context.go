package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const subjectKey contextKey = "subject"

// ErrSubjectNotFound is returned when the request context carries no
// authenticated subject. Handlers should answer 401 when it occurs.
var ErrSubjectNotFound = errors.New("subject not found in context")

// SubjectFromCtx returns who authenticated the request: "app" for a password
// session, "telegram:<user id>" for a Telegram Mini App user.
func SubjectFromCtx(ctx context.Context) (string, error) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", ErrSubjectNotFound
	}
	return subject, nil
}

// WithSubject returns a new context with the given subject attached.
// Used by RequireAuth after the session or Telegram data is validated.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}
