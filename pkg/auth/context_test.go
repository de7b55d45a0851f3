package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithSubject_SubjectFromCtx(t *testing.T) {
	ctx := WithSubject(context.Background(), "telegram:42")

	got, err := SubjectFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "telegram:42" {
		t.Fatalf("expected telegram:42, got %q", got)
	}
}

func TestSubjectFromCtx_EmptyContext(t *testing.T) {
	_, err := SubjectFromCtx(context.Background())
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestSubjectFromCtx_EmptySubject(t *testing.T) {
	_, err := SubjectFromCtx(WithSubject(context.Background(), ""))
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound for empty subject, got %v", err)
	}
}
