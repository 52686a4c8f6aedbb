// Package identity carries the acting user's e-mail through a request.
//
// Authentication happens upstream; the actor arrives as a trusted header and
// is recorded as CreatedBy / SubmittingUser / UserEmail on written rows.
package identity

import (
	"context"
	"strings"
)

type actorKey struct{}

func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(email))
}

// Actor returns the acting user's e-mail, or "" when none was set.
func Actor(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	email, _ := ctx.Value(actorKey{}).(string)
	return email
}
