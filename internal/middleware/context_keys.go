package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

const actorCtxKey = contextKey("actor")

// GetActorFromContext retrieves the authenticated actor from the request
// context. It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorCtxKey).(domain.Actor)
	return actor, ok
}

// WithActor stores the actor in the context. Exported for handler tests that
// bypass the auth middleware.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}
