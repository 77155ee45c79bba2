package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	actorHeader     = "X-Actor-ID"
	actorContextKey = "actorID"

	// UnknownActor is stamped on mutations when no identity was supplied.
	UnknownActor = "unknown"
)

// Actor resolves the acting admin's id from the request and stores it in
// the gin context for handlers to stamp on mutations.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(actorHeader))
		if actor == "" {
			actor = UnknownActor
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorID returns the resolved actor id, or the unknown sentinel when the
// middleware did not run.
func ActorID(c *gin.Context) string {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(string); ok && actor != "" {
			return actor
		}
	}
	return UnknownActor
}
