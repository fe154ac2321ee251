package utils

import "github.com/gin-gonic/gin"

// Actor is the caller as resolved once by the auth middleware.
type Actor struct {
	UserID  uint
	ActorID uint
	Role    string
}

func CurrentActor(c *gin.Context) Actor {
	a := Actor{}
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			a.UserID = id
		}
	}
	if v, ok := c.Get("actorId"); ok {
		if id, ok := v.(uint); ok {
			a.ActorID = id
		}
	}
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			a.Role = s
		}
	}
	return a
}
