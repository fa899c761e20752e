package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/middleware"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

// addFlash queues a message on the caller's session for the next render.
// The session's remaining TTL is left untouched.
func addFlash(c *gin.Context, store port.SessionStore, message string) {
	sid := middleware.CurrentSessionID(c)

	if sid == "" {
		return
	}

	ctx := c.Request.Context()
	sess, ok, err := store.Get(ctx, sid)

	if err != nil || !ok {
		return
	}

	sess.Flashes = append(sess.Flashes, message)

	if err := store.SaveKeepTTL(ctx, sid, sess); err != nil {
		log.Error().Err(err).Msg("flash save failed")
	}
}

// popFlashes drains the session's queued messages.
func popFlashes(c *gin.Context, store port.SessionStore) []string {
	sid := middleware.CurrentSessionID(c)

	if sid == "" {
		return nil
	}

	ctx := c.Request.Context()
	sess, ok, err := store.Get(ctx, sid)

	if err != nil || !ok || len(sess.Flashes) == 0 {
		return nil
	}

	flashes := sess.Flashes
	sess.Flashes = nil

	if err := store.SaveKeepTTL(ctx, sid, sess); err != nil {
		log.Error().Err(err).Msg("flash pop failed")
	}

	return flashes
}
