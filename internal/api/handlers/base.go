// Package handlers implements the HTTP endpoints of the wizard API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// respondSnapshot writes the current session state, the standard
// success payload for mutations.
func respondSnapshot(c *gin.Context, store *session.Store, id string, status int) {
	var resp dto.SessionResponse
	err := store.View(id, func(s *session.Session) error {
		resp = dto.NewSessionResponse(s)
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	c.JSON(status, resp)
}

// writeSessionErr maps store and session errors onto API error
// responses.
func writeSessionErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundError("session"))
	case errors.Is(err, session.ErrEmptyName):
		c.JSON(http.StatusBadRequest, dto.ValidationError(err.Error()))
	case errors.Is(err, session.ErrNoPeople), errors.Is(err, session.ErrNotFullySplit):
		c.JSON(http.StatusConflict, dto.ConflictError(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.InternalError())
	}
}
