package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// SessionsHandler manages session lifecycle and stage transitions.
type SessionsHandler struct {
	store *session.Store
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(store *session.Store) *SessionsHandler {
	return &SessionsHandler{store: store}
}

// Create handles POST /api/sessions.
func (h *SessionsHandler) Create(c *gin.Context) {
	id := h.store.Create()
	respondSnapshot(c, h.store, id, http.StatusCreated)
}

// Get handles GET /api/sessions/:id.
func (h *SessionsHandler) Get(c *gin.Context) {
	respondSnapshot(c, h.store, c.Param("id"), http.StatusOK)
}

// Delete handles DELETE /api/sessions/:id.
func (h *SessionsHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		writeSessionErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset handles POST /api/sessions/:id/reset — back to PEOPLE with
// everything cleared.
func (h *SessionsHandler) Reset(c *gin.Context) {
	id := c.Param("id")
	err := h.store.Update(id, func(s *session.Session) error {
		s.Reset()
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	respondSnapshot(c, h.store, id, http.StatusOK)
}

// Advance handles POST /api/sessions/:id/advance. Guarded transitions
// respond with a conflict instead of moving.
func (h *SessionsHandler) Advance(c *gin.Context) {
	id := c.Param("id")
	err := h.store.Update(id, func(s *session.Session) error {
		return s.Advance()
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	respondSnapshot(c, h.store, id, http.StatusOK)
}

// Back handles POST /api/sessions/:id/back.
func (h *SessionsHandler) Back(c *gin.Context) {
	id := c.Param("id")
	err := h.store.Update(id, func(s *session.Session) error {
		s.Back()
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	respondSnapshot(c, h.store, id, http.StatusOK)
}
