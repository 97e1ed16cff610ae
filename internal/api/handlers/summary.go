package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// SummaryHandler renders the settlement.
type SummaryHandler struct {
	store *session.Store
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(store *session.Store) *SummaryHandler {
	return &SummaryHandler{store: store}
}

// Get handles GET /api/sessions/:id/summary.
func (h *SummaryHandler) Get(c *gin.Context) {
	var resp dto.SummaryResponse
	err := h.store.View(c.Param("id"), func(s *session.Session) error {
		resp = dto.NewSummaryResponse(s.Settle())
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Share handles GET /api/sessions/:id/summary/share — the plain-text
// export handed to the system share sheet or clipboard.
func (h *SummaryHandler) Share(c *gin.Context) {
	var text string
	err := h.store.View(c.Param("id"), func(s *session.Session) error {
		text = s.Settle().ShareText()
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareTextResponse{Text: text})
}
