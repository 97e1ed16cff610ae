package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// SplitsHandler adjusts item allocations.
type SplitsHandler struct {
	store *session.Store
}

// NewSplitsHandler creates a new splits handler.
func NewSplitsHandler(store *session.Store) *SplitsHandler {
	return &SplitsHandler{store: store}
}

// Adjust handles POST /api/sessions/:id/splits. Over-allocation is
// clamped to the remaining headroom, and an unknown item id is a
// reported no-op, not an error.
func (h *SplitsHandler) Adjust(c *gin.Context) {
	var req dto.AdjustSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}
	if req.ItemID == "" || req.PersonID == "" {
		c.JSON(http.StatusBadRequest, dto.ValidationError("item_id and person_id are required"))
		return
	}

	var resp dto.AdjustSplitResponse
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		result, applied := s.AdjustSplit(req.ItemID, req.PersonID, req.Delta)
		resp = dto.AdjustSplitResponse{
			ItemID:        req.ItemID,
			PersonID:      req.PersonID,
			Applied:       applied,
			Quantity:      result.Quantity,
			AssignedTotal: result.AssignedTotal,
			Remaining:     result.Remaining,
			FullyAssigned: s.Splits.FullyAssigned(s.Items.Items()),
		}
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
