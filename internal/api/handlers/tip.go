package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/domain/tip"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// TipHandler sets the session tip.
type TipHandler struct {
	store *session.Store
	calc  tip.Calculator
}

// NewTipHandler creates a new tip handler.
func NewTipHandler(store *session.Store, calc tip.Calculator) *TipHandler {
	return &TipHandler{store: store, calc: calc}
}

// Set handles PUT /api/sessions/:id/tip. Every request overwrites the
// previous selection; the modes are mutually exclusive.
func (h *TipHandler) Set(c *gin.Context) {
	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	switch req.Mode {
	case dto.TipModePercent, dto.TipModeRound, dto.TipModeCustom, dto.TipModeNone:
	default:
		c.JSON(http.StatusBadRequest, dto.ValidationError("mode must be one of percent, round, custom, none"))
		return
	}

	id := c.Param("id")
	err := h.store.Update(id, func(s *session.Session) error {
		itemsTotal := s.Items.Total()
		switch req.Mode {
		case dto.TipModePercent:
			var percent float64
			if req.Percent != nil {
				percent = *req.Percent
			}
			s.Tip = h.calc.Percent(itemsTotal, percent)
		case dto.TipModeRound:
			s.Tip = h.calc.RoundUp(itemsTotal)
		case dto.TipModeCustom:
			var amount float64
			if req.Amount != nil {
				amount = *req.Amount
			}
			s.Tip = tip.Custom(amount)
		case dto.TipModeNone:
			s.Tip = tip.Disabled()
		}
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	respondSnapshot(c, h.store, id, http.StatusOK)
}
