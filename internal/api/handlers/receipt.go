package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/domain/ledger"
	"github.com/splitcheck/splitcheck-backend/internal/recognition"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// ReceiptHandler runs receipt recognition and fills the ledger with
// the result.
type ReceiptHandler struct {
	store      *session.Store
	recognizer recognition.Recognizer
	timeout    time.Duration
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(store *session.Store, recognizer recognition.Recognizer, timeout time.Duration) *ReceiptHandler {
	return &ReceiptHandler{
		store:      store,
		recognizer: recognizer,
		timeout:    timeout,
	}
}

// Upload handles POST /api/sessions/:id/receipt. On recognition
// failure the session is left untouched and the error is surfaced as a
// single message; nothing is retried automatically.
func (h *ReceiptHandler) Upload(c *gin.Context) {
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("a base64 image is required"))
		return
	}

	image, err := base64.StdEncoding.DecodeString(stripDataURL(req.Image))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("image is not valid base64"))
		return
	}

	id := c.Param("id")

	// Recognition may take a while; run it before touching the session
	// so a failure commits nothing.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	recognized, err := h.recognizer.RecognizeReceipt(ctx, image)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.RecognitionError("не вдалося розпізнати чек, спробуйте зробити більш чітке фото"))
		return
	}

	items := make([]ledger.Item, len(recognized))
	for i, r := range recognized {
		items[i] = ledger.Item{
			ID:        uuid.NewString(),
			Name:      r.Name,
			Quantity:  r.Quantity,
			UnitPrice: r.Price,
		}
	}

	err = h.store.Update(id, func(s *session.Session) error {
		s.ReplaceItems(items)
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	respondSnapshot(c, h.store, id, http.StatusOK)
}

// stripDataURL drops a data-URL prefix from a base64 payload.
func stripDataURL(image string) string {
	if idx := strings.Index(image, "base64,"); idx >= 0 {
		return image[idx+len("base64,"):]
	}
	return image
}
