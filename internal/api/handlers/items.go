package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/domain/ledger"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// ItemsHandler manages the receipt item ledger.
type ItemsHandler struct {
	store *session.Store
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(store *session.Store) *ItemsHandler {
	return &ItemsHandler{store: store}
}

// Add handles POST /api/sessions/:id/items. Omitted fields get
// placeholder values.
func (h *ItemsHandler) Add(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	var item ledger.Item
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		item = s.Items.Add()
		if req.Name != nil || req.Quantity != nil || req.UnitPrice != nil {
			item, _ = s.Items.Update(item.ID, ledger.Patch{
				Name:      req.Name,
				Quantity:  req.Quantity,
				UnitPrice: req.UnitPrice,
			})
		}
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	})
}

// Update handles PATCH /api/sessions/:id/items/:itemID. Invalid
// numeric edits clamp to 0 rather than failing.
func (h *ItemsHandler) Update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	itemID := c.Param("itemID")

	var item ledger.Item
	var found bool
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		item, found = s.Items.Update(itemID, ledger.Patch{
			Name:      req.Name,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
		})
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.NotFoundError("item"))
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
	})
}

// Remove handles DELETE /api/sessions/:id/items/:itemID. Allocation
// entries for the item are removed with it.
func (h *ItemsHandler) Remove(c *gin.Context) {
	itemID := c.Param("itemID")

	var found bool
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		found = s.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.NotFoundError("item"))
		return
	}

	c.Status(http.StatusNoContent)
}
