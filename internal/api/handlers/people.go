package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitcheck/splitcheck-backend/internal/api/dto"
	"github.com/splitcheck/splitcheck-backend/internal/session"
)

// PeopleHandler manages participants.
type PeopleHandler struct {
	store *session.Store
}

// NewPeopleHandler creates a new people handler.
func NewPeopleHandler(store *session.Store) *PeopleHandler {
	return &PeopleHandler{store: store}
}

// Add handles POST /api/sessions/:id/people.
func (h *PeopleHandler) Add(c *gin.Context) {
	var req dto.AddPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return
	}

	var person session.Person
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		var err error
		person, err = s.AddPerson(req.Name)
		return err
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PersonResponse{ID: person.ID, Name: person.Name})
}

// Remove handles DELETE /api/sessions/:id/people/:personID. The
// person's allocations are removed with them.
func (h *PeopleHandler) Remove(c *gin.Context) {
	personID := c.Param("personID")

	var found bool
	err := h.store.Update(c.Param("id"), func(s *session.Session) error {
		found = s.RemovePerson(personID)
		return nil
	})
	if err != nil {
		writeSessionErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.NotFoundError("person"))
		return
	}

	c.Status(http.StatusNoContent)
}
