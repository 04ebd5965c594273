package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/models"
)

// CreateEvent handles POST /api/events.
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	event, err := h.services.Events.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateEventResponse{
		Message: "Event created successfully",
		Event:   *event,
	})
}

// ListEvents handles GET /api/events.
func (h *Handlers) ListEvents(c *gin.Context) {
	events, err := h.services.Events.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id.
func (h *Handlers) GetEvent(c *gin.Context) {
	event, err := h.services.Events.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/:id.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	var req models.DeleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.services.Events.Delete(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Event deleted successfully"})
}
