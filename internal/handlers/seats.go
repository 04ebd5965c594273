package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/models"
)

// InitializeSeats handles POST /api/seats/initialize.
func (h *Handlers) InitializeSeats(c *gin.Context) {
	var req models.InitializeSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.services.Seats.Initialize(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Seats initialized successfully"})
}

// ListSeats handles GET /api/seats?date=YYYY-MM-DD.
func (h *Handlers) ListSeats(c *gin.Context) {
	seats, err := h.services.Seats.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	if seats == nil {
		seats = []models.SeatWithStatus{}
	}
	c.JSON(http.StatusOK, seats)
}

// ListSeatsByIDs handles GET /api/seats/by-ids?seatIds=A1,A2&date=YYYY-MM-DD.
func (h *Handlers) ListSeatsByIDs(c *gin.Context) {
	ids := c.Query("seatIds")
	if ids == "" {
		respondError(c, apperrors.Validation("seatIds are required"))
		return
	}

	seats, err := h.services.Seats.ListByCodes(c.Request.Context(), c.Query("date"), strings.Split(ids, ","))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

// BookSeat handles POST /api/seats/book. Authentication is enforced by the
// route middleware.
func (h *Handlers) BookSeat(c *gin.Context) {
	var req models.BookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	seat, err := h.services.Seats.Book(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BookSeatResponse{
		Message: "Seat booked successfully",
		Seat:    *seat,
	})
}
