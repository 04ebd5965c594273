package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validation("bad")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Unauthorized("no")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("gone")))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict("taken")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("driver: bad connection")))
}

func TestStatusOfWrapped(t *testing.T) {
	err := fmt.Errorf("failed to book seat: %w", Validation("Seat is already booked for this date"))
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, "Seat is already booked for this date", MessageOf(err, "Internal server error"))
}

func TestMessageOfHidesInternalDetail(t *testing.T) {
	err := fmt.Errorf("failed to get event: %w", errors.New("pq: connection refused"))
	assert.Equal(t, "Internal server error", MessageOf(err, "Internal server error"))
}
