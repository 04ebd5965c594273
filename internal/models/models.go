package models

// CreateEventRequest - body of POST /api/events
type CreateEventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	Password    string `json:"password"`
	TotalSeats  int    `json:"totalSeats"`
}

// CreateEventResponse - response of POST /api/events
type CreateEventResponse struct {
	Message string `json:"message"`
	Event   Event  `json:"event"`
}

// DeleteEventRequest - body of DELETE /api/events/:id
type DeleteEventRequest struct {
	Password string `json:"password"`
}

// InitializeSeatsRequest - body of POST /api/seats/initialize
type InitializeSeatsRequest struct {
	EventID    string `json:"eventId"`
	TotalSeats int    `json:"totalSeats"`
}

// SeatWithStatus is a seat annotated with its derived availability for one
// requested date. BookedBy is null while the seat is available.
type SeatWithStatus struct {
	Seat
	Status   string    `json:"status"`
	BookedBy *BookedBy `json:"bookedBy"`
}

// BookSeatRequest - body of POST /api/seats/book. SeatID is the
// human-readable seat code ("A1"), not the storage id.
type BookSeatRequest struct {
	SeatID      string `json:"seatId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingDate string `json:"bookingDate"`
}

// BookSeatResponse - response of POST /api/seats/book
type BookSeatResponse struct {
	Message string         `json:"message"`
	Seat    SeatWithStatus `json:"seat"`
}

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest - body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - response of POST /api/auth/login
type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// UserInfo is the public view of the operator account.
type UserInfo struct {
	Email string `json:"email"`
}

// ForgotPasswordRequest - body of POST /api/auth/forgot-password
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest - body of POST /api/auth/verify-otp
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest - body of POST /api/auth/reset-password
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}
