package bookings

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// BookingRequest is the body of POST /api/book-event
type BookingRequest struct {
	EventType string     `json:"eventType" binding:"required"`
	Date      string     `json:"date" binding:"required"`
	Time      string     `json:"time" binding:"required"`
	Guests    GuestCount `json:"guests" binding:"required"`
	Venue     string     `json:"venue" binding:"required"`
	Menu      string     `json:"menu" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Email     string     `json:"email" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Notes     string     `json:"notes"`
}

// GuestCount accepts either a JSON string or a JSON number. It keeps the
// textual form; a numeric zero or null is treated as absent.
type GuestCount string

var errGuestsType = errors.New("guests must be a string or a number")

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GuestCount(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return errGuestsType
	}
	if n == 0 {
		*g = ""
		return nil
	}
	*g = GuestCount(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (g GuestCount) String() string {
	return string(g)
}
