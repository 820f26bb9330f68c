package bookings

// Response messages of POST /api/book-event
const (
	MessageBookingConfirmed = "Booking confirmed and emails sent!"
	MessageMissingDetails   = "Missing required booking details"
	MessageInvalidPayload   = "Invalid booking payload"
	MessageSendFailed       = "Error sending emails"
)
