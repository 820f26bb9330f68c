package bookings

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	customerSubject = "🎉 Booking Confirmed - Get Ready for an Amazing Event! 🎊"
	adminSubject    = "📢 New Booking Alert - Review Details!"
)

// emailData is the view model shared by both notification templates
type emailData struct {
	Booking  BookingRequest
	Notes    string
	Business Business
}

// Business holds the contact details printed in every email footer
type Business struct {
	Name    string
	Website string
	Phone   string
	Email   string
}

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 650px; margin: auto; padding: 20px; border-radius: 10px; background: #f4f4f4;">
    <div style="text-align: center; background: #0073e6; padding: 15px; border-radius: 10px 10px 0 0;">
        <div style="font-size: 1.875rem; font-weight: bold; color: #ffffff;">{{.Business.Name}}</div>
        <h2 style="color: #fff; margin: 10px 0;">Booking Confirmation</h2>
    </div>
    <div style="background: #ffffff; padding: 20px; border-radius: 0 0 10px 10px;">
        <p style="font-size: 16px; color: #333;">Hello <strong>{{.Booking.Name}}</strong>,</p>
        <p style="color: #555;">Thank you for booking with us! Here are your event details:</p>
        <div style="background: #e3f2fd; padding: 15px; border-radius: 5px;">
            <p><strong>📅 Event Type:</strong> {{.Booking.EventType}}</p>
            <p><strong>🕒 Date &amp; Time:</strong> {{.Booking.Date}} at {{.Booking.Time}}</p>
            <p><strong>👥 Guests:</strong> {{.Booking.Guests}}</p>
            <p><strong>📍 Venue:</strong> {{.Booking.Venue}}</p>
            <p><strong>🍽️ Menu:</strong> {{.Booking.Menu}}</p>
        </div>
        <p style="color: #555;">We are excited to make your event special! If you need any assistance, feel free to reach out.</p>
        <div style="text-align: center; margin-top: 20px;">
            <a href="{{.Business.Website}}" style="background: #0073e6; color: #fff; padding: 10px 20px; border-radius: 5px; text-decoration: none; font-weight: bold;">Visit Our Website</a>
        </div>
        <hr style="margin: 20px 0; border: 0.5px solid #ddd;">
        <p style="text-align: center; color: #777; font-size: 14px;">📞 <strong>Phone:</strong> {{.Business.Phone}} | 📧 <strong>Email:</strong> {{.Business.Email}}</p>
    </div>
</div>
`))

var adminTemplate = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 650px; margin: auto; padding: 20px; border-radius: 10px; background: #fff3cd;">
    <div style="text-align: center; background: #d9534f; padding: 15px; border-radius: 10px 10px 0 0;">
        <h2 style="color: #fff; margin: 10px 0;">New Booking Alert 🚀</h2>
    </div>
    <div style="background: #ffffff; padding: 20px; border-radius: 0 0 10px 10px;">
        <p style="font-size: 16px; color: #333;">A new catering booking has been received. Here are the details:</p>
        <div style="background: #ffeeba; padding: 15px; border-radius: 5px;">
            <p><strong>👤 Name:</strong> {{.Booking.Name}}</p>
            <p><strong>📧 Email:</strong> {{.Booking.Email}}</p>
            <p><strong>📞 Phone:</strong> {{.Booking.Phone}}</p>
            <p><strong>📅 Event Type:</strong> {{.Booking.EventType}}</p>
            <p><strong>🕒 Date &amp; Time:</strong> {{.Booking.Date}} at {{.Booking.Time}}</p>
            <p><strong>👥 Guests:</strong> {{.Booking.Guests}}</p>
            <p><strong>📍 Venue:</strong> {{.Booking.Venue}}</p>
            <p><strong>🍽️ Menu:</strong> {{.Booking.Menu}}</p>
            <p><strong>📝 Notes:</strong> {{.Notes}}</p>
        </div>
        <p style="color: #555;">Please review and follow up if necessary.</p>
        <div style="text-align: center; margin-top: 20px;">
            <a href="{{.Business.Website}}" style="background: #d9534f; color: #fff; padding: 10px 20px; border-radius: 5px; text-decoration: none; font-weight: bold;">View Booking Dashboard</a>
        </div>
        <hr style="margin: 20px 0; border: 0.5px solid #ddd;">
        <p style="text-align: center; color: #777; font-size: 14px;">📞 <strong>Phone:</strong> {{.Business.Phone}} | 📧 <strong>Email:</strong> {{.Business.Email}}</p>
    </div>
</div>
`))

func render(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func notesOrPlaceholder(notes string) string {
	if notes == "" {
		return NotesPlaceholder
	}
	return notes
}
