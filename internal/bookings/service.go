package bookings

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"catering/internal/notifications"
	"catering/internal/shared/config"
	"catering/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Service interface defines the contract for booking business logic
type Service interface {
	// BookEvent validates req and sends the customer and admin notifications,
	// in that order. A failed send aborts the sequence.
	BookEvent(ctx context.Context, req BookingRequest) error
}

// service implements the Service interface
type service struct {
	mailer     notifications.Mailer
	sender     string
	adminEmail string
	business   Business
	validate   *validator.Validate
}

// NewService creates a new booking service
func NewService(mailer notifications.Mailer, cfg *config.Config) Service {
	return &service{
		mailer:     mailer,
		sender:     cfg.Mail.Sender,
		adminEmail: cfg.Mail.AdminEmail,
		business: Business{
			Name:    cfg.Business.Name,
			Website: cfg.Business.Website,
			Phone:   cfg.Business.Phone,
			Email:   cfg.Business.Email,
		},
		validate: newValidator(),
	}
}

// newValidator reads the same binding tags gin uses and reports fields by
// their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func (s *service) BookEvent(ctx context.Context, req BookingRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(req); err != nil {
		return missingFields(err)
	}

	log.LogBookingReceived(ctx, req.EventType, req.Date, req.Email)

	customer, admin, err := s.buildMessages(req)
	if err != nil {
		return err
	}

	start := time.Now()
	for _, n := range []struct {
		stage string
		msg   notifications.Message
	}{
		{StageCustomer, customer},
		{StageAdmin, admin},
	} {
		if err := s.mailer.Send(ctx, n.msg); err != nil {
			log.LogBookingEmailFailed(ctx, n.stage, n.msg.To, err)
			return &DeliveryError{Stage: n.stage, Recipient: n.msg.To, Err: err}
		}
	}

	log.LogBookingEmailsSent(ctx, customer.To, admin.To, time.Since(start))
	return nil
}

func (s *service) buildMessages(req BookingRequest) (customer, admin notifications.Message, err error) {
	data := emailData{
		Booking:  req,
		Notes:    notesOrPlaceholder(req.Notes),
		Business: s.business,
	}

	customerBody, err := render(customerTemplate, data)
	if err != nil {
		return customer, admin, err
	}
	adminBody, err := render(adminTemplate, data)
	if err != nil {
		return customer, admin, err
	}

	customer = notifications.Message{
		From:     s.sender,
		To:       req.Email,
		Subject:  customerSubject,
		HTMLBody: customerBody,
	}
	admin = notifications.Message{
		From:     s.sender,
		To:       s.adminEmail,
		Subject:  adminSubject,
		HTMLBody: adminBody,
	}

	return customer, admin, nil
}

// missingFields converts validator output into a MissingFieldsError
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &MissingFieldsError{}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &MissingFieldsError{Fields: fields}
}
