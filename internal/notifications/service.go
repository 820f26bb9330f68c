package notifications

import (
	"fmt"
	"time"

	"catering/pkg/logger"
)

// Drivers accepted by NewMailer
const (
	DriverSMTP = "smtp"
	DriverLog  = "log"
)

// ServiceConfig selects and configures the mail transport
type ServiceConfig struct {
	Driver       string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPSecurity string
	SMTPTimeout  time.Duration
}

// NewMailer builds the Mailer for the configured driver
func NewMailer(config ServiceConfig, log *logger.Logger) (Mailer, error) {
	switch config.Driver {
	case DriverLog:
		log.Warn("Using log mail driver - emails will NOT be delivered")
		return NewLogMailer(log), nil

	case DriverSMTP, "":
		mailer, err := NewSMTPMailer(SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUsername,
			Password: config.SMTPPassword,
			Security: config.SMTPSecurity,
			Timeout:  config.SMTPTimeout,
		})
		if err != nil {
			return nil, err
		}
		log.Info("SMTP mailer initialized",
			"host", config.SMTPHost,
			"port", config.SMTPPort,
			"security", config.SMTPSecurity,
		)
		return mailer, nil

	default:
		return nil, fmt.Errorf("unknown mail driver %q", config.Driver)
	}
}
