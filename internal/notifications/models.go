package notifications

import (
	"errors"
	"net/mail"
)

var (
	// ErrNoSender is returned when Message.From is empty or unparsable.
	ErrNoSender = errors.New("no sender provided")
	// ErrNoRecipient is returned when Message.To is empty or unparsable.
	ErrNoRecipient = errors.New("no recipient provided")
)

// Message is a single HTML email. It lives for one send and is never stored.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// envelope returns the bare sender and recipient addresses for the SMTP
// envelope. Display names are allowed in From and To.
func (m Message) envelope() (from, to string, err error) {
	if m.From == "" {
		return "", "", ErrNoSender
	}
	if m.To == "" {
		return "", "", ErrNoRecipient
	}

	fromAddr, err := mail.ParseAddress(m.From)
	if err != nil {
		return "", "", errors.Join(ErrNoSender, err)
	}
	toAddr, err := mail.ParseAddress(m.To)
	if err != nil {
		return "", "", errors.Join(ErrNoRecipient, err)
	}

	return fromAddr.Address, toAddr.Address, nil
}
