package adapter

import (
	"net/smtp"
)

// SMTPSender defines an interface for sending mail to enable mocking
//
//go:generate mockgen -source=smtp.go -destination=../mocks/smtp.go -package=mocks -mock_names=SMTPSender=MockSMTPSender
type SMTPSender interface {
	// SendMail connects to addr, authenticates when auth is non-nil and delivers msg
	SendMail(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// RealSMTPSender implements SMTPSender using net/smtp
type RealSMTPSender struct{}

// NewSMTPSender creates a new real SMTP sender
func NewSMTPSender() SMTPSender {
	return &RealSMTPSender{}
}

func (s *RealSMTPSender) SendMail(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	return smtp.SendMail(addr, auth, from, to, msg)
}
