package external_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// ErrEmailNotConfigured is returned when no SMTP credentials were supplied.
var ErrEmailNotConfigured = errors.New("email service is not configured")

// sender is the part of gomail.Dialer the service needs.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtp attribute
type EmailService struct {
	From   string
	dialer sender
	cb     *gobreaker.CircuitBreaker
	logger usecasecontract.IAppLogger
}

// EmailService factory
func NewEmailService(host string, port int, username, appPassword, from string, logger usecasecontract.IAppLogger) *EmailService {
	var d sender
	if host != "" && username != "" {
		d = gomail.NewDialer(host, port, username, appPassword)
	}
	if from == "" {
		from = username
	}
	return newEmailService(d, from, logger)
}

func newEmailService(d sender, from string, logger usecasecontract.IAppLogger) *EmailService {
	return &EmailService{
		From:   from,
		dialer: d,
		cb:     circuitBreaker("smtp", logger),
		logger: logger,
	}
}

// make sure EmailService implements contract.IEmailService.go
var _ contract.IEmailService = (*EmailService)(nil)

// circuitBreaker opens after three consecutive failures and probes again after ten seconds.
func circuitBreaker(name string, logger usecasecontract.IAppLogger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warnf("circuit breaker '%s' changed from '%s' to '%s'", name, from, to)
		},
	})
}

// SendEmail sends an HTML email. It gives up when ctx is done even if SMTP is still busy.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if es.dialer == nil {
		return ErrEmailNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	_, err := es.cb.Execute(func() (interface{}, error) {
		done := make(chan error, 1)
		go func() { done <- es.dialer.DialAndSend(m) }()
		select {
		case err := <-done:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
