// Package mail provides the SMTP client used to deliver account emails.
package mail

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
)

// ErrDisabled is returned when a send is attempted while the mail
// transport is not configured. The caller surfaces this as a failed
// dispatch; it is never silently swallowed.
var ErrDisabled = errors.New("mail transport disabled")

// Mailer is the interface consumed by the auth usecase to dispatch
// account emails.
type Mailer interface {
	// Send delivers an HTML email to a single recipient.
	Send(to, subject, htmlBody string) error

	// SendText delivers a plain-text email to a single recipient.
	SendText(to, subject, body string) error
}

// Client wraps a goemail SMTP connection with a preset sender identity.
//
// Client implements the Mailer interface.
type Client struct {
	smtp        *goemail.SMTP
	mailName    string // From name
	mailAddress string // From email address
	disabled    bool
}

var _ Mailer = (*Client)(nil)

// NewClient returns a new SMTP client. Email is considered disabled if
// any of the required credentials are missing; a disabled client fails
// every send with ErrDisabled.
func NewClient(host, user, password, emailAddress, emailName string, skipVerify bool) (*Client, error) {
	if host == "" || user == "" || password == "" {
		return &Client{disabled: true}, nil
	}

	// Parse mail host
	h := fmt.Sprintf("smtps://%v:%v@%v", user, password, host)
	u, err := url.Parse(h)
	if err != nil {
		return nil, err
	}

	// Parse sender address
	a, err := mail.ParseAddress(emailAddress)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: skipVerify,
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, err
	}

	name := emailName
	if a.Name != "" {
		name = a.Name
	}

	return &Client{
		smtp:        smtp,
		mailName:    name,
		mailAddress: a.Address,
	}, nil
}

// IsEnabled returns whether the mail transport is configured.
func (c *Client) IsEnabled() bool {
	return !c.disabled
}

// Send delivers an HTML email to a single recipient.
func (c *Client) Send(to, subject, htmlBody string) error {
	if c.disabled {
		return ErrDisabled
	}

	msg := goemail.NewHTMLMessage(c.mailAddress, subject, htmlBody)
	msg.SetName(c.mailName)
	msg.AddTo(to)

	return c.smtp.Send(msg)
}

// SendText delivers a plain-text email to a single recipient.
func (c *Client) SendText(to, subject, body string) error {
	if c.disabled {
		return ErrDisabled
	}

	msg := goemail.NewMessage(c.mailAddress, subject, body)
	msg.SetName(c.mailName)
	msg.AddTo(to)

	return c.smtp.Send(msg)
}
