package contact

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidName    = errors.New("name must be between 2 and 50 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidMessage = errors.New("message must be between 2 and 2000 characters")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^(\+91[\-\s]?|0)?[6-9]\d{9}$`)
)

const DefaultSubject = "General Inquiry"

// Inquiry is a contact-form submission. It has no lifecycle and no durable
// store: captured, notified, discarded.
type Inquiry struct {
	name        string
	email       string
	phone       string // optional
	subject     string
	message     string
	submittedAt time.Time
}

func NewInquiry(name, email, phone, subject, message string, now time.Time) (*Inquiry, error) {
	name = sanitize(name)
	if len(name) < 2 || len(name) > 50 {
		return nil, ErrInvalidName
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	message = sanitize(message)
	if len(message) < 2 || len(message) > 2000 {
		return nil, ErrInvalidMessage
	}

	subject = sanitize(subject)
	if subject == "" {
		subject = DefaultSubject
	}

	return &Inquiry{
		name:        name,
		email:       email,
		phone:       phone,
		subject:     subject,
		message:     message,
		submittedAt: now,
	}, nil
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

func (i *Inquiry) Name() string           { return i.name }
func (i *Inquiry) Email() string          { return i.email }
func (i *Inquiry) Phone() string          { return i.phone }
func (i *Inquiry) Subject() string        { return i.subject }
func (i *Inquiry) Message() string        { return i.message }
func (i *Inquiry) SubmittedAt() time.Time { return i.submittedAt }
