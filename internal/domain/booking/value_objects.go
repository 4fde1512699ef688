package booking

import (
	"errors"
	"html"
	"regexp"
	"strings"
)

var (
	ErrInvalidName   = errors.New("name must be between 2 and 50 characters")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidAmount = errors.New("amount out of allowed range")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Indian mobile number, optionally prefixed with +91 or 0.
	phoneRegex = regexp.MustCompile(`^(\+91[\-\s]?|0)?[6-9]\d{9}$`)
)

const (
	nameMinLen = 2
	nameMaxLen = 50
)

// sanitize trims and HTML-escapes untrusted input before it reaches
// storage or email templates.
func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// CustomerDetails is validated, trimmed and escaped at construction; a
// value that exists is safe to store and to interpolate into templates.
type CustomerDetails struct {
	name  string
	email string
	phone string
}

func NewCustomerDetails(name, email, phone string) (CustomerDetails, error) {
	name = sanitize(name)
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		return CustomerDetails{}, ErrInvalidName
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return CustomerDetails{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return CustomerDetails{}, ErrInvalidPhone
	}

	return CustomerDetails{name: name, email: email, phone: phone}, nil
}

func ReconstructCustomerDetails(name, email, phone string) CustomerDetails {
	return CustomerDetails{name: name, email: email, phone: phone}
}

func (c CustomerDetails) Name() string  { return c.name }
func (c CustomerDetails) Email() string { return c.email }
func (c CustomerDetails) Phone() string { return c.phone }

// PackageDetails carries the travel package the customer paid for. Amount
// is in minor currency units (paise).
type PackageDetails struct {
	name        string
	duration    string
	amountMinor int64
}

func NewPackageDetails(name, duration string, amountMinor int64) (PackageDetails, error) {
	name = sanitize(name)
	if name == "" {
		return PackageDetails{}, errors.New("package name is required")
	}
	if amountMinor < 0 {
		return PackageDetails{}, ErrInvalidAmount
	}
	return PackageDetails{
		name:        name,
		duration:    sanitize(duration),
		amountMinor: amountMinor,
	}, nil
}

func ReconstructPackageDetails(name, duration string, amountMinor int64) PackageDetails {
	return PackageDetails{name: name, duration: duration, amountMinor: amountMinor}
}

func (p PackageDetails) Name() string       { return p.name }
func (p PackageDetails) Duration() string   { return p.duration }
func (p PackageDetails) AmountMinor() int64 { return p.amountMinor }

// PaymentRef links a booking to the gateway order that paid for it.
type PaymentRef struct {
	orderID   string
	paymentID string
	signature string
}

func NewPaymentRef(orderID, paymentID, sig string) PaymentRef {
	return PaymentRef{orderID: orderID, paymentID: paymentID, signature: sig}
}

func (p PaymentRef) OrderID() string   { return p.orderID }
func (p PaymentRef) PaymentID() string { return p.paymentID }
func (p PaymentRef) Signature() string { return p.signature }
func (p PaymentRef) IsZero() bool      { return p.orderID == "" && p.paymentID == "" }

// MinorUnitFactor converts major currency units to the gateway's minor
// units (rupees to paise).
const MinorUnitFactor = 100

// AmountBounds is the administratively configured order-amount window, in
// major units, inclusive at both ends.
type AmountBounds struct {
	Min int64
	Max int64
}

func (b AmountBounds) Validate(amountMajor int64) error {
	if amountMajor < b.Min || amountMajor > b.Max {
		return ErrInvalidAmount
	}
	return nil
}

func ToMinorUnits(amountMajor int64) int64 {
	return amountMajor * MinorUnitFactor
}
