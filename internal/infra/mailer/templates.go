package mailer

import "html/template"

// Template data is built from domain values that were already escaped at
// construction; html/template escapes again on interpolation, which is
// harmless for plain text and keeps the templates safe on their own.

type bookingEmailData struct {
	CustomerName string
	PackageName  string
	Duration     string
	PaymentID    string
	AmountMajor  int64
	BookingDate  string
}

type contactEmailData struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt string
}

var customerConfirmationTmpl = template.Must(template.New("customer_confirmation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Booking Confirmation - Oasis Travel</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #000042; color: white; padding: 30px; text-align: center;">
      <h1>Booking Confirmed!</h1>
      <p>Thank you for choosing Oasis Travel &amp; Tourism</p>
    </div>
    <div style="background: #f8fafc; padding: 30px;">
      <h2>Dear {{.CustomerName}},</h2>
      <p>Your booking has been successfully confirmed! We're excited to help you create unforgettable memories.</p>
      <h3>Booking Details</h3>
      <table>
        <tr><td><strong>Package:</strong></td><td>{{.PackageName}}</td></tr>
        <tr><td><strong>Duration:</strong></td><td>{{.Duration}}</td></tr>
        <tr><td><strong>Payment ID:</strong></td><td>{{.PaymentID}}</td></tr>
        <tr><td><strong>Amount Paid:</strong></td><td>&#8377;{{.AmountMajor}}</td></tr>
        <tr><td><strong>Booking Date:</strong></td><td>{{.BookingDate}}</td></tr>
      </table>
      <p>Our travel consultant will contact you within 24 hours to discuss your itinerary and finalize all arrangements.</p>
    </div>
  </div>
</body>
</html>`))

var salesAlertTmpl = template.Must(template.New("sales_alert").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>New Booking Alert - Oasis Travel</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #dc2626; color: white; padding: 20px; text-align: center;">
      <h1>New Booking Alert</h1>
      <p>Contact the customer within 24 hours</p>
    </div>
    <div style="background: #f8fafc; padding: 20px;">
      <h3>Package</h3>
      <table>
        <tr><td><strong>Package:</strong></td><td>{{.PackageName}}</td></tr>
        <tr><td><strong>Duration:</strong></td><td>{{.Duration}}</td></tr>
      </table>
      <h3>Customer</h3>
      <table>
        <tr><td><strong>Name:</strong></td><td>{{.CustomerName}}</td></tr>
      </table>
      <h3>Payment</h3>
      <table>
        <tr><td><strong>Payment ID:</strong></td><td>{{.PaymentID}}</td></tr>
        <tr><td><strong>Amount:</strong></td><td>&#8377;{{.AmountMajor}}</td></tr>
        <tr><td><strong>Booked at:</strong></td><td>{{.BookingDate}}</td></tr>
      </table>
    </div>
  </div>
</body>
</html>`))

var contactAlertTmpl = template.Must(template.New("contact_alert").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Contact Form Submission - Oasis Travel</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #059669; color: white; padding: 20px; text-align: center;">
      <h1>New Contact Form Submission</h1>
    </div>
    <div style="background: #f8fafc; padding: 20px;">
      <table>
        <tr><td><strong>Name:</strong></td><td>{{.Name}}</td></tr>
        <tr><td><strong>Email:</strong></td><td>{{.Email}}</td></tr>
        <tr><td><strong>Phone:</strong></td><td>{{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</td></tr>
        <tr><td><strong>Subject:</strong></td><td>{{.Subject}}</td></tr>
        <tr><td><strong>Submitted:</strong></td><td>{{.SubmittedAt}}</td></tr>
      </table>
      <h3>Message</h3>
      <p>{{.Message}}</p>
      <p>Please respond to this inquiry within 24 hours.</p>
    </div>
  </div>
</body>
</html>`))
