package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TemplateWelcome          = "welcome"
	TemplateResetPassword    = "reset_password"
	TemplatePasswordChanged  = "password_changed"
	TemplateBookingRequested = "booking_requested"
	TemplateBookingCancelled = "booking_cancelled"
	TemplateBookingRejected  = "booking_rejected"
	TemplateBookingAccepted  = "booking_accepted"
)

type WelcomeData struct {
	Name          string
	PropertiesURL string
	Year          int
}

type ResetPasswordData struct {
	Name      string
	ResetLink string
}

type PasswordChangedData struct {
	Name string
}

// BookingData feeds every booking lifecycle template. Name is the recipient.
type BookingData struct {
	Name          string
	PropertyTitle string
	PropertyID    string
	BookingID     string
}

const footer = `<p>— Home Rental System</p>`

var templates = template.Must(template.New("mail").Parse(`
{{define "welcome"}}
<div style="font-family: Arial, Helvetica, sans-serif; background-color: #f4f6f8; padding: 40px 0; text-align: center;">
  <div style="background-color: #ffffff; max-width: 600px; margin: auto; padding: 30px; border-radius: 12px;">
    <h2 style="color: #2c3e50;">Welcome, {{.Name}}!</h2>
    <p style="color: #555; font-size: 16px; line-height: 1.6;">
      We're thrilled to have you join <b>Home Rental</b>, your platform for finding and listing rental properties.
    </p>
    <a href="{{.PropertiesURL}}" style="display: inline-block; margin-top: 25px; background-color: #007bff; color: #fff; text-decoration: none; padding: 12px 25px; border-radius: 6px;">Explore Properties</a>
  </div>
  <p style="font-size: 12px; color: #aaa; margin-top: 20px;">© {{.Year}} Home Rental. All rights reserved.</p>
</div>
{{end}}

{{define "reset_password"}}
<h3>Hello {{.Name}},</h3>
<p>You requested to reset your password.</p>
<p>Click below to set a new password (valid for 15 minutes):</p>
<a href="{{.ResetLink}}" style="background:#007bff;color:#fff;padding:10px 15px;text-decoration:none;border-radius:5px;">Reset Password</a>
{{end}}

{{define "password_changed"}}
<h3>Hello {{.Name}},</h3>
<p>Your password has been successfully updated.</p>
<p>If this wasn't you, please contact support immediately.</p>
{{end}}

{{define "booking_requested"}}
<h2>Hello {{.Name}},</h2>
<p>You have a new <b>booking request</b> for your property <b>{{.PropertyTitle}}</b>.</p>
<p><b>Property ID:</b> {{.PropertyID}}</p>
<p><b>Booking ID:</b> {{.BookingID}}</p>
<p>Please accept or reject it from your dashboard.</p>
` + footer + `
{{end}}

{{define "booking_cancelled"}}
<h2>Hello {{.Name}},</h2>
<p>The renter has <b>cancelled</b> a booking for your property <b>{{.PropertyTitle}}</b>.</p>
<p><b>Property ID:</b> {{.PropertyID}}</p>
<p><b>Booking ID:</b> {{.BookingID}}</p>
<p>Please check your dashboard for more details.</p>
` + footer + `
{{end}}

{{define "booking_rejected"}}
<h2>Hello {{.Name}},</h2>
<p>Your booking for <b>{{.PropertyTitle}}</b> has been <b>rejected</b> by the owner.</p>
<p><b>Property ID:</b> {{.PropertyID}}</p>
<p><b>Booking ID:</b> {{.BookingID}}</p>
<p>You can try booking other available properties.</p>
` + footer + `
{{end}}

{{define "booking_accepted"}}
<h2>Hello {{.Name}},</h2>
<p>Your booking for <b>{{.PropertyTitle}}</b> has been <b>accepted</b> by the owner.</p>
<p><b>Property ID:</b> {{.PropertyID}}</p>
<p><b>Booking ID:</b> {{.BookingID}}</p>
` + footer + `
{{end}}
`))

func Render(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	return buf.String(), nil
}
