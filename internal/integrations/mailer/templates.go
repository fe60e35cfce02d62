package mailer

import "text/template"

// Template имя почтового шаблона
type Template string

const (
	// TemplateWelcome приветственное письмо после регистрации
	TemplateWelcome Template = "welcome"

	// TemplateBookingConfirmation подтверждение создания заявки
	TemplateBookingConfirmation Template = "booking_confirmation"

	// TemplateBookingStatus уведомление об изменении статуса заявки
	TemplateBookingStatus Template = "booking_status"

	// TemplateAdminNewBooking уведомление администраторов о новой заявке
	TemplateAdminNewBooking Template = "admin_new_booking"
)

// Context данные для подстановки в шаблон
type Context map[string]interface{}

// mailTemplate пара шаблонов: тема и тело письма
type mailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var templates = map[Template]mailTemplate{
	TemplateWelcome: {
		subject: template.Must(template.New("welcome_subject").Parse(
			`Welcome to Smart Classroom Booking!`)),
		body: template.Must(template.New("welcome_body").Parse(
			`Hello {{.Username}},

Welcome to the Smart Classroom Booking service!

You can now reserve the classroom for one-hour slots between 08:00 and 18:00,
track the approval status of your requests and attach payment receipts.

Best regards,
Smart Classroom Booking
`)),
	},

	TemplateBookingConfirmation: {
		subject: template.Must(template.New("confirmation_subject").Parse(
			`Booking Confirmation - {{.Purpose}}`)),
		body: template.Must(template.New("confirmation_body").Parse(
			`Hello {{.Username}},

Your booking request has been received and is awaiting approval.

Purpose:   {{.Purpose}}
Date:      {{.Date}}
Time:      {{.TimeRange}}
Attendees: {{.Attendees}}

You will receive another email once a staff member reviews your request.

Best regards,
Smart Classroom Booking
`)),
	},

	TemplateBookingStatus: {
		subject: template.Must(template.New("status_subject").Parse(
			`Booking {{.StatusTitle}} - {{.Purpose}}`)),
		body: template.Must(template.New("status_body").Parse(
			`Hello {{.Username}},

{{.StatusMessage}}

Purpose: {{.Purpose}}
Date:    {{.Date}}
Time:    {{.TimeRange}}

Best regards,
Smart Classroom Booking
`)),
	},

	TemplateAdminNewBooking: {
		subject: template.Must(template.New("admin_subject").Parse(
			`New Booking Request - {{.Purpose}}`)),
		body: template.Must(template.New("admin_body").Parse(
			`A new booking request is awaiting review.

User:      {{.Username}}
Purpose:   {{.Purpose}}
Date:      {{.Date}}
Time:      {{.TimeRange}}
Attendees: {{.Attendees}}

Please review it in the administrative console.
`)),
	},
}

// StatusMessages человекочитаемые сообщения для писем об изменении статуса
var StatusMessages = map[string]string{
	"approved": "Your booking has been approved!",
	"rejected": "Your booking has been rejected.",
	"pending":  "Your booking is under review.",
}
