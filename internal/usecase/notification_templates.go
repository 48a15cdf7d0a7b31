package usecase

import "html/template"

const supportEmail = "teams.aiverse@gmail.com"

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 20px auto; background: #fff; padding: 40px; border-radius: 8px;">
    <div style="text-align: center; margin-bottom: 30px;">
      <h1 style="color: #4f46e5; margin: 0;">Event Reminder</h1>
      <p>Your event is coming up soon!</p>
    </div>
    <p>Hi {{.LeaderName}},</p>
    <p>This is a friendly reminder that you're registered for the following event:</p>
    <div style="background: #f8fafc; padding: 20px; border-left: 4px solid #4f46e5;">
      <h2 style="margin-top: 0;">{{.EventTitle}}</h2>
      <div><strong>Date:</strong> {{.Date}}</div>
      <div><strong>Time:</strong> {{.Time}}</div>
      <div><strong>Location:</strong> {{.Location}}</div>
      {{- if .TeamName}}
      <div><strong>Team:</strong> {{.TeamName}}</div>
      {{- end}}
    </div>
    <p><strong>Important:</strong> Please bring your ticket QR code (sent separately) for check-in at the venue.</p>
    <p>We're excited to see you there!</p>
    <div style="text-align: center; margin-top: 30px; font-size: 12px; color: #94a3b8;">
      <p>&copy; {{.Year}} AI Verse. All rights reserved.</p>
      <p>If you have any questions, please contact us at {{.SupportEmail}}</p>
    </div>
  </div>
</body>
</html>
`))

var ticketTemplate = template.Must(template.New("ticket").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4;">
  <div style="max-width: 700px; margin: 20px auto; background: #fff;">
    <div style="padding: 20px 30px; border-bottom: 3px solid #4f46e5;">
      <h2 style="margin: 0;">This is your ticket</h2>
    </div>
    <div style="padding: 30px; background-color: #f8fafc; margin: 20px;">
      <div style="font-size: 14px; color: #666;">AI Verse Events &bull; {{.Location}}</div>
      <div style="font-size: 22px; font-weight: 800; text-transform: uppercase;">{{.EventTitle}}</div>
      <div style="font-size: 14px; color: #666;">{{.Date}}<br>{{.Time}}</div>
      <table style="margin-top: 25px;">
        <tr><td><strong>Issued To</strong></td><td>{{.LeaderName}}</td></tr>
        <tr><td><strong>Registration ID</strong></td><td style="font-family: monospace;">{{.RegistrationCode}}</td></tr>
        <tr><td><strong>Ticket Type</strong></td><td>{{.TicketType}}</td></tr>
        {{- if .TeamName}}
        <tr><td><strong>Team Name</strong></td><td>{{.TeamName}}</td></tr>
        {{- end}}
      </table>
      <img src="{{.QRCodeURL}}" alt="Ticket QR Code" style="max-width: 200px;" />
    </div>
    <div style="text-align: center; padding: 20px; font-size: 12px; color: #94a3b8;">
      <p>Please present this QR code at the event entrance for scanning.</p>
      <p>&copy; {{.Year}} AI Verse. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

type reminderView struct {
	LeaderName   string
	EventTitle   string
	Date         string
	Time         string
	Location     string
	TeamName     string
	Year         int
	SupportEmail string
}

type ticketView struct {
	LeaderName       string
	EventTitle       string
	Date             string
	Time             string
	Location         string
	TeamName         string
	TicketType       string
	RegistrationCode string
	QRCodeURL        string
	Year             int
}
