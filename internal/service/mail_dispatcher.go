package service

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"hospital-backend/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
)

const mailSendTimeout = 30 * time.Second

var patientWelcomeTemplate = template.Must(template.New("patient_welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome to {{.HospitalName}}, {{.FirstName}}!</h2>
  <p>Your patient account has been created. You can sign in to the patient portal with the credentials below.</p>
  <table cellpadding="6">
    <tr><td><strong>Patient code</strong></td><td>{{.PatientCode}}</td></tr>
    <tr><td><strong>Username</strong></td><td>{{.Username}}</td></tr>
    <tr><td><strong>Temporary password</strong></td><td>{{.TemporaryPassword}}</td></tr>
  </table>
  <p>Please change your password after your first login.</p>
  <p>{{.HospitalName}}</p>
</body>
</html>`))

type PatientWelcome struct {
	Email             string
	FirstName         string
	LastName          string
	PatientCode       string
	Username          string
	TemporaryPassword string
}

// MailDispatcher sends best-effort notifications. Failures are logged and
// reported as false, never as errors.
type MailDispatcher interface {
	SendPatientWelcome(ctx context.Context, data PatientWelcome) bool
}

type mailDispatcher struct {
	mailer       mail.Mailer
	log          *logrus.Logger
	hospitalName string
}

func NewMailDispatcher(mailer mail.Mailer, log *logrus.Logger, hospitalName string) MailDispatcher {
	if hospitalName == "" {
		hospitalName = "Healthcare Management Clinic"
	}
	return &mailDispatcher{
		mailer:       mailer,
		log:          log,
		hospitalName: hospitalName,
	}
}

func (d *mailDispatcher) SendPatientWelcome(ctx context.Context, data PatientWelcome) bool {
	var body bytes.Buffer
	err := patientWelcomeTemplate.Execute(&body, struct {
		PatientWelcome
		HospitalName string
	}{data, d.hospitalName})
	if err != nil {
		d.log.Warnf("Failed to render welcome email for %s: %+v", data.Email, err)
		return false
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailSendTimeout)
	defer cancel()

	err = d.mailer.Send(sendCtx, mail.Message{
		To:       data.Email,
		ToName:   data.FirstName + " " + data.LastName,
		Subject:  "Welcome to " + d.hospitalName + " - Your Patient Account",
		HTMLBody: body.String(),
	})
	if err != nil {
		d.log.Warnf("Failed to send welcome email to %s: %+v", data.Email, err)
		return false
	}
	return true
}
